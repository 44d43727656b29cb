// Package catalog is the product lookup collaborator consumed by the cart
// handlers and the order assembler.
package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/models"
)

// ErrNotFound is returned when a product ID does not resolve to a live
// catalog entry (including soft-deleted products).
var ErrNotFound = errors.New("catalog: product not found")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByID returns the product with the given ID, or ErrNotFound.
func (s *Store) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
