package orders

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/models"
)

// Store is the order persistence contract the assembler and the
// notification dispatcher depend on.
type Store interface {
	// Create persists the order and all of its items as one atomic unit.
	// A colliding order number is reported as ErrDuplicateOrderNumber.
	Create(order *models.Order) error
	// UpdateNotificationState writes the named notification flag columns
	// from the order back to storage.
	UpdateNotificationState(order *models.Order, fields ...string) error
}

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(order *models.Order) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrderNumber
		}
		return err
	}
	return nil
}

func (s *GormStore) UpdateNotificationState(order *models.Order, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(order).Select(fields).Updates(order).Error
}

// ByID returns the order (with items) for the given internal ID.
func (s *GormStore) ByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ByNumber returns the order (with items) for the given order number.
func (s *GormStore) ByNumber(number string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Where("order_number = ?", number).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// 23505 is Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
