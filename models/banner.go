package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HomepageBanner is the rotating hero banner shown on the store home page.
type HomepageBanner struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Subtitle     string    `json:"subtitle"`
	Image        string    `gorm:"not null" json:"image"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	DisplayOrder uint      `gorm:"default:0" json:"display_order"`
	ButtonText   string    `gorm:"default:'Shop Now'" json:"button_text"`
	ButtonLink   string    `gorm:"default:'/products/'" json:"button_link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryBanner struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string    `gorm:"not null" json:"category_name"`
	Description  string    `json:"description"`
	Image        string    `gorm:"not null" json:"image"`
	DisplayOrder uint      `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type FeaturedProduct struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName  string          `gorm:"not null" json:"product_name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image        string          `gorm:"not null" json:"image"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	DisplayOrder uint            `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
}
