package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one of the fixed sections of the carte.
type Category string

const (
	CategoryEntrees  Category = "Entrées"
	CategoryPlats    Category = "Plats Principaux"
	CategoryDesserts Category = "Desserts"
	CategoryBoissons Category = "Boissons"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEntrees, CategoryPlats, CategoryDesserts, CategoryBoissons:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null;check:chk_menu_items_price,price >= 0" json:"price"`
	Category    Category  `gorm:"type:varchar(50);not null;index" json:"category"`
	ImageURL    *string   `gorm:"column:image_url;type:varchar(1024)" json:"image_url"`
	IsAvailable bool      `gorm:"not null;index" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MenuFields is the writable part of a MenuItem, already validated.
type MenuFields struct {
	Name        string
	Description string
	Price       float64
	Category    Category
	ImageURL    *string
	IsAvailable bool
}
