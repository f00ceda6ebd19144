package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerEmail    string    `gorm:"type:varchar(255);not null;index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	Condition     string    `gorm:"type:varchar(50)"`
	Location      string    `gorm:"type:varchar(255)"`
	ImageURL      string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(50)"`
	Price         float64   `gorm:"type:numeric(12,2);not null"`
	OriginalPrice float64   `gorm:"type:numeric(12,2)"`
	YearsOfUse    int
	Sold          bool `gorm:"not null;default:false;index"`
	Advertised    bool `gorm:"not null;default:false;index"`
	Reported      bool `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
