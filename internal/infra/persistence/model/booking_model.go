package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table.
// At most one unpaid booking may exist per (buyer_email, product_id); the
// partial unique index idx_bookings_active is created by migration.
type BookingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerEmail      string    `gorm:"type:varchar(255);not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName     string    `gorm:"type:varchar(200);not null"`
	Price           float64   `gorm:"type:numeric(12,2);not null"`
	Phone           string    `gorm:"type:varchar(50)"`
	MeetingLocation string    `gorm:"type:varchar(255)"`
	Paid            bool      `gorm:"not null;default:false"`
	TransactionID   *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
