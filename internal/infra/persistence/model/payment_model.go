package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Rows are never updated.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerEmail    string    `gorm:"type:varchar(255);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time

	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
