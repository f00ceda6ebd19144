package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table.
type WishlistModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wishlists_buyer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_buyer_product"`
	CreatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}
