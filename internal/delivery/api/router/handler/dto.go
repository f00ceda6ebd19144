package handler

import (
	"time"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		PhotoURL:  user.PhotoURL,
		Role:      user.Role.String(),
		Verified:  user.IsVerified(),
		CreatedAt: user.CreatedAt,
	}
}

// CategoryResponse is a product category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is a product as stored.
type ProductResponse struct {
	ID            string    `json:"id"`
	OwnerEmail    string    `json:"email"`
	CategoryID    string    `json:"categoryId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	Location      string    `json:"location,omitempty"`
	ImageURL      string    `json:"image,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Price         float64   `json:"resalePrice"`
	OriginalPrice float64   `json:"originalPrice"`
	YearsOfUse    int       `json:"yearsOfUse"`
	Sold          bool      `json:"sold"`
	Advertised    bool      `json:"advertised"`
	Reported      bool      `json:"reported"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductListingResponse adds the seller's current standing to a product.
type ProductListingResponse struct {
	*ProductResponse
	SellerName     string `json:"sellerName,omitempty"`
	SellerVerified bool   `json:"sellerVerified"`
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:            product.ID.String(),
		OwnerEmail:    product.OwnerEmail,
		CategoryID:    product.CategoryID.String(),
		Name:          product.Name,
		Description:   product.Description,
		Condition:     product.Condition,
		Location:      product.Location,
		ImageURL:      product.ImageURL,
		Phone:         product.Phone,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		YearsOfUse:    product.YearsOfUse,
		Sold:          product.Sold,
		Advertised:    product.Advertised,
		Reported:      product.Reported,
		CreatedAt:     product.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toListingResponses(listings []*entity.ProductListing) []*ProductListingResponse {
	out := make([]*ProductListingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, &ProductListingResponse{
			ProductResponse: toProductResponse(listing.Product),
			SellerName:      listing.SellerName,
			SellerVerified:  listing.SellerVerified,
		})
	}

	return out
}

// BookingResponse is a buyer's booking.
type BookingResponse struct {
	ID              string    `json:"id"`
	BuyerEmail      string    `json:"email"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	Price           float64   `json:"price"`
	Phone           string    `json:"phone,omitempty"`
	MeetingLocation string    `json:"meetingLocation,omitempty"`
	Paid            bool      `json:"paid"`
	TransactionID   string    `json:"transactionId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toBookingResponse(booking *entity.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              booking.ID.String(),
		BuyerEmail:      booking.BuyerEmail,
		ProductID:       booking.ProductID.String(),
		ProductName:     booking.ProductName,
		Price:           booking.Price,
		Phone:           booking.Phone,
		MeetingLocation: booking.MeetingLocation,
		Paid:            booking.Paid,
		CreatedAt:       booking.CreatedAt,
	}
	if booking.TransactionID != nil {
		resp.TransactionID = *booking.TransactionID
	}

	return resp
}

// PaymentResponse is a recorded payment.
type PaymentResponse struct {
	ID            string    `json:"id,omitempty"`
	BookingID     string    `json:"bookingId"`
	ProductID     string    `json:"productId"`
	BuyerEmail    string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toPaymentResponse(payment *entity.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		BookingID:     payment.BookingID.String(),
		ProductID:     payment.ProductID.String(),
		BuyerEmail:    payment.BuyerEmail,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		CreatedAt:     payment.CreatedAt,
	}
	if payment.ID != uuid.Nil {
		resp.ID = payment.ID.String()
	}

	return resp
}

// WishlistResponse is a saved product.
type WishlistResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toWishlistResponse(entry *entity.WishlistEntry) *WishlistResponse {
	resp := &WishlistResponse{
		ID:        entry.ID.String(),
		ProductID: entry.ProductID.String(),
		CreatedAt: entry.CreatedAt,
	}
	if entry.Product != nil {
		resp.Product = toProductResponse(entry.Product)
	}

	return resp
}
