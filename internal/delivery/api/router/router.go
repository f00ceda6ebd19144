// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"resale/internal/delivery/api/middleware"
	"resale/internal/delivery/api/router/handler"
	"resale/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TokenHandler    *handler.TokenHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	BookingHandler  *handler.BookingHandler
	PaymentHandler  *handler.PaymentHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tokenHandler    *handler.TokenHandler
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	bookingHandler  *handler.BookingHandler
	paymentHandler  *handler.PaymentHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tokenHandler:    params.TokenHandler,
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		bookingHandler:  params.BookingHandler,
		paymentHandler:  params.PaymentHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Each route is registered exactly once.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	seller := r.authMiddleware.RequireRole(entity.RoleSeller)

	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	e.GET("/jwt", r.tokenHandler.IssueToken)

	users := e.Group("/users")
	{
		users.POST("", r.userHandler.Register)
		users.GET("", r.userHandler.List, auth, admin)
		users.PUT("", r.userHandler.Update, auth, admin)
		users.GET("/admin/:email", r.userHandler.IsAdmin)
		users.GET("/seller/:email", r.userHandler.IsSeller)
		users.GET("/buyer/:email", r.userHandler.IsBuyer)
		users.GET("/:email", r.userHandler.Get, auth)
		users.DELETE("/:id", r.userHandler.Delete, auth, admin)
	}

	e.GET("/categories", r.catalogHandler.ListCategories)

	products := e.Group("/products")
	{
		products.GET("/advertise", r.catalogHandler.ListAdvertised)
		products.GET("/categories/:id", r.catalogHandler.ListByCategory)
		products.GET("/report", r.catalogHandler.ListReported, auth, admin)
		products.PUT("/report/:id", r.catalogHandler.Report, auth)
		products.GET("", r.catalogHandler.ListMine, auth, seller)
		products.POST("", r.catalogHandler.CreateProduct, auth, seller)
		products.PUT("", r.catalogHandler.Advertise, auth, seller)
		products.DELETE("/:id", r.catalogHandler.DeleteProduct, auth)
	}

	bookings := e.Group("/bookings", auth)
	{
		bookings.GET("", r.bookingHandler.ListByBuyer)
		bookings.POST("", r.bookingHandler.Create)
		bookings.GET("/:id", r.bookingHandler.Get)
		bookings.GET("/:id/qr", r.bookingHandler.ReceiptQR)
	}

	e.POST("/create-payment-intent", r.paymentHandler.CreatePaymentIntent, auth)
	e.POST("/payments", r.paymentHandler.RecordPayment, auth)

	wishlists := e.Group("/wishlists", auth)
	{
		wishlists.GET("", r.wishlistHandler.List)
		wishlists.POST("", r.wishlistHandler.Add)
		wishlists.DELETE("", r.wishlistHandler.Remove)
	}
}
