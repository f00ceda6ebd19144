// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"resale/internal/delivery/api/middleware"
	"resale/internal/delivery/api/response"
	"resale/internal/domain/entity"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest is the signup body. Admin cannot be requested.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

// UpdateUserRequest carries admin changes to an account.
type UpdateUserRequest struct {
	Role     *string `json:"role" validate:"omitempty,oneof=buyer seller admin"`
	Verified *bool   `json:"verified"`
}

// Register handles POST /users. Repeating a signup returns the stored account with 200.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, toUserResponse(output.User))
}

// List handles GET /users?role=
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context(), entity.Role(c.QueryParam("role")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get handles GET /users/:email
func (h *UserHandler) Get(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	user, err := h.userUC.Get(c.Request().Context(), callerEmail, c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// IsAdmin handles GET /users/admin/:email
func (h *UserHandler) IsAdmin(c echo.Context) error {
	return h.roleProbe(c, entity.RoleAdmin, "isAdmin")
}

// IsSeller handles GET /users/seller/:email
func (h *UserHandler) IsSeller(c echo.Context) error {
	return h.roleProbe(c, entity.RoleSeller, "isSeller")
}

// IsBuyer handles GET /users/buyer/:email
func (h *UserHandler) IsBuyer(c echo.Context) error {
	return h.roleProbe(c, entity.RoleBuyer, "isBuyer")
}

func (h *UserHandler) roleProbe(c echo.Context, role entity.Role, key string) error {
	ok, err := h.userUC.HasRole(c.Request().Context(), c.Param("email"), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{key: ok})
}

// Update handles PUT /users?email=
func (h *UserHandler) Update(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email query parameter is required")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Role == nil && req.Verified == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "nothing to update")
	}

	input := &usecase.UpdateUserInput{Verified: req.Verified}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userUC.Update(c.Request().Context(), email, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"})
}
