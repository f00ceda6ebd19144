package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	mockservice "resale/internal/mocks/service"
	mockusecase "resale/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		setup   func(tokenSvc *mockservice.MockTokenService)
		wantErr error
	}{
		{name: "missing header", header: "", wantErr: domainerrors.ErrUnauthenticated},
		{name: "not a bearer token", header: "Token abc", wantErr: domainerrors.ErrUnauthenticated},
		{name: "empty bearer token", header: "Bearer  ", wantErr: domainerrors.ErrUnauthenticated},
		{
			name:   "bad signature",
			header: "Bearer forged",
			setup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("forged").Return(nil, service.ErrInvalidToken)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: newDiscardLogger()})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := m.Authenticate(okHandler)(c)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			_, ok := deliverycontext.GetCallerEmail(c)
			assert.False(t, ok)
		})
	}
}

func TestAuthMiddleware_AuthenticateRecordsCaller(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{Email: "a@x.io"}, nil)
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: newDiscardLogger()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))

	email, ok := GetCallerEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "a@x.io", email)
	assert.Equal(t, "a@x.io", deliverycontext.GetCallerEmailFromContext(c.Request().Context()))
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Run("without authentication", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: mockusecase.NewMockUserUsecase(t), Logger: newDiscardLogger()})
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("role held", func(t *testing.T) {
		userUC := mockusecase.NewMockUserUsecase(t)
		userUC.EXPECT().HasRole(mock.Anything, "s@x.io", entity.RoleSeller).Return(true, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: userUC, Logger: newDiscardLogger()})
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		deliverycontext.SetCallerEmail(c, "s@x.io")

		require.NoError(t, m.RequireRole(entity.RoleSeller)(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		userUC := mockusecase.NewMockUserUsecase(t)
		userUC.EXPECT().HasRole(mock.Anything, "b@x.io", entity.RoleSeller).Return(false, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{UserUC: userUC, Logger: newDiscardLogger()})
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		deliverycontext.SetCallerEmail(c, "b@x.io")

		err := m.RequireRole(entity.RoleSeller)(okHandler)(c)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		hiddenText string
	}{
		{
			name:       "app error with details",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be positive")),
			wantStatus: http.StatusBadRequest,
			wantBody:   "price must be positive",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("owner mismatch"),
			wantStatus: http.StatusForbidden,
			wantBody:   "FORBIDDEN",
			hiddenText: "owner mismatch",
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("driver exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "INTERNAL_ERROR",
			hiddenText: "driver exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.hiddenText != "" {
				assert.NotContains(t, rec.Body.String(), tt.hiddenText)
			}
		})
	}
}
