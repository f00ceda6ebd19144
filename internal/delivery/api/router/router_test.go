package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "resale/internal/delivery/api/middleware"
	"resale/internal/delivery/api/router/handler"
	"resale/internal/delivery/api/validator"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	mockservice "resale/internal/mocks/service"
	mockusecase "resale/internal/mocks/usecase"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo      *echo.Echo
	tokenSvc  *mockservice.MockTokenService
	tokenUC   *mockusecase.MockTokenUsecase
	userUC    *mockusecase.MockUserUsecase
	catalogUC *mockusecase.MockCatalogUsecase
	bookingUC *mockusecase.MockBookingUsecase
	paymentUC *mockusecase.MockPaymentUsecase
	wishUC    *mockusecase.MockWishlistUsecase
	errLog    *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		echo:      echo.New(),
		tokenSvc:  mockservice.NewMockTokenService(t),
		tokenUC:   mockusecase.NewMockTokenUsecase(t),
		userUC:    mockusecase.NewMockUserUsecase(t),
		catalogUC: mockusecase.NewMockCatalogUsecase(t),
		bookingUC: mockusecase.NewMockBookingUsecase(t),
		paymentUC: mockusecase.NewMockPaymentUsecase(t),
		wishUC:    mockusecase.NewMockWishlistUsecase(t),
		errLog:    new(bytes.Buffer),
	}

	ts.echo.Validator = validator.New()
	ts.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewJSONHandler(ts.errLog, nil))).HandleHTTPError

	r := NewRouter(RouterParams{
		TokenHandler:    handler.NewTokenHandler(handler.TokenHandlerParams{TokenUC: ts.tokenUC, Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: ts.userUC, Logger: logger}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: ts.catalogUC, Logger: logger}),
		BookingHandler:  handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: ts.bookingUC, Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: ts.paymentUC, Logger: logger}),
		WishlistHandler: handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: ts.wishUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: ts.tokenSvc,
			UserUC:       ts.userUC,
			Logger:       logger,
		}),
	})
	r.RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) expectToken(token, email string) {
	ts.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{Email: email}, nil)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRoot(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running", rec.Body.String())
}

func TestUsersList_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/users", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.NotContains(t, body, "data")
	assert.Equal(t, "UNAUTHENTICATED", body["error"].(map[string]any)["code"])
}

func TestUsersList_NonBearerHeader(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersList_InvalidToken(t *testing.T) {
	ts := newTestServer(t)
	ts.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, service.ErrInvalidToken)

	rec := ts.do(http.MethodGet, "/users", "forged", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUsersList_RoleGate(t *testing.T) {
	tests := []struct {
		name       string
		isAdmin    bool
		wantStatus int
	}{
		{name: "admin is allowed", isAdmin: true, wantStatus: http.StatusOK},
		{name: "buyer is forbidden", isAdmin: false, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.expectToken("tok", "caller@x.io")
			ts.userUC.EXPECT().HasRole(mock.Anything, "caller@x.io", entity.RoleAdmin).Return(tt.isAdmin, nil)
			if tt.isAdmin {
				ts.userUC.EXPECT().List(mock.Anything, entity.Role("")).Return([]*entity.User{
					{ID: uuid.New(), Email: "a@x.io", Role: entity.RoleBuyer},
				}, nil)
			}

			rec := ts.do(http.MethodGet, "/users", "tok", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.isAdmin {
				assert.Len(t, body["data"], 1)
			} else {
				assert.NotContains(t, body, "data")
			}
		})
	}
}

func TestUsersList_AbsentCallerIsForbidden(t *testing.T) {
	ts := newTestServer(t)
	ts.expectToken("tok", "ghost@x.io")
	ts.userUC.EXPECT().HasRole(mock.Anything, "ghost@x.io", entity.RoleAdmin).Return(false, nil)

	rec := ts.do(http.MethodGet, "/users", "tok", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUsersList_RoleLookupFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.expectToken("tok", "caller@x.io")
	ts.userUC.EXPECT().HasRole(mock.Anything, "caller@x.io", entity.RoleAdmin).
		Return(false, domainerrors.NewDatabaseExecuteError(assert.AnError, "find user"))

	rec := ts.do(http.MethodGet, "/users", "tok", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "find user")
}

func TestServerSideErrorsAreLogged(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "store failure",
			err:      errors.Wrap(domainerrors.NewDatabaseExecuteError(assert.AnError, "list categories"), "catalog"),
			wantCode: http.StatusInternalServerError,
			wantBody: "DATABASE_EXECUTE_FAILED",
		},
		{
			name:     "store timeout",
			err:      domainerrors.ErrTimeout.WithDetails("list categories"),
			wantCode: http.StatusGatewayTimeout,
			wantBody: "TIMEOUT",
		},
		{
			name:     "provider failure",
			err:      domainerrors.ErrPaymentProvider.WithDetails("stripe 500"),
			wantCode: http.StatusBadGateway,
			wantBody: "PAYMENT_PROVIDER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.catalogUC.EXPECT().ListCategories(mock.Anything).Return(nil, tt.err)

			rec := ts.do(http.MethodGet, "/categories", "", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Contains(t, ts.errLog.String(), `"level":"ERROR"`)
			assert.Contains(t, ts.errLog.String(), tt.wantBody)
		})
	}
}

func TestClientErrorsAreNotLogged(t *testing.T) {
	ts := newTestServer(t)
	ts.expectToken("tok", "buyer@x.io")
	id := uuid.New()
	ts.bookingUC.EXPECT().Get(mock.Anything, "buyer@x.io", id).Return(nil, domainerrors.ErrBookingNotFound)

	rec := ts.do(http.MethodGet, "/bookings/"+id.String(), "tok", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, ts.errLog.String())
}

func TestRoleProbes_ArePublic(t *testing.T) {
	ts := newTestServer(t)
	ts.userUC.EXPECT().HasRole(mock.Anything, "s@x.io", entity.RoleSeller).Return(true, nil)

	rec := ts.do(http.MethodGet, "/users/seller/s@x.io", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isSeller":true`)
}

func TestIssueToken(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenUC.EXPECT().IssueToken(mock.Anything, "a@x.io").Return("signed", nil)

		rec := ts.do(http.MethodGet, "/jwt?email=a@x.io", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"signed"}`, rec.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenUC.EXPECT().IssueToken(mock.Anything, "nobody@x.io").Return("", domainerrors.ErrUnknownUser)

		rec := ts.do(http.MethodGet, "/jwt?email=nobody@x.io", "", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"accessToken":""}`, rec.Body.String())
	})

	t.Run("missing email", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/jwt", "", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"accessToken":""}`, rec.Body.String())
	})
}

func TestRecordPayment(t *testing.T) {
	bookingID := uuid.New()
	productID := uuid.New()
	body := `{"bookingId":"` + bookingID.String() + `","productId":"` + productID.String() + `","transactionId":"pi_1","price":500}`

	tests := []struct {
		name       string
		replayed   bool
		wantStatus int
	}{
		{name: "first record", replayed: false, wantStatus: http.StatusCreated},
		{name: "replay", replayed: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.expectToken("tok", "buyer@x.io")
			ts.paymentUC.EXPECT().
				RecordPayment(mock.Anything, &usecase.RecordPaymentInput{
					CallerEmail:   "buyer@x.io",
					BookingID:     bookingID,
					ProductID:     productID,
					TransactionID: "pi_1",
					Amount:        500,
				}).
				Return(&usecase.RecordPaymentOutput{
					Payment: &entity.Payment{
						ID:            uuid.New(),
						BookingID:     bookingID,
						ProductID:     productID,
						BuyerEmail:    "buyer@x.io",
						TransactionID: "pi_1",
						Amount:        500,
					},
					Replayed: tt.replayed,
				}, nil)

			rec := ts.do(http.MethodPost, "/payments", "tok", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"transactionId":"pi_1"`)
		})
	}
}

func TestRecordPayment_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.expectToken("tok", "buyer@x.io")

	rec := ts.do(http.MethodPost, "/payments", "tok", `{"bookingId":"not-a-uuid","price":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])
}

// acceptAll lets malformed IDs reach the handlers.
type acceptAll struct{}

func (acceptAll) Validate(any) error { return nil }

func TestUnparsableIDsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"payment booking", "/payments", `{"bookingId":"nope","productId":"` + uuid.NewString() + `","transactionId":"pi_1","price":5}`},
		{"payment product", "/payments", `{"bookingId":"` + uuid.NewString() + `","productId":"nope","transactionId":"pi_1","price":5}`},
		{"booking product", "/bookings", `{"productId":"nope"}`},
		{"wishlist product", "/wishlists", `{"productId":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.echo.Validator = acceptAll{}
			ts.expectToken("tok", "buyer@x.io")

			rec := ts.do(http.MethodPost, tt.path, "tok", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_ID", decodeBody(t, rec)["error"].(map[string]any)["code"])
		})
	}
}

func TestCreateBooking_Conflict(t *testing.T) {
	ts := newTestServer(t)
	productID := uuid.New()
	ts.expectToken("tok", "buyer@x.io")
	ts.bookingUC.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrBookingConflict.WithMessage("You already have a booking for ThinkPad"))

	rec := ts.do(http.MethodPost, "/bookings", "tok", `{"productId":"`+productID.String()+`","phone":"555","meetingLocation":"Library"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "You already have a booking for ThinkPad")
}
