package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "upkeep/internal/domain/errors"
	mockSvc "upkeep/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notifications/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "valid-token").
		Return("user-1", nil)

	middleware := NewAuthMiddleware(verifier)
	c := newAuthTestContext(t, "Bearer valid-token")

	var gotUserID string
	next := func(c echo.Context) error {
		gotUserID, _ = c.Get(ContextKeyUserID).(string)

		return nil
	}

	err := middleware.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, "user-1", gotUserID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	middleware := NewAuthMiddleware(verifier)
	c := newAuthTestContext(t, "")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := middleware.Authenticate(next)(c)
	require.Error(t, err)
	assert.False(t, nextCalled)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	middleware := NewAuthMiddleware(verifier)
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := middleware.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "expired-token").
		Return("", errors.New("token expired"))

	middleware := NewAuthMiddleware(verifier)
	c := newAuthTestContext(t, "Bearer expired-token")

	err := middleware.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
