package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"upkeep/internal/delivery/http/middleware"
	domainerrors "upkeep/internal/domain/errors"
	mockUC "upkeep/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notifications/test", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotificationHandler_SendTestNotification_Success(t *testing.T) {
	reminderUC := mockUC.NewMockReminderUsecase(t)
	handler := NewNotificationHandler(reminderUC)

	c, rec := newHandlerTestContext(t)
	c.Set(middleware.ContextKeyUserID, "user-1")

	reminderUC.EXPECT().
		SendTestNotification(c.Request().Context(), "user-1").
		Return("Test notification sent successfully.", nil)

	err := handler.SendTestNotification(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Test notification sent successfully.", body["message"])
}

func TestNotificationHandler_SendTestNotification_MissingPrincipal(t *testing.T) {
	reminderUC := mockUC.NewMockReminderUsecase(t)
	handler := NewNotificationHandler(reminderUC)

	c, _ := newHandlerTestContext(t)

	err := handler.SendTestNotification(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestNotificationHandler_SendTestNotification_UsecaseError(t *testing.T) {
	reminderUC := mockUC.NewMockReminderUsecase(t)
	handler := NewNotificationHandler(reminderUC)

	c, _ := newHandlerTestContext(t)
	c.Set(middleware.ContextKeyUserID, "user-1")

	reminderUC.EXPECT().
		SendTestNotification(c.Request().Context(), "user-1").
		Return("", domainerrors.ErrNoDeviceTokens)

	err := handler.SendTestNotification(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusPreconditionFailed, appErr.HTTPCode())
	assert.Equal(t, "NO_DEVICE_TOKENS", appErr.ErrorCode())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
