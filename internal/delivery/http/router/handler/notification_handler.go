// Package handler contains the HTTP handlers of the callable endpoints.
package handler

import (
	"net/http"

	"upkeep/internal/delivery/http/middleware"
	"upkeep/internal/delivery/http/response"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles the callable notification endpoints.
type NotificationHandler struct {
	reminderUC usecase.ReminderUsecase
}

// NewNotificationHandler creates a new NotificationHandler instance.
func NewNotificationHandler(reminderUC usecase.ReminderUsecase) *NotificationHandler {
	return &NotificationHandler{reminderUC: reminderUC}
}

// SendTestNotification sends a fixed test push back to the calling user.
// No request payload; the caller identity comes from the auth middleware.
func (h *NotificationHandler) SendTestNotification(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return domainerrors.ErrUnauthenticated
	}

	message, err := h.reminderUC.SendTestNotification(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
