package handler

import (
	"net/http"

	"teawork/internal/model"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationSvc *service.NotificationService
}

func NewNotificationHandler(notificationSvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// NotificationResponse представляет уведомление пользователя
type NotificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

// GetMyNew возвращает непросмотренные уведомления текущего пользователя
func (h *NotificationHandler) GetMyNew(c *gin.Context) {
	notifications, err := h.notificationSvc.GetMyNewNotifications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	response := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		response[i] = NotificationResponse{
			ID:          notification.ID.String(),
			Title:       notification.Title,
			Description: notification.Description,
			Type:        notification.Type,
			Status:      notification.Status,
		}
	}

	c.JSON(http.StatusOK, response)
}

// Displayed помечает уведомление как просмотренное
func (h *NotificationHandler) Displayed(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID format"})
		return
	}

	notification := &model.Notification{ID: notificationID}
	if err := h.notificationSvc.NotificationDisplayed(c.Request.Context(), notification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as seen"})
}
