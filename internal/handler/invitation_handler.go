package handler

import (
	"errors"
	"net/http"

	"teawork/internal/model"
	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	invitationSvc   *service.InvitationService
	notificationSvc *service.NotificationService
	userSvc         *service.UserService
}

func NewInvitationHandler(
	invitationSvc *service.InvitationService,
	notificationSvc *service.NotificationService,
	userSvc *service.UserService,
) *InvitationHandler {
	return &InvitationHandler{
		invitationSvc:   invitationSvc,
		notificationSvc: notificationSvc,
		userSvc:         userSvc,
	}
}

// SendInvitationRequest представляет запрос на приглашение пользователя в проект
type SendInvitationRequest struct {
	Email     string `json:"email" binding:"required,email"`
	ProjectID string `json:"project_id" binding:"required,uuid"`
}

// InvitationResponse представляет приглашение пользователя
type InvitationResponse struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	ProjectTitle string `json:"project_title"`
	Status       string `json:"status"`
}

// Send приглашает пользователя в проект по email
func (h *InvitationHandler) Send(c *gin.Context) {
	var req SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	// Находим приглашаемого пользователя по email
	targetUser, err := h.userSvc.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if targetUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.invitationSvc.SendInvitation(c.Request.Context(), targetUser.ID, projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invitation"})
		return
	}

	// Уведомляем пользователя о приглашении
	if err := h.notificationSvc.NewNotification(c.Request.Context(), service.NotificationDto{
		UserID:      targetUser.ID,
		Title:       "Project invitation",
		Description: "You have been invited to a project",
		Type:        model.NotificationInvitation,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation sent successfully"})
}

// Accept принимает приглашение текущим пользователем
func (h *InvitationHandler) Accept(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID format"})
		return
	}

	err = h.invitationSvc.AcceptInvitation(c.Request.Context(), invitationID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvitationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		case errors.Is(err, service.ErrInvitationAlreadyHandled):
			c.JSON(http.StatusConflict, gin.H{"error": "Invitation already handled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted successfully"})
}

// Decline отклоняет приглашение
func (h *InvitationHandler) Decline(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID format"})
		return
	}

	err = h.invitationSvc.DeclineInvitation(c.Request.Context(), invitationID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvitationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		case errors.Is(err, service.ErrInvitationAlreadyHandled):
			c.JSON(http.StatusConflict, gin.H{"error": "Invitation already handled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline invitation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation declined successfully"})
}

// GetMy возвращает активные приглашения текущего пользователя
func (h *InvitationHandler) GetMy(c *gin.Context) {
	invitations, err := h.invitationSvc.GetMyInvitations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invitations"})
		return
	}

	response := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		response[i] = InvitationResponse{
			ID:           invitation.ID.String(),
			ProjectID:    invitation.ProjectID.String(),
			ProjectTitle: invitation.Project.Title,
			Status:       invitation.Status,
		}
	}

	c.JSON(http.StatusOK, response)
}
