package handler

import (
	"errors"
	"net/http"

	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConversationHandler struct {
	conversationSvc *service.ConversationService
}

func NewConversationHandler(conversationSvc *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationSvc: conversationSvc}
}

// GetName возвращает отображаемое имя беседы для текущего пользователя
func (h *ConversationHandler) GetName(c *gin.Context) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID format"})
		return
	}

	name, err := h.conversationSvc.GetConversationName(c.Request.Context(), conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve conversation name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}
