package handler

import (
	"errors"
	"net/http"

	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DesignConceptHandler struct {
	conceptSvc *service.DesignConceptService
}

func NewDesignConceptHandler(conceptSvc *service.DesignConceptService) *DesignConceptHandler {
	return &DesignConceptHandler{conceptSvc: conceptSvc}
}

// DesignConceptRequest представляет запрос на создание концепта оформления
type DesignConceptRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// DesignConceptResponse представляет концепт оформления
type DesignConceptResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create прикрепляет концепт оформления к проекту
func (h *DesignConceptHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req DesignConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.conceptSvc.Add(c.Request.Context(), service.DesignConceptDto{
		Title:       req.Title,
		Description: req.Description,
	}, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create design concept"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Design concept created successfully"})
}

// GetByProject возвращает концепты оформления проекта
func (h *DesignConceptHandler) GetByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	concepts, err := h.conceptSvc.GetDesignConcepts(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve design concepts"})
		return
	}

	response := make([]DesignConceptResponse, len(concepts))
	for i, concept := range concepts {
		response[i] = DesignConceptResponse{
			ID:          concept.ID.String(),
			ProjectID:   concept.ProjectID.String(),
			UserID:      concept.UserID.String(),
			Title:       concept.Title,
			Description: concept.Description,
		}
	}

	c.JSON(http.StatusOK, response)
}
