package handler

import (
	"net/http"
	"time"

	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectSvc *service.ProjectService
}

func NewProjectHandler(projectSvc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ProjectRequest представляет запрос на создание проекта
type ProjectRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// ProjectResponse представляет ответ с данными проекта
type ProjectResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ConversationID string     `json:"conversation_id"`
	ToDoListID     string     `json:"to_do_list_id"`
}

// ProjectMemberResponse представляет участника проекта
type ProjectMemberResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Create создает новый проект
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projectSvc.Add(c.Request.Context(), service.ProjectAddDto{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, ProjectResponse{
		ID:             project.ID.String(),
		Title:          project.Title,
		Description:    project.Description,
		Deadline:       project.Deadline,
		ConversationID: project.ConversationID.String(),
		ToDoListID:     project.ToDoListID.String(),
	})
}

// GetByID возвращает проект по его ID
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	project, err := h.projectSvc.GetProjectById(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, ProjectResponse{
		ID:             project.ID.String(),
		Title:          project.Title,
		Description:    project.Description,
		Deadline:       project.Deadline,
		ConversationID: project.ConversationID.String(),
		ToDoListID:     project.ToDoListID.String(),
	})
}

// GetMy возвращает проекты текущего пользователя
func (h *ProjectHandler) GetMy(c *gin.Context) {
	projects, err := h.projectSvc.GetMyProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		response[i] = ProjectResponse{
			ID:             project.ID.String(),
			Title:          project.Title,
			Description:    project.Description,
			Deadline:       project.Deadline,
			ConversationID: project.ConversationID.String(),
			ToDoListID:     project.ToDoListID.String(),
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetMembers возвращает участников проекта
func (h *ProjectHandler) GetMembers(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	members, err := h.projectSvc.GetProjectMembers(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project members"})
		return
	}

	response := make([]ProjectMemberResponse, len(members))
	for i, member := range members {
		response[i] = ProjectMemberResponse{
			UserID: member.UserID.String(),
			Email:  member.User.Email,
			Name:   member.User.Name,
			Role:   member.Role,
		}
	}

	c.JSON(http.StatusOK, response)
}

// RemoveMember удаляет пользователя из проекта вместе со всеми
// зависимыми записями
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.projectSvc.DeleteUserFromProject(c.Request.Context(), userID, projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove project member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project member removed successfully"})
}
