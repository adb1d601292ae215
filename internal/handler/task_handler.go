package handler

import (
	"errors"
	"net/http"
	"time"

	"teawork/internal/model"
	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskSvc *service.TaskService
}

func NewTaskHandler(taskSvc *service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// TaskRequest представляет запрос на создание задачи
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Start       *time.Time `json:"start"`
	Deadline    *time.Time `json:"deadline"`
	State       string     `json:"state" binding:"omitempty,oneof=to_do in_progress done"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// TaskPriorityRequest представляет запрос на смену приоритета задачи
type TaskPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low medium high"`
}

// TaskDistributionRequest представляет запрос на назначение пользователя
type TaskDistributionRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// TaskCommentRequest представляет запрос на добавление комментария
type TaskCommentRequest struct {
	Description string `json:"description" binding:"required"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID          string     `json:"id"`
	ToDoListID  string     `json:"to_do_list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       *time.Time `json:"start,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	State       string     `json:"state"`
	Priority    string     `json:"priority"`
}

// TaskCommentResponse представляет комментарий к задаче
type TaskCommentResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Description string `json:"description"`
}

// Create создает задачу в списке задач проекта
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskSvc.Add(c.Request.Context(), service.ProjectTaskAddDto{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		Deadline:    req.Deadline,
		State:       req.State,
		Priority:    req.Priority,
	}, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task))
}

// Distribute назначает пользователя на задачу; повторное назначение
// не создает дубликата
func (h *TaskHandler) Distribute(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	if err := h.taskSvc.AddTaskDistribution(c.Request.Context(), taskID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to distribute task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task distributed successfully"})
}

// AddComment добавляет комментарий к задаче от имени текущего пользователя
func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.taskSvc.AddComment(c.Request.Context(), service.TaskCommentDto{
		Description: req.Description,
	}, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully"})
}

// GetComments возвращает комментарии задачи
func (h *TaskHandler) GetComments(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	comments, err := h.taskSvc.GetTaskComments(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]TaskCommentResponse, len(comments))
	for i, comment := range comments {
		response[i] = TaskCommentResponse{
			ID:          comment.ID.String(),
			UserID:      comment.UserID.String(),
			UserName:    comment.User.Name,
			Description: comment.Description,
		}
	}

	c.JSON(http.StatusOK, response)
}

// ChangePriority меняет приоритет ровно одной задачи
func (h *TaskHandler) ChangePriority(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.taskSvc.ChangePriorityTask(c.Request.Context(), taskID, req.Priority)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change task priority"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task priority changed successfully"})
}

// GetByToDoList возвращает задачи указанного списка
func (h *TaskHandler) GetByToDoList(c *gin.Context) {
	toDoListID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to-do list ID format"})
		return
	}

	tasks, err := h.taskSvc.GetProjectTasks(c.Request.Context(), toDoListID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, taskResponses(tasks))
}

// GetMy возвращает задачи, назначенные текущему пользователю
func (h *TaskHandler) GetMy(c *gin.Context) {
	tasks, err := h.taskSvc.GetMyProjectTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, taskResponses(tasks))
}

// GetProjectOfList возвращает ID проекта, владеющего списком задач
func (h *TaskHandler) GetProjectOfList(c *gin.Context) {
	toDoListID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to-do list ID format"})
		return
	}

	projectID, err := h.taskSvc.GetProjectId(c.Request.Context(), toDoListID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}
	if projectID == uuid.Nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project_id": projectID.String()})
}

func taskResponse(task *model.ProjectTask) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		ToDoListID:  task.ToDoListID.String(),
		Title:       task.Title,
		Description: task.Description,
		Start:       task.Start,
		Deadline:    task.Deadline,
		State:       task.State,
		Priority:    task.Priority,
	}
}

func taskResponses(tasks []model.ProjectTask) []TaskResponse {
	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}
	return response
}
