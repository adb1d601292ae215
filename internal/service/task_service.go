package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	identity UserIdentity
	log      *logger.Logger
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	identity UserIdentity,
	log *logger.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		identity: identity,
		log:      log,
	}
}

// Add создает задачу в списке задач проекта
func (s *TaskService) Add(ctx context.Context, dto ProjectTaskAddDto, projectID uuid.UUID) (*model.ProjectTask, error) {
	project, err := s.projects.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, repository.ErrProjectNotFound
	}

	state := dto.State
	if state == "" {
		state = model.TaskStateToDo
	}
	priority := dto.Priority
	if priority == "" {
		priority = model.TaskPriorityLow
	}

	task := &model.ProjectTask{
		ID:          uuid.New(),
		ToDoListID:  project.ToDoListID,
		Title:       dto.Title,
		Description: dto.Description,
		Start:       dto.Start,
		Deadline:    dto.Deadline,
		State:       state,
		Priority:    priority,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Error("failed to create task", "project_id", projectID, "error", err)
		return nil, err
	}
	s.log.Info("task created", "task_id", task.ID, "to_do_list_id", task.ToDoListID)
	return task, nil
}

// AddTaskDistribution назначает пользователя на задачу. Повторный вызов
// с теми же аргументами не создает второй записи.
func (s *TaskService) AddTaskDistribution(ctx context.Context, taskID, userID uuid.UUID) error {
	if err := s.tasks.AddDistribution(ctx, taskID, userID); err != nil {
		s.log.Error("failed to add task distribution",
			"task_id", taskID, "user_id", userID, "error", err)
		return err
	}
	s.log.Info("task distribution added", "task_id", taskID, "user_id", userID)
	return nil
}

// AddComment добавляет комментарий от имени текущего пользователя
func (s *TaskService) AddComment(ctx context.Context, dto TaskCommentDto, taskID uuid.UUID) error {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return err
	}

	comment := &model.TaskComment{
		TaskID:      taskID,
		UserID:      user.ID,
		Description: dto.Description,
	}
	if err := s.tasks.AddComment(ctx, comment); err != nil {
		s.log.Error("failed to add comment", "task_id", taskID, "error", err)
		return err
	}
	s.log.Info("comment added", "task_id", taskID, "user_id", user.ID)
	return nil
}

// ChangePriorityTask меняет приоритет ровно одной задачи
func (s *TaskService) ChangePriorityTask(ctx context.Context, taskID uuid.UUID, priority string) error {
	if err := s.tasks.UpdatePriority(ctx, taskID, priority); err != nil {
		s.log.Error("failed to change task priority",
			"task_id", taskID, "priority", priority, "error", err)
		return err
	}
	s.log.Info("task priority changed", "task_id", taskID, "priority", priority)
	return nil
}

// GetProjectTasks возвращает задачи указанного списка
func (s *TaskService) GetProjectTasks(ctx context.Context, toDoListID uuid.UUID) ([]model.ProjectTask, error) {
	return s.tasks.GetByToDoListID(ctx, toDoListID)
}

// GetMyProjectTasks возвращает задачи, назначенные текущему пользователю,
// по всем спискам
func (s *TaskService) GetMyProjectTasks(ctx context.Context) ([]model.ProjectTask, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.tasks.GetAssignedToUser(ctx, user.ID)
}

// GetTaskComments возвращает комментарии задачи
func (s *TaskService) GetTaskComments(ctx context.Context, taskID uuid.UUID) ([]model.TaskComment, error) {
	return s.tasks.GetComments(ctx, taskID)
}

// GetProjectId возвращает ID проекта, которому принадлежит список задач.
// Возвращает uuid.Nil без ошибки, если проект не найден.
func (s *TaskService) GetProjectId(ctx context.Context, toDoListID uuid.UUID) (uuid.UUID, error) {
	project, err := s.projects.GetByToDoListID(ctx, toDoListID)
	if err != nil {
		return uuid.Nil, err
	}
	if project == nil {
		return uuid.Nil, nil
	}
	return project.ID, nil
}
