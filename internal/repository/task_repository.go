package repository

import (
	"context"
	"errors"

	"teawork/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.ProjectTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectTask, error) {
	var task model.ProjectTask
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetByToDoListID retrieves all tasks in a specific to-do list
func (r *TaskRepository) GetByToDoListID(ctx context.Context, toDoListID uuid.UUID) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	result := r.db.WithContext(ctx).Where("to_do_list_id = ?", toDoListID).Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetAssignedToUser возвращает задачи, на которые назначен пользователь,
// по всем спискам
func (r *TaskRepository) GetAssignedToUser(ctx context.Context, userID uuid.UUID) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	result := r.db.WithContext(ctx).
		Joins("JOIN task_distributions ON task_distributions.task_id = project_tasks.id").
		Where("task_distributions.user_id = ?", userID).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdatePriority updates the priority of exactly one task
func (r *TaskRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority string) error {
	result := r.db.WithContext(ctx).Model(&model.ProjectTask{}).
		Where("id = ?", id).
		Update("priority", priority)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// AddDistribution назначает пользователя на задачу; повторное назначение
// той же пары не создает второй строки
func (r *TaskRepository) AddDistribution(ctx context.Context, taskID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO task_distributions (task_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		taskID, userID,
	).Error
}

// DeleteDistributionsForList удаляет назначения пользователя на задачи списка
func (r *TaskRepository) DeleteDistributionsForList(ctx context.Context, tx *gorm.DB, toDoListID, userID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Exec(
		"DELETE FROM task_distributions WHERE user_id = ? AND task_id IN (SELECT id FROM project_tasks WHERE to_do_list_id = ?)",
		userID, toDoListID,
	).Error
}

// AddComment adds a comment to a task
func (r *TaskRepository) AddComment(ctx context.Context, comment *model.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetComments retrieves all comments of a task
func (r *TaskRepository) GetComments(ctx context.Context, taskID uuid.UUID) ([]model.TaskComment, error) {
	var comments []model.TaskComment
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
