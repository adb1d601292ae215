package repository

import (
	"context"
	"errors"

	"teawork/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create adds a new project to the database
func (r *ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(project).Error
}

// CreateToDoList adds a new to-do list to the database
func (r *ProjectRepository) CreateToDoList(ctx context.Context, tx *gorm.DB, list *model.ToDoList) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(list).Error
}

// GetByID возвращает nil без ошибки, если проект не найден
func (r *ProjectRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Project, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var project model.Project
	err := db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByToDoListID возвращает nil без ошибки, если проект не найден
func (r *ProjectRepository) GetByToDoListID(ctx context.Context, toDoListID uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "to_do_list_id = ?", toDoListID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByUserID возвращает проекты, в которых пользователь состоит участником
func (r *ProjectRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// AddMember добавляет участника проекта
func (r *ProjectRepository) AddMember(ctx context.Context, tx *gorm.DB, member *model.ProjectMember) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(member).Error
}

// GetMembers возвращает участников проекта вместе с данными пользователей
func (r *ProjectRepository) GetMembers(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteMember удаляет запись участника для пары (проект, пользователь)
func (r *ProjectRepository) DeleteMember(ctx context.Context, tx *gorm.DB, projectID, userID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{}).Error
}
