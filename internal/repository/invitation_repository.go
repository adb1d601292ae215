package repository

import (
	"context"
	"errors"

	"teawork/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create adds a new invitation to the database
func (r *InvitationRepository) Create(ctx context.Context, tx *gorm.DB, invitation *model.Invitation) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(invitation).Error
}

// GetByID возвращает nil без ошибки, если приглашение не найдено
func (r *InvitationRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Invitation, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var invitation model.Invitation
	err := db.WithContext(ctx).First(&invitation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindActive ищет нетерминальное приглашение для пары (пользователь, проект).
// Возвращает nil без ошибки, если такого нет.
func (r *InvitationRepository) FindActive(ctx context.Context, tx *gorm.DB, userID, projectID uuid.UUID) (*model.Invitation, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var invitation model.Invitation
	err := db.WithContext(ctx).
		Where("user_id = ? AND project_id = ? AND status IN ?",
			userID, projectID, []string{model.InvitationPending, model.InvitationProcessed}).
		First(&invitation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetActiveByUserID возвращает нетерминальные приглашения пользователя
func (r *InvitationRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("user_id = ? AND status IN ?",
			userID, []string{model.InvitationPending, model.InvitationProcessed}).
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// UpdateStatus updates the status of an existing invitation
func (r *InvitationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	result := db.WithContext(ctx).Model(&model.Invitation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

// DeleteForUserAndProject удаляет все приглашения пары (пользователь, проект)
func (r *InvitationRepository) DeleteForUserAndProject(ctx context.Context, tx *gorm.DB, userID, projectID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&model.Invitation{}).Error
}
