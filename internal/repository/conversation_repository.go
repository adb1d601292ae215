package repository

import (
	"context"
	"errors"

	"teawork/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create adds a new conversation to the database
func (r *ConversationRepository) Create(ctx context.Context, tx *gorm.DB, conversation *model.Conversation) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(conversation).Error
}

// GetByID возвращает nil без ошибки, если беседа не найдена
func (r *ConversationRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Conversation, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var conversation model.Conversation
	err := db.WithContext(ctx).First(&conversation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// AddMember добавляет участника беседы
func (r *ConversationRepository) AddMember(ctx context.Context, tx *gorm.DB, member *model.ConversationMember) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(member).Error
}

// GetMembers retrieves all members of a conversation
func (r *ConversationRepository) GetMembers(ctx context.Context, conversationID uuid.UUID) ([]model.ConversationMember, error) {
	var members []model.ConversationMember
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteMember удаляет запись участника для пары (беседа, пользователь)
func (r *ConversationRepository) DeleteMember(ctx context.Context, tx *gorm.DB, conversationID, userID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&model.ConversationMember{}).Error
}
