package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownUserLabel показывается вместо имени приватного чата,
// когда собеседник покинул беседу
const UnknownUserLabel = "Unknown User"

type ConversationService struct {
	conversations *repository.ConversationRepository
	users         repository.UserRepositoryInterface
	identity      UserIdentity
	log           *logger.Logger
}

var (
	_ ConversationCreator     = (*ConversationService)(nil)
	_ ConversationMemberAdder = (*ConversationService)(nil)
)

func NewConversationService(
	conversations *repository.ConversationRepository,
	users repository.UserRepositoryInterface,
	identity UserIdentity,
	log *logger.Logger,
) *ConversationService {
	return &ConversationService{
		conversations: conversations,
		users:         users,
		identity:      identity,
		log:           log,
	}
}

// AddConversation создает беседу указанного типа. Запись создается через
// переданную транзакцию, если вызывающий уже открыл ее.
func (s *ConversationService) AddConversation(ctx context.Context, tx *gorm.DB, conversationType, name string) (*model.Conversation, error) {
	conversation := &model.Conversation{
		ID:   uuid.New(),
		Name: name,
		Type: conversationType,
	}
	if err := s.conversations.Create(ctx, tx, conversation); err != nil {
		s.log.Error("failed to create conversation", "error", err)
		return nil, err
	}
	s.log.Info("conversation created", "conversation_id", conversation.ID, "type", conversationType)
	return conversation, nil
}

// AddMember добавляет пользователя в беседу. Запись создается через
// переданную транзакцию, если вызывающий уже открыл ее.
func (s *ConversationService) AddMember(ctx context.Context, tx *gorm.DB, conversation *model.Conversation, userID uuid.UUID) error {
	member := &model.ConversationMember{
		ConversationID: conversation.ID,
		UserID:         userID,
	}
	if err := s.conversations.AddMember(ctx, tx, member); err != nil {
		s.log.Error("failed to add conversation member",
			"conversation_id", conversation.ID, "user_id", userID, "error", err)
		return err
	}
	s.log.Info("conversation member added",
		"conversation_id", conversation.ID, "user_id", userID)
	return nil
}

// GetConversationName выводит отображаемое имя беседы:
// сохраненное имя, если оно задано; для группового чата без имени — ID;
// для приватного чата — email собеседника
func (s *ConversationService) GetConversationName(ctx context.Context, conversationID uuid.UUID) (string, error) {
	conversation, err := s.conversations.GetByID(ctx, nil, conversationID)
	if err != nil {
		return "", err
	}
	if conversation == nil {
		return "", repository.ErrConversationNotFound
	}

	if conversation.Name != "" {
		return conversation.Name, nil
	}

	if conversation.Type == model.ConversationGroupChat {
		return conversation.ID.String(), nil
	}

	loggedUser, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return "", err
	}

	members, err := s.conversations.GetMembers(ctx, conversationID)
	if err != nil {
		return "", err
	}
	if len(members) == 0 {
		return conversation.ID.String(), nil
	}

	for _, member := range members {
		if member.UserID != loggedUser.ID {
			other, err := s.users.GetByID(ctx, member.UserID)
			if err != nil {
				return "", err
			}
			if other == nil {
				return UnknownUserLabel, nil
			}
			return other.Email, nil
		}
	}

	// Собеседник покинул чат, остался только текущий пользователь
	return UnknownUserLabel, nil
}
