package service

import (
	"context"
	"errors"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvitationAlreadyHandled is returned when accepting or declining
	// an invitation that already reached a terminal status
	ErrInvitationAlreadyHandled = errors.New("invitation already handled")
)

// ProjectMemberAdder добавляет участника проекта. InvitationService не пишет
// строки project_members напрямую — только через этот интерфейс.
type ProjectMemberAdder interface {
	AddProjectMember(ctx context.Context, tx *gorm.DB, project *model.Project, user *model.User, role string) error
}

// ConversationMemberAdder добавляет участника беседы
type ConversationMemberAdder interface {
	AddMember(ctx context.Context, tx *gorm.DB, conversation *model.Conversation, userID uuid.UUID) error
}

// ConversationCreator создает новую беседу
type ConversationCreator interface {
	AddConversation(ctx context.Context, tx *gorm.DB, conversationType, name string) (*model.Conversation, error)
}

type InvitationService struct {
	db                  *gorm.DB
	invitations         *repository.InvitationRepository
	projects            *repository.ProjectRepository
	conversations       *repository.ConversationRepository
	projectMembers      ProjectMemberAdder
	conversationMembers ConversationMemberAdder
	identity            UserIdentity
	log                 *logger.Logger
}

func NewInvitationService(
	db *gorm.DB,
	invitations *repository.InvitationRepository,
	projects *repository.ProjectRepository,
	conversations *repository.ConversationRepository,
	projectMembers ProjectMemberAdder,
	conversationMembers ConversationMemberAdder,
	identity UserIdentity,
	log *logger.Logger,
) *InvitationService {
	return &InvitationService{
		db:                  db,
		invitations:         invitations,
		projects:            projects,
		conversations:       conversations,
		projectMembers:      projectMembers,
		conversationMembers: conversationMembers,
		identity:            identity,
		log:                 log,
	}
}

// IsInvitationExist проверяет, есть ли активное (нетерминальное) приглашение
// для пары (пользователь, проект)
func (s *InvitationService) IsInvitationExist(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	invitation, err := s.invitations.FindActive(ctx, nil, userID, projectID)
	if err != nil {
		return false, err
	}
	return invitation != nil, nil
}

// SendInvitation создает приглашение в статусе pending. Если активное
// приглашение для пары уже существует, ничего не делает.
func (s *InvitationService) SendInvitation(ctx context.Context, userID, projectID uuid.UUID) error {
	// Проверка и вставка выполняются в одной транзакции
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.invitations.FindActive(ctx, tx, userID, projectID)
		if err != nil {
			return err
		}
		if existing != nil {
			s.log.Info("invitation already exists",
				"user_id", userID, "project_id", projectID)
			return nil
		}

		invitation := &model.Invitation{
			UserID:    userID,
			ProjectID: projectID,
			Status:    model.InvitationPending,
		}
		return s.invitations.Create(ctx, tx, invitation)
	})
	if err != nil {
		s.log.Error("failed to send invitation",
			"user_id", userID, "project_id", projectID, "error", err)
		return err
	}
	s.log.Info("invitation sent", "user_id", userID, "project_id", projectID)
	return nil
}

// AcceptInvitation принимает приглашение: добавляет текущего пользователя
// в проект и его беседу и переводит приглашение в статус accepted.
// Все записи попадают в одну транзакцию — либо фиксируются вместе,
// либо не видны вовсе.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID uuid.UUID) error {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invitation, err := s.invitations.GetByID(ctx, tx, invitationID)
		if err != nil {
			return err
		}
		if invitation == nil {
			return repository.ErrInvitationNotFound
		}
		if invitation.Status == model.InvitationAccepted || invitation.Status == model.InvitationDeclined {
			return ErrInvitationAlreadyHandled
		}

		project, err := s.projects.GetByID(ctx, tx, invitation.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return repository.ErrProjectNotFound
		}

		conversation, err := s.conversations.GetByID(ctx, tx, project.ConversationID)
		if err != nil {
			return err
		}
		if conversation == nil {
			return repository.ErrConversationNotFound
		}

		if err := s.projectMembers.AddProjectMember(ctx, tx, project, user, model.ProjectRoleUser); err != nil {
			return err
		}
		if err := s.conversationMembers.AddMember(ctx, tx, conversation, user.ID); err != nil {
			return err
		}

		return s.invitations.UpdateStatus(ctx, tx, invitation.ID, model.InvitationAccepted)
	})
	if err != nil {
		s.log.Error("failed to accept invitation",
			"invitation_id", invitationID, "user_id", user.ID, "error", err)
		return err
	}
	s.log.Info("invitation accepted", "invitation_id", invitationID, "user_id", user.ID)
	return nil
}

// DeclineInvitation переводит приглашение в терминальный статус declined
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID uuid.UUID) error {
	invitation, err := s.invitations.GetByID(ctx, nil, invitationID)
	if err != nil {
		return err
	}
	if invitation == nil {
		return repository.ErrInvitationNotFound
	}
	if invitation.Status == model.InvitationAccepted || invitation.Status == model.InvitationDeclined {
		return ErrInvitationAlreadyHandled
	}

	if err := s.invitations.UpdateStatus(ctx, nil, invitation.ID, model.InvitationDeclined); err != nil {
		s.log.Error("failed to decline invitation", "invitation_id", invitationID, "error", err)
		return err
	}
	s.log.Info("invitation declined", "invitation_id", invitationID)
	return nil
}

// GetMyInvitations возвращает активные приглашения текущего пользователя
func (s *InvitationService) GetMyInvitations(ctx context.Context) ([]model.Invitation, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.invitations.GetActiveByUserID(ctx, user.ID)
}
