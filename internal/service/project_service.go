package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService struct {
	db                  *gorm.DB
	projects            *repository.ProjectRepository
	conversations       *repository.ConversationRepository
	tasks               *repository.TaskRepository
	invitations         *repository.InvitationRepository
	conversationCreator ConversationCreator
	conversationMembers ConversationMemberAdder
	identity            UserIdentity
	log                 *logger.Logger
}

var _ ProjectMemberAdder = (*ProjectService)(nil)

func NewProjectService(
	db *gorm.DB,
	projects *repository.ProjectRepository,
	conversations *repository.ConversationRepository,
	tasks *repository.TaskRepository,
	invitations *repository.InvitationRepository,
	conversationCreator ConversationCreator,
	conversationMembers ConversationMemberAdder,
	identity UserIdentity,
	log *logger.Logger,
) *ProjectService {
	return &ProjectService{
		db:                  db,
		projects:            projects,
		conversations:       conversations,
		tasks:               tasks,
		invitations:         invitations,
		conversationCreator: conversationCreator,
		conversationMembers: conversationMembers,
		identity:            identity,
		log:                 log,
	}
}

// Add создает проект вместе с его беседой и списком задач.
// Создатель становится участником с ролью owner. Все записи, включая
// беседу, выполняются в одной транзакции.
func (s *ProjectService) Add(ctx context.Context, dto ProjectAddDto) (*model.Project, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		Deadline:    dto.Deadline,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conversation, err := s.conversationCreator.AddConversation(ctx, tx, model.ConversationGroupChat, dto.Title)
		if err != nil {
			return err
		}
		project.ConversationID = conversation.ID

		list := &model.ToDoList{ID: uuid.New()}
		if err := s.projects.CreateToDoList(ctx, tx, list); err != nil {
			return err
		}
		project.ToDoListID = list.ID

		if err := s.projects.Create(ctx, tx, project); err != nil {
			return err
		}

		if err := s.AddProjectMember(ctx, tx, project, user, model.ProjectRoleOwner); err != nil {
			return err
		}
		return s.conversationMembers.AddMember(ctx, tx, conversation, user.ID)
	})
	if err != nil {
		s.log.Error("failed to create project", "title", dto.Title, "error", err)
		return nil, err
	}
	s.log.Info("project created", "project_id", project.ID, "owner_id", user.ID)
	return project, nil
}

// GetProjectById возвращает nil без ошибки, если проект не найден
func (s *ProjectService) GetProjectById(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.projects.GetByID(ctx, nil, id)
}

// GetMyProjects возвращает проекты текущего пользователя
func (s *ProjectService) GetMyProjects(ctx context.Context) ([]model.Project, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.projects.GetByUserID(ctx, user.ID)
}

// GetProjectMembers возвращает участников проекта
func (s *ProjectService) GetProjectMembers(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error) {
	return s.projects.GetMembers(ctx, projectID)
}

// AddProjectMember добавляет участника проекта с указанной ролью
func (s *ProjectService) AddProjectMember(ctx context.Context, tx *gorm.DB, project *model.Project, user *model.User, role string) error {
	member := &model.ProjectMember{
		ProjectID: project.ID,
		UserID:    user.ID,
		Role:      role,
	}
	if err := s.projects.AddMember(ctx, tx, member); err != nil {
		s.log.Error("failed to add project member",
			"project_id", project.ID, "user_id", user.ID, "error", err)
		return err
	}
	s.log.Info("project member added",
		"project_id", project.ID, "user_id", user.ID, "role", role)
	return nil
}

// DeleteUserFromProject удаляет пользователя из проекта вместе со всеми
// зависимыми записями: участие в проекте и беседе, назначения на задачи
// списка проекта и приглашения. Все удаления выполняются в одной
// транзакции; сам проект, пользователь и задачи не затрагиваются.
func (s *ProjectService) DeleteUserFromProject(ctx context.Context, userID, projectID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := s.projects.GetByID(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return repository.ErrProjectNotFound
		}

		if err := s.projects.DeleteMember(ctx, tx, projectID, userID); err != nil {
			return err
		}
		if err := s.conversations.DeleteMember(ctx, tx, project.ConversationID, userID); err != nil {
			return err
		}
		if err := s.tasks.DeleteDistributionsForList(ctx, tx, project.ToDoListID, userID); err != nil {
			return err
		}
		return s.invitations.DeleteForUserAndProject(ctx, tx, userID, projectID)
	})
	if err != nil {
		s.log.Error("failed to delete user from project",
			"user_id", userID, "project_id", projectID, "error", err)
		return err
	}
	s.log.Info("user removed from project", "user_id", userID, "project_id", projectID)
	return nil
}
