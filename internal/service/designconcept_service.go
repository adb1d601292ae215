package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
)

type DesignConceptService struct {
	concepts *repository.DesignConceptRepository
	projects *repository.ProjectRepository
	identity UserIdentity
	log      *logger.Logger
}

func NewDesignConceptService(
	concepts *repository.DesignConceptRepository,
	projects *repository.ProjectRepository,
	identity UserIdentity,
	log *logger.Logger,
) *DesignConceptService {
	return &DesignConceptService{
		concepts: concepts,
		projects: projects,
		identity: identity,
		log:      log,
	}
}

// Add прикрепляет концепт оформления к проекту от имени текущего пользователя
func (s *DesignConceptService) Add(ctx context.Context, dto DesignConceptDto, projectID uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, nil, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return repository.ErrProjectNotFound
	}

	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return err
	}

	concept := &model.DesignConcept{
		ProjectID:   project.ID,
		UserID:      user.ID,
		Title:       dto.Title,
		Description: dto.Description,
	}
	if err := s.concepts.Create(ctx, concept); err != nil {
		s.log.Error("failed to create design concept", "project_id", projectID, "error", err)
		return err
	}
	s.log.Info("design concept created", "project_id", projectID, "user_id", user.ID)
	return nil
}

// GetDesignConcepts возвращает концепты оформления проекта
func (s *DesignConceptService) GetDesignConcepts(ctx context.Context, projectID uuid.UUID) ([]model.DesignConcept, error) {
	return s.concepts.GetByProjectID(ctx, projectID)
}
