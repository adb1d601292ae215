package repository

import (
	"context"

	"teawork/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DesignConceptRepository struct {
	db *gorm.DB
}

func NewDesignConceptRepository(db *gorm.DB) *DesignConceptRepository {
	return &DesignConceptRepository{db: db}
}

// Create adds a new design concept to the database
func (r *DesignConceptRepository) Create(ctx context.Context, concept *model.DesignConcept) error {
	return r.db.WithContext(ctx).Create(concept).Error
}

// GetByProjectID retrieves all design concepts of a project
func (r *DesignConceptRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.DesignConcept, error) {
	var concepts []model.DesignConcept
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&concepts)
	if result.Error != nil {
		return nil, result.Error
	}
	return concepts, nil
}
