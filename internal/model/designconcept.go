package model

import (
	"time"

	"github.com/google/uuid"
)

// DesignConcept представляет концепт оформления, прикрепленный к проекту
type DesignConcept struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	Title       string    `gorm:"not null"`
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Project Project `gorm:"foreignKey:ProjectID"`
	User    User    `gorm:"foreignKey:UserID"`
}
