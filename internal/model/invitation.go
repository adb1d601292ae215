package model

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"not null;check:status IN ('pending', 'processed', 'accepted', 'declined')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Project Project `gorm:"foreignKey:ProjectID"`
	User    User    `gorm:"foreignKey:UserID"`
}

// Статусы приглашения: pending и processed активны,
// accepted и declined терминальны
const (
	InvitationPending   = "pending"
	InvitationProcessed = "processed"
	InvitationAccepted  = "accepted"
	InvitationDeclined  = "declined"
)
