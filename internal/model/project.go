package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title          string    `gorm:"not null"`
	Description    string
	Deadline       *time.Time
	ConversationID uuid.UUID `gorm:"type:uuid;not null"`
	ToDoListID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Conversation Conversation `gorm:"foreignKey:ConversationID"`
	ToDoList     ToDoList     `gorm:"foreignKey:ToDoListID"`
}

// ToDoList владеет задачами проекта; создается вместе с проектом
type ToDoList struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ProjectMember представляет связь между пользователем и проектом
type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_project_members_pair"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_project_members_pair"`
	Role      string    `gorm:"not null;check:role IN ('user', 'owner')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Project Project `gorm:"foreignKey:ProjectID"`
	User    User    `gorm:"foreignKey:UserID"`
}

// Роли участников проекта
const (
	ProjectRoleUser  = "user"  // обычный участник
	ProjectRoleOwner = "owner" // создатель проекта
)
