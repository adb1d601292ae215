package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string
	Type      string    `gorm:"not null;check:type IN ('private_chat', 'group_chat')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Типы бесед
const (
	ConversationPrivateChat = "private_chat"
	ConversationGroupChat   = "group_chat"
)

// ConversationMember представляет участие пользователя в беседе
type ConversationMember struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_conversation_members_pair"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_conversation_members_pair"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Conversation Conversation `gorm:"foreignKey:ConversationID"`
	User         User         `gorm:"foreignKey:UserID"`
}
