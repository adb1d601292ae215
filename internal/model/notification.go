package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Type        string    `gorm:"not null;check:type IN ('message', 'invitation', 'task')"`
	Status      string    `gorm:"not null;check:status IN ('new', 'seen', 'old')"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}

// Типы уведомлений
const (
	NotificationMessage    = "message"
	NotificationInvitation = "invitation"
	NotificationTask       = "task"
)

// Статусы уведомления: new переходит в seen после показа,
// old выставляется внешним механизмом устаревания
const (
	NotificationStatusNew  = "new"
	NotificationStatusSeen = "seen"
	NotificationStatusOld  = "old"
)
