package service

import (
	"time"

	"github.com/google/uuid"
)

// ProjectAddDto содержит данные для создания проекта
type ProjectAddDto struct {
	Title       string
	Description string
	Deadline    *time.Time
}

// ProjectTaskAddDto содержит данные для создания задачи
type ProjectTaskAddDto struct {
	Title       string
	Description string
	Start       *time.Time
	Deadline    *time.Time
	State       string
	Priority    string
}

// TaskCommentDto содержит данные комментария к задаче
type TaskCommentDto struct {
	Description string
}

// NotificationDto содержит данные нового уведомления
type NotificationDto struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Type        string
}

// DesignConceptDto содержит данные концепта оформления
type DesignConceptDto struct {
	Title       string
	Description string
}
