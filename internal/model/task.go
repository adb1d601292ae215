package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectTask struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ToDoListID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Start       *time.Time
	Deadline    *time.Time
	State       string `gorm:"not null;check:state IN ('to_do', 'in_progress', 'done')"`
	Priority    string `gorm:"not null;check:priority IN ('low', 'medium', 'high')"`

	ToDoList ToDoList `gorm:"foreignKey:ToDoListID"`
}

// Состояния задачи
const (
	TaskStateToDo       = "to_do"
	TaskStateInProgress = "in_progress"
	TaskStateDone       = "done"
)

// Приоритеты задачи
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// TaskDistribution представляет назначение пользователя на задачу
type TaskDistribution struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_task_distributions_pair"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_task_distributions_pair"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Task ProjectTask `gorm:"foreignKey:TaskID"`
	User User        `gorm:"foreignKey:UserID"`
}

type TaskComment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Task ProjectTask `gorm:"foreignKey:TaskID"`
	User User        `gorm:"foreignKey:UserID"`
}
