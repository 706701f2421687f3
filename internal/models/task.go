package models

import "time"

// Task status values. The UI suggests a linear progression but the
// service accepts any of the three on create and update.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task represents a single to-do item owned by one user.
// UserID is stamped at creation and never changes afterwards.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"size:128;not null"`
	Description string `gorm:"size:1024"`
	Status      string `gorm:"size:16;index;not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
