package models

import "time"

// Activity is one recorded action of a logged-in user.
type Activity struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Method    string `gorm:"size:8;not null"`
	Path      string `gorm:"size:255;not null"`
	Action    string `gorm:"size:2048"`
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
