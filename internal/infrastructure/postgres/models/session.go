package models

import (
	"time"

	"gorm.io/gorm"
)

type SessionModel struct {
	ID             string `gorm:"primaryKey"`
	Key            string `gorm:"uniqueIndex"`
	PublisherID    string `gorm:"index"`
	IP             string
	StartedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time `gorm:"index"`
	ClickCount     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (SessionModel) TableName() string {
	return "click_sessions"
}
