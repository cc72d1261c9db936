package models

import (
	"time"

	"gorm.io/gorm"
)

type ClickModel struct {
	ID           string `gorm:"primaryKey"`
	OfferID      string `gorm:"index"`
	PublisherID  string `gorm:"index"`
	SessionID    string `gorm:"index"`
	TrackingCode string `gorm:"uniqueIndex"`
	IP           string
	UserAgent    string
	Referrer     string
	DeviceType   string
	IsBot        bool
	Country      string
	City         string
	SubID1       string
	SubID2       string
	SubID3       string
	IsConverted  bool
	ConversionID string
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (ClickModel) TableName() string {
	return "click_events"
}
