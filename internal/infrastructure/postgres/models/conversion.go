package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionModel struct {
	ID              string `gorm:"primaryKey"`
	ClickID         string `gorm:"index"`
	ExternalOrderID string `gorm:"uniqueIndex"`
	SaleAmount      decimal.Decimal `gorm:"type:decimal(20,2)"`
	Currency        string
	Status          string `gorm:"index"`
	ProductInfo     string
	CustomerHash    string
	RejectionReason string
	RawPayload      string `gorm:"type:text"`
	ValidatedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (ConversionModel) TableName() string {
	return "conversions"
}
