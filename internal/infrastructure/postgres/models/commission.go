package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionModel struct {
	ID            string `gorm:"primaryKey"`
	PublisherID   string `gorm:"index"`
	ClickID       string `gorm:"index"`
	ConversionID  string `gorm:"uniqueIndex"`
	SaleAmount    decimal.Decimal `gorm:"type:decimal(20,2)"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2)"`
	RateApplied   decimal.Decimal `gorm:"type:decimal(10,2)"`
	TierName      string
	IsFixedAmount bool
	Currency      string
	Status        string `gorm:"index"`
	Note          string
	StatusChanged time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (CommissionModel) TableName() string {
	return "commissions"
}
