package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Каталог принадлежит соседнему сервису, эти таблицы читаются read-only.

type OfferModel struct {
	ID           string `gorm:"primaryKey"`
	MerchantID   string `gorm:"index"`
	ProgramID    string `gorm:"index"`
	AffiliateURL string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OfferModel) TableName() string {
	return "offers"
}

type ProgramModel struct {
	ID                string `gorm:"primaryKey"`
	MerchantID        string `gorm:"index"`
	BaseCommissionPct decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsFixedAmount     bool
	FixedAmount       decimal.Decimal `gorm:"type:decimal(20,2)"`
	CookieDays        int
	Tiers             []TierModel `gorm:"foreignKey:ProgramID;references:ID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProgramModel) TableName() string {
	return "affiliate_programs"
}

type TierModel struct {
	ID        string `gorm:"primaryKey"`
	ProgramID string `gorm:"index"`
	Name      string
	MinAmount decimal.Decimal  `gorm:"type:decimal(20,2)"`
	MaxAmount *decimal.Decimal `gorm:"type:decimal(20,2)"`
	Percent   decimal.Decimal  `gorm:"type:decimal(10,2)"`
}

func (TierModel) TableName() string {
	return "commission_tiers"
}
