package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionStatus string

const (
	ConversionPending   ConversionStatus = "PENDING"
	ConversionValidated ConversionStatus = "VALIDATED"
	ConversionRejected  ConversionStatus = "REJECTED"
)

type Conversion struct {
	ID              string
	ClickID         string
	ExternalOrderID string // global idempotency key
	SaleAmount      decimal.Decimal
	Currency        string
	Status          ConversionStatus
	ProductInfo     string
	CustomerHash    string
	RejectionReason string
	RawPayload      string
	ValidatedAt     *time.Time
	CreatedAt       time.Time
}

// CanTransitionTo: статусы двигаются только вперёд, Rejected не воскресает.
func (c *Conversion) CanTransitionTo(next ConversionStatus) bool {
	switch c.Status {
	case ConversionPending:
		return next == ConversionValidated || next == ConversionRejected
	default:
		return false
	}
}

type ConversionRepository interface {
	// CreateConversion must fail with ErrDuplicateConversion when a conversion
	// with the same external order id already exists. The check and the insert
	// are atomic with respect to concurrent postbacks (unique index).
	CreateConversion(conversion *Conversion) error
	GetConversionByID(conversionID string) (*Conversion, error)
	GetConversionByExternalOrderID(externalOrderID string) (*Conversion, error)
	UpdateConversionStatus(conversionID string, status ConversionStatus, reason string) error
}
