package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionApproved CommissionStatus = "APPROVED"
	CommissionRejected CommissionStatus = "REJECTED"
	CommissionPaid     CommissionStatus = "PAID"
)

// Commission - денежное обязательство перед паблишером.
// Exists only when the source click carries a known publisher.
type Commission struct {
	ID            string
	PublisherID   string
	ClickID       string
	ConversionID  string
	SaleAmount    decimal.Decimal
	Amount        decimal.Decimal
	RateApplied   decimal.Decimal // percent, zero for fixed-amount programs
	TierName      string
	IsFixedAmount bool
	Currency      string
	Status        CommissionStatus
	Note          string
	StatusChanged time.Time
	CreatedAt     time.Time
}

// CanTransitionTo enforces the four-state machine:
// Pending -> Approved -> Paid, Pending -> Rejected. Paid and Rejected are terminal.
func (c *Commission) CanTransitionTo(next CommissionStatus) bool {
	switch c.Status {
	case CommissionPending:
		return next == CommissionApproved || next == CommissionRejected
	case CommissionApproved:
		return next == CommissionPaid
	default:
		return false
	}
}

type CommissionFilter struct {
	PublisherID *string
	Status      *CommissionStatus
}

type CommissionRepository interface {
	CreateCommission(commission *Commission) error
	GetCommissionByID(commissionID string) (*Commission, error)
	GetCommissionByConversionID(conversionID string) (*Commission, error)
	UpdateCommissionStatus(commissionID string, status CommissionStatus, note string, changedAt time.Time) error
	GetCommissions(filter CommissionFilter, page, limit int) ([]*Commission, int64, error)
}
