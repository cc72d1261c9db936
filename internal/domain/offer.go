package domain

import "github.com/shopspring/decimal"

// Offer и AffiliateProgram принадлежат каталогу; здесь они read-only.

type Offer struct {
	ID           string
	MerchantID   string
	ProgramID    string
	AffiliateURL string
	IsActive     bool
}

// CommissionTier - ступень по диапазону суммы продажи. MaxAmount == nil
// means the tier is open-ended.
type CommissionTier struct {
	Name      string
	MinAmount decimal.Decimal
	MaxAmount *decimal.Decimal
	Percent   decimal.Decimal
}

// Contains reports whether saleAmount falls into [MinAmount, MaxAmount].
// Both bounds are inclusive; boundary ties between adjacent tiers are
// resolved by the commission engine in favor of the higher payout.
func (t *CommissionTier) Contains(saleAmount decimal.Decimal) bool {
	if saleAmount.LessThan(t.MinAmount) {
		return false
	}
	if t.MaxAmount != nil && saleAmount.GreaterThan(*t.MaxAmount) {
		return false
	}
	return true
}

type AffiliateProgram struct {
	ID                string
	MerchantID        string
	BaseCommissionPct decimal.Decimal
	IsFixedAmount     bool
	FixedAmount       decimal.Decimal
	CookieDays        int
	Tiers             []CommissionTier
}

type CatalogRepository interface {
	GetOfferByID(offerID string) (*Offer, error)
	GetProgramByID(programID string) (*AffiliateProgram, error)
}
