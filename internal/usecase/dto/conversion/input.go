package conversiondto

import "github.com/shopspring/decimal"

type RecordConversionInput struct {
	TrackingCode    string
	ExternalOrderID string
	SaleAmount      decimal.Decimal
	Currency        string
	ProductInfo     string
	CustomerHash    string
	RawPayload      string
}
