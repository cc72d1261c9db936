package conversiondto

type RecordConversionOutput struct {
	ConversionID string
	CommissionID string // empty for anonymous clicks
}
