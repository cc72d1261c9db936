package domain

import "time"

type DeviceType string

const (
	DeviceDesktop DeviceType = "DESKTOP"
	DeviceMobile  DeviceType = "MOBILE"
	DeviceTablet  DeviceType = "TABLET"
	DeviceUnknown DeviceType = "UNKNOWN"
)

type ClickEvent struct {
	ID           string
	OfferID      string
	PublisherID  string // empty for anonymous clicks
	SessionID    string
	TrackingCode TrackingCode
	IP           string
	UserAgent    string
	Referrer     string
	DeviceType   DeviceType
	IsBot        bool
	Country      string
	City         string
	SubID1       string
	SubID2       string
	SubID3       string
	IsConverted  bool
	ConversionID string
	CreatedAt    time.Time
}

type ClickFilter struct {
	OfferID     *string
	PublisherID *string
	IsConverted *bool
}

type ClickRepository interface {
	CreateClick(click *ClickEvent) error
	GetClickByID(clickID string) (*ClickEvent, error)
	GetClickByTrackingCode(code TrackingCode) (*ClickEvent, error)
	// MarkConverted sets IsConverted and links the conversion exactly once.
	// A click that already carries a conversion fails with ErrClickAlreadyConverted.
	MarkConverted(clickID, conversionID string) error
	GetClicks(filter ClickFilter, page, limit int) ([]*ClickEvent, int64, error)
}
