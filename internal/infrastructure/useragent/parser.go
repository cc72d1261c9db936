package useragent

import (
	"context"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	ua "github.com/mileusna/useragent"
)

// MileusnaParser классифицирует устройство и ботов по User-Agent.
type MileusnaParser struct{}

func NewMileusnaParser() *MileusnaParser {
	return &MileusnaParser{}
}

func (p *MileusnaParser) Parse(ctx context.Context, userAgent string) (domain.DeviceInfo, error) {
	if userAgent == "" {
		return domain.DeviceInfo{Type: domain.DeviceUnknown}, nil
	}
	parsed := ua.Parse(userAgent)

	info := domain.DeviceInfo{Type: domain.DeviceUnknown, IsBot: parsed.Bot}
	switch {
	case parsed.Mobile:
		info.Type = domain.DeviceMobile
	case parsed.Tablet:
		info.Type = domain.DeviceTablet
	case parsed.Desktop:
		info.Type = domain.DeviceDesktop
	}
	return info, nil
}
