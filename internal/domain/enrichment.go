package domain

import "context"

type GeoLocation struct {
	Country string
	City    string
}

type DeviceInfo struct {
	Type  DeviceType
	IsBot bool
}

// GeoResolver и UserAgentParser - заменяемые стратегии обогащения.
// Lookup failures degrade to an empty result, they never fail a click.
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) (GeoLocation, error)
}

type UserAgentParser interface {
	Parse(ctx context.Context, userAgent string) (DeviceInfo, error)
}
