package geoip

import (
	"context"
	"fmt"
	"net"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/oschwald/geoip2-golang"
)

// MaxMindResolver резолвит страну/город по локальной mmdb-базе.
type MaxMindResolver struct {
	reader *geoip2.Reader
}

func NewMaxMindResolver(dbPath string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip db: %w", err)
	}
	return &MaxMindResolver{reader: reader}, nil
}

func (r *MaxMindResolver) Resolve(ctx context.Context, ip string) (domain.GeoLocation, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return domain.GeoLocation{}, fmt.Errorf("invalid ip: %q", ip)
	}
	city, err := r.reader.City(parsed)
	if err != nil {
		return domain.GeoLocation{}, err
	}
	return domain.GeoLocation{
		Country: city.Country.IsoCode,
		City:    city.City.Names["en"],
	}, nil
}

func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}

// NoopResolver - заглушка, когда mmdb не сконфигурирована.
type NoopResolver struct{}

func (NoopResolver) Resolve(ctx context.Context, ip string) (domain.GeoLocation, error) {
	return domain.GeoLocation{}, nil
}
