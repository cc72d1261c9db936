package codes

import (
	"fmt"
	"sync"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

// NanoidGenerator draws codes uniformly from the 62-symbol alphabet using a
// crypto-sourced nanoid. Safe for concurrent use.
type NanoidGenerator struct {
	standard func() string

	mu     sync.Mutex
	byLen  map[int]func() string
}

func NewNanoidGenerator() (*NanoidGenerator, error) {
	gen, err := nanoid.CustomASCII(domain.TrackingCodeAlphabet, domain.TrackingCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to init nanoid generator: %w", err)
	}
	return &NanoidGenerator{
		standard: gen,
		byLen:    make(map[int]func() string),
	}, nil
}

func (g *NanoidGenerator) Generate() domain.TrackingCode {
	return domain.TrackingCode(g.standard())
}

func (g *NanoidGenerator) GenerateWithLength(length int) (domain.TrackingCode, error) {
	if length < domain.TrackingCodeMinLength || length > domain.TrackingCodeMaxLength {
		return "", domain.ErrInvalidTrackingCode
	}
	g.mu.Lock()
	gen, ok := g.byLen[length]
	if !ok {
		var err error
		gen, err = nanoid.CustomASCII(domain.TrackingCodeAlphabet, length)
		if err != nil {
			g.mu.Unlock()
			return "", err
		}
		g.byLen[length] = gen
	}
	g.mu.Unlock()
	return domain.TrackingCode(gen()), nil
}
