package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	clickdto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/click"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMetrics = metrics.NewAffiliateMetrics()

type fakeClickRepo struct {
	mu     sync.Mutex
	clicks []*domain.ClickEvent
}

func (r *fakeClickRepo) CreateClick(click *domain.ClickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *click
	r.clicks = append(r.clicks, &copied)
	return nil
}

func (r *fakeClickRepo) GetClickByID(clickID string) (*domain.ClickEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, click := range r.clicks {
		if click.ID == clickID {
			copied := *click
			return &copied, nil
		}
	}
	return nil, domain.ErrClickNotFound
}

func (r *fakeClickRepo) GetClickByTrackingCode(code domain.TrackingCode) (*domain.ClickEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, click := range r.clicks {
		if click.TrackingCode == code {
			copied := *click
			return &copied, nil
		}
	}
	return nil, domain.ErrClickNotFound
}

func (r *fakeClickRepo) MarkConverted(clickID, conversionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, click := range r.clicks {
		if click.ID == clickID {
			if click.IsConverted {
				return domain.ErrClickAlreadyConverted
			}
			click.IsConverted = true
			click.ConversionID = conversionID
			return nil
		}
	}
	return domain.ErrClickNotFound
}

func (r *fakeClickRepo) GetClicks(filter domain.ClickFilter, page, limit int) ([]*domain.ClickEvent, int64, error) {
	return r.clicks, int64(len(r.clicks)), nil
}

func (r *fakeClickRepo) last() *domain.ClickEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clicks[len(r.clicks)-1]
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.ClickSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.ClickSession)}
}

func (r *fakeSessionRepo) CreateSession(session *domain.ClickSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.Key] = &copied
	return nil
}

func (r *fakeSessionRepo) GetSessionByKey(key string) (*domain.ClickSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) Touch(sessionID string, lastActivity, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.ID == sessionID {
			session.LastActivityAt = lastActivity
			session.ExpiresAt = expiresAt
			session.ClickCount++
			return nil
		}
	}
	return domain.ErrSessionNotFound
}

func (r *fakeSessionRepo) FindExpiredSessions(since time.Time) ([]*domain.ClickSession, error) {
	return nil, nil
}

type noopCache struct{}

func (noopCache) Get(key string) (*domain.ClickSession, bool) { return nil, false }
func (noopCache) Set(session *domain.ClickSession)            {}
func (noopCache) Invalidate(key string)                       {}

type fakeCatalog struct {
	offers   map[string]*domain.Offer
	programs map[string]*domain.AffiliateProgram
}

func (c *fakeCatalog) GetOfferByID(offerID string) (*domain.Offer, error) {
	offer, ok := c.offers[offerID]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

func (c *fakeCatalog) GetProgramByID(programID string) (*domain.AffiliateProgram, error) {
	program, ok := c.programs[programID]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return program, nil
}

type seqCodeGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqCodeGenerator) Generate() domain.TrackingCode {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return domain.TrackingCode(fmt.Sprintf("code%04d", g.n))
}

func (g *seqCodeGenerator) GenerateWithLength(length int) (domain.TrackingCode, error) {
	return g.Generate(), nil
}

type staticGeo struct {
	loc domain.GeoLocation
	err error
}

func (g staticGeo) Resolve(ctx context.Context, ip string) (domain.GeoLocation, error) {
	return g.loc, g.err
}

type slowGeo struct{ delay time.Duration }

func (g slowGeo) Resolve(ctx context.Context, ip string) (domain.GeoLocation, error) {
	select {
	case <-time.After(g.delay):
		return domain.GeoLocation{Country: "US"}, nil
	case <-ctx.Done():
		return domain.GeoLocation{}, ctx.Err()
	}
}

type staticUA struct {
	info domain.DeviceInfo
	err  error
}

func (p staticUA) Parse(ctx context.Context, userAgent string) (domain.DeviceInfo, error) {
	return p.info, p.err
}

func newTestCatalog() *fakeCatalog {
	return &fakeCatalog{
		offers: map[string]*domain.Offer{
			"offer-1": {ID: "offer-1", MerchantID: "m-1", ProgramID: "prog-1", AffiliateURL: "https://shop.example.com/deal?ref=aff", IsActive: true},
			"offer-off": {ID: "offer-off", MerchantID: "m-1", ProgramID: "prog-1", AffiliateURL: "https://shop.example.com", IsActive: false},
		},
		programs: map[string]*domain.AffiliateProgram{
			"prog-1": {ID: "prog-1", MerchantID: "m-1", BaseCommissionPct: decimal.NewFromInt(10), CookieDays: 7},
		},
	}
}

func newTestClickUsecase(clickRepo domain.ClickRepository, sessionRepo domain.SessionRepository, catalog domain.CatalogRepository, geo domain.GeoResolver, ua domain.UserAgentParser) *DefaultClickUsecase {
	cfg := &config.AffiliateConfig{}
	cfg.KafkaService.ClickTopic = "affiliate-click-events"
	cfg.Enrichment.LookupTimeout = 50 * time.Millisecond
	cfg.Tracking.RedirectParam = "sub"
	return NewDefaultClickUsecase(
		clickRepo,
		sessionRepo,
		noopCache{},
		catalog,
		&seqCodeGenerator{},
		geo,
		ua,
		publisher.NewDefaultKafkaPublisher([]string{"localhost:19092"}),
		testMetrics,
		cfg,
	)
}

func TestRecordClick_HappyPath(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	sessionRepo := newFakeSessionRepo()
	uc := newTestClickUsecase(clickRepo, sessionRepo, newTestCatalog(),
		staticGeo{loc: domain.GeoLocation{Country: "DE", City: "Berlin"}},
		staticUA{info: domain.DeviceInfo{Type: domain.DeviceMobile}},
	)

	output, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{
		OfferID:     "offer-1",
		PublisherID: "pub-1",
		IP:          "203.0.113.7",
		UserAgent:   "Mozilla/5.0",
		SubID1:      "campaign-42",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.ClickID)
	assert.True(t, output.IsNewSession)
	assert.NotEmpty(t, output.SessionKey)

	parsed, err := url.Parse(output.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", parsed.Host)
	assert.Equal(t, output.TrackingCode, parsed.Query().Get("sub"))
	assert.Equal(t, "aff", parsed.Query().Get("ref"), "original query params preserved")

	click := clickRepo.last()
	assert.Equal(t, "DE", click.Country)
	assert.Equal(t, domain.DeviceMobile, click.DeviceType)
	assert.Equal(t, "campaign-42", click.SubID1)
	assert.False(t, click.IsBot)
}

func TestRecordClick_InactiveOffer(t *testing.T) {
	uc := newTestClickUsecase(&fakeClickRepo{}, newFakeSessionRepo(), newTestCatalog(), staticGeo{}, staticUA{})

	_, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "offer-off", IP: "1.2.3.4"})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)

	_, err = uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "missing", IP: "1.2.3.4"})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestRecordClick_BotFlagged(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	uc := newTestClickUsecase(clickRepo, newFakeSessionRepo(), newTestCatalog(),
		staticGeo{},
		staticUA{info: domain.DeviceInfo{Type: domain.DeviceDesktop, IsBot: true}},
	)

	_, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{
		OfferID:   "offer-1",
		IP:        "1.2.3.4",
		UserAgent: "Googlebot/2.1",
	})
	require.NoError(t, err, "bot traffic is recorded, not rejected")
	assert.True(t, clickRepo.last().IsBot)
}

func TestRecordClick_GeoFailureTolerated(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	uc := newTestClickUsecase(clickRepo, newFakeSessionRepo(), newTestCatalog(),
		staticGeo{err: errors.New("mmdb corrupted")},
		staticUA{info: domain.DeviceInfo{Type: domain.DeviceDesktop}},
	)

	_, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "offer-1", IP: "1.2.3.4"})
	require.NoError(t, err)
	assert.Empty(t, clickRepo.last().Country)
}

func TestRecordClick_GeoTimeoutTolerated(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	uc := newTestClickUsecase(clickRepo, newFakeSessionRepo(), newTestCatalog(),
		slowGeo{delay: 5 * time.Second},
		staticUA{},
	)

	start := time.Now()
	_, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "offer-1", IP: "1.2.3.4"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second, "click must not block on a slow geo lookup")
	assert.Empty(t, clickRepo.last().Country)
}

func TestRecordClick_SessionContinuity(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	sessionRepo := newFakeSessionRepo()
	uc := newTestClickUsecase(clickRepo, sessionRepo, newTestCatalog(), staticGeo{}, staticUA{})

	first, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "offer-1", IP: "1.2.3.4"})
	require.NoError(t, err)
	require.True(t, first.IsNewSession)

	firstSession, err := sessionRepo.GetSessionByKey(first.SessionKey)
	require.NoError(t, err)
	firstExpiry := firstSession.ExpiresAt

	// second click with the same key extends the window
	second, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{
		OfferID:    "offer-1",
		IP:         "1.2.3.4",
		SessionKey: first.SessionKey,
	})
	require.NoError(t, err)
	assert.False(t, second.IsNewSession)
	assert.Equal(t, first.SessionKey, second.SessionKey)

	extended, err := sessionRepo.GetSessionByKey(first.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, int64(2), extended.ClickCount)
	assert.False(t, extended.ExpiresAt.Before(firstExpiry))

	// distinct tracking codes per click
	assert.NotEqual(t, first.TrackingCode, second.TrackingCode)
}

func TestRecordClick_ExpiredSessionStartsFresh(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	sessionRepo := newFakeSessionRepo()
	uc := newTestClickUsecase(clickRepo, sessionRepo, newTestCatalog(), staticGeo{}, staticUA{})

	// seed an already expired session
	expired := &domain.ClickSession{
		ID:         "sess-old",
		Key:        "stale-key",
		IP:         "1.2.3.4",
		StartedAt:  time.Now().Add(-10 * 24 * time.Hour),
		ExpiresAt:  time.Now().Add(-3 * 24 * time.Hour),
		ClickCount: 5,
	}
	require.NoError(t, sessionRepo.CreateSession(expired))

	output, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{
		OfferID:    "offer-1",
		IP:         "1.2.3.4",
		SessionKey: "stale-key",
	})
	require.NoError(t, err)
	assert.True(t, output.IsNewSession, "expired session is never revived")
	assert.NotEqual(t, "stale-key", output.SessionKey)

	fresh, err := sessionRepo.GetSessionByKey(output.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.ClickCount)
}

func TestRecordClick_AnonymousAllowed(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	uc := newTestClickUsecase(clickRepo, newFakeSessionRepo(), newTestCatalog(), staticGeo{}, staticUA{})

	_, err := uc.RecordClick(context.Background(), &clickdto.RecordClickInput{OfferID: "offer-1", IP: "1.2.3.4"})
	require.NoError(t, err)
	assert.Empty(t, clickRepo.last().PublisherID)
}
