package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	clickdto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/click"
	"github.com/google/uuid"
)

func (uc *DefaultClickUsecase) RecordClick(ctx context.Context, input *clickdto.RecordClickInput) (*clickdto.RecordClickOutput, error) {
	offer, err := uc.catalogRepo.GetOfferByID(input.OfferID)
	if err != nil {
		return nil, err
	}
	if !offer.IsActive {
		return nil, domain.ErrOfferNotFound
	}
	program, err := uc.catalogRepo.GetProgramByID(offer.ProgramID)
	if err != nil {
		return nil, err
	}

	// обогащение деградирует до пустого результата, клик не блокируется
	device := uc.enrichDevice(ctx, input.UserAgent)
	geo := uc.enrichGeo(ctx, input.IP)

	code := uc.codeGenerator.Generate()
	now := time.Now()

	session, isNewSession, err := uc.findOrCreateSession(input, program, now)
	if err != nil {
		return nil, err
	}

	click := &domain.ClickEvent{
		ID:           uuid.New().String(),
		OfferID:      offer.ID,
		PublisherID:  input.PublisherID,
		SessionID:    session.ID,
		TrackingCode: code,
		IP:           input.IP,
		UserAgent:    input.UserAgent,
		Referrer:     input.Referrer,
		DeviceType:   device.Type,
		IsBot:        device.IsBot,
		Country:      geo.Country,
		City:         geo.City,
		SubID1:       input.SubID1,
		SubID2:       input.SubID2,
		SubID3:       input.SubID3,
		CreatedAt:    now,
	}
	if err := uc.clickRepo.CreateClick(click); err != nil {
		return nil, err
	}

	uc.metrics.ClicksRecordedTotal.WithLabelValues(offer.ID, string(device.Type)).Inc()
	if device.IsBot {
		uc.metrics.BotClicksTotal.WithLabelValues(offer.ID).Inc()
	}

	go func(event publisher.ClickEvent) {
		if err := uc.kafkaPublisher.PublishClick(uc.kafkaCfg.ClickTopic, event); err != nil {
			slog.Error("failed to publish kafka click event", "error", err.Error())
		}
	}(publisher.ClickEvent{
		ClickID:      click.ID,
		OfferID:      click.OfferID,
		PublisherID:  click.PublisherID,
		TrackingCode: code.String(),
		DeviceType:   string(click.DeviceType),
		IsBot:        click.IsBot,
		Country:      click.Country,
		CreatedAt:    click.CreatedAt,
	})

	redirectURL, err := uc.buildRedirectURL(offer.AffiliateURL, code)
	if err != nil {
		return nil, err
	}

	return &clickdto.RecordClickOutput{
		ClickID:      click.ID,
		TrackingCode: code.String(),
		RedirectURL:  redirectURL,
		SessionKey:   session.Key,
		IsNewSession: isNewSession,
	}, nil
}

// findOrCreateSession: валидная сессия продлевается от cookieDays программы
// текущего клика, истёкшая никогда не реанимируется.
func (uc *DefaultClickUsecase) findOrCreateSession(input *clickdto.RecordClickInput, program *domain.AffiliateProgram, now time.Time) (*domain.ClickSession, bool, error) {
	window := time.Duration(program.CookieDays) * 24 * time.Hour

	if input.SessionKey != "" {
		session, ok := uc.sessionCache.Get(input.SessionKey)
		if !ok {
			var err error
			session, err = uc.sessionRepo.GetSessionByKey(input.SessionKey)
			if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
				return nil, false, err
			}
		}
		if session != nil && session.IsValid(now) {
			expiresAt := now.Add(window)
			if err := uc.sessionRepo.Touch(session.ID, now, expiresAt); err != nil {
				return nil, false, err
			}
			session.LastActivityAt = now
			session.ExpiresAt = expiresAt
			session.ClickCount++
			uc.sessionCache.Set(session)
			uc.metrics.SessionsExtendedTotal.Inc()
			return session, false, nil
		}
	}

	session := &domain.ClickSession{
		ID:             uuid.New().String(),
		Key:            uuid.New().String(),
		PublisherID:    input.PublisherID,
		IP:             input.IP,
		StartedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(window),
		ClickCount:     1,
	}
	if err := uc.sessionRepo.CreateSession(session); err != nil {
		return nil, false, err
	}
	uc.sessionCache.Set(session)
	uc.metrics.SessionsCreatedTotal.Inc()
	return session, true, nil
}

func (uc *DefaultClickUsecase) enrichDevice(ctx context.Context, userAgent string) domain.DeviceInfo {
	start := time.Now()
	lookupCtx, cancel := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancel()

	device, err := uc.uaParser.Parse(lookupCtx, userAgent)
	uc.metrics.EnrichmentDuration.WithLabelValues("ua").Observe(time.Since(start).Seconds())
	if err != nil {
		uc.metrics.EnrichmentFailuresTotal.WithLabelValues("ua").Inc()
		return domain.DeviceInfo{Type: domain.DeviceUnknown}
	}
	return device
}

func (uc *DefaultClickUsecase) enrichGeo(ctx context.Context, ip string) domain.GeoLocation {
	start := time.Now()
	lookupCtx, cancel := context.WithTimeout(ctx, uc.lookupTimeout)
	defer cancel()

	type result struct {
		geo domain.GeoLocation
		err error
	}
	ch := make(chan result, 1)
	go func() {
		geo, err := uc.geoResolver.Resolve(lookupCtx, ip)
		ch <- result{geo: geo, err: err}
	}()

	select {
	case res := <-ch:
		uc.metrics.EnrichmentDuration.WithLabelValues("geo").Observe(time.Since(start).Seconds())
		if res.err != nil {
			uc.metrics.EnrichmentFailuresTotal.WithLabelValues("geo").Inc()
			return domain.GeoLocation{}
		}
		return res.geo
	case <-lookupCtx.Done():
		uc.metrics.EnrichmentDuration.WithLabelValues("geo").Observe(time.Since(start).Seconds())
		uc.metrics.EnrichmentFailuresTotal.WithLabelValues("geo").Inc()
		return domain.GeoLocation{}
	}
}

func (uc *DefaultClickUsecase) buildRedirectURL(affiliateURL string, code domain.TrackingCode) (string, error) {
	parsed, err := url.Parse(affiliateURL)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	query.Set(uc.redirectParam, code.String())
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
