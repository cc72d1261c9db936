package usecase

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	clickdto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/click"
)

type ClickUsecase interface {
	RecordClick(ctx context.Context, input *clickdto.RecordClickInput) (*clickdto.RecordClickOutput, error)
	GetClickByID(clickID string) (*domain.ClickEvent, error)
	GetClickByTrackingCode(code string) (*domain.ClickEvent, error)
	GetClicks(filter domain.ClickFilter, page, limit int) ([]*domain.ClickEvent, int64, error)
}

type DefaultClickUsecase struct {
	clickRepo      domain.ClickRepository
	sessionRepo    domain.SessionRepository
	sessionCache   domain.SessionCache
	catalogRepo    domain.CatalogRepository
	codeGenerator  domain.CodeGenerator
	geoResolver    domain.GeoResolver
	uaParser       domain.UserAgentParser
	kafkaPublisher *publisher.DefaultKafkaPublisher
	metrics        *metrics.AffiliateMetrics
	kafkaCfg       config.KafkaService
	lookupTimeout  time.Duration
	redirectParam  string
}

func NewDefaultClickUsecase(
	clickRepo domain.ClickRepository,
	sessionRepo domain.SessionRepository,
	sessionCache domain.SessionCache,
	catalogRepo domain.CatalogRepository,
	codeGenerator domain.CodeGenerator,
	geoResolver domain.GeoResolver,
	uaParser domain.UserAgentParser,
	kafkaPublisher *publisher.DefaultKafkaPublisher,
	affiliateMetrics *metrics.AffiliateMetrics,
	cfg *config.AffiliateConfig,
) *DefaultClickUsecase {
	return &DefaultClickUsecase{
		clickRepo:      clickRepo,
		sessionRepo:    sessionRepo,
		sessionCache:   sessionCache,
		catalogRepo:    catalogRepo,
		codeGenerator:  codeGenerator,
		geoResolver:    geoResolver,
		uaParser:       uaParser,
		kafkaPublisher: kafkaPublisher,
		metrics:        affiliateMetrics,
		kafkaCfg:       cfg.KafkaService,
		lookupTimeout:  cfg.Enrichment.LookupTimeout,
		redirectParam:  cfg.Tracking.RedirectParam,
	}
}
