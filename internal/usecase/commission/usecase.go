package usecase

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	commissiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/commission"
	"github.com/shopspring/decimal"
)

type CommissionUsecase interface {
	Calculate(program *domain.AffiliateProgram, saleAmount decimal.Decimal, currency string) (*commissiondto.CalculationResult, error)
	CreateForConversion(click *domain.ClickEvent, conversion *domain.Conversion, program *domain.AffiliateProgram) (*domain.Commission, error)
	ApproveCommission(commissionID, note string) error
	RejectCommission(commissionID, reason string) error
	MarkCommissionPaid(commissionID string) error
	GetCommissionByID(commissionID string) (*domain.Commission, error)
	GetCommissions(filter domain.CommissionFilter, page, limit int) ([]*domain.Commission, int64, error)
}

type DefaultCommissionUsecase struct {
	commissionRepo domain.CommissionRepository
	kafkaPublisher *publisher.DefaultKafkaPublisher
	metrics        *metrics.AffiliateMetrics
	kafkaCfg       config.KafkaService
}

func NewDefaultCommissionUsecase(
	commissionRepo domain.CommissionRepository,
	kafkaPublisher *publisher.DefaultKafkaPublisher,
	affiliateMetrics *metrics.AffiliateMetrics,
	kafkaCfg config.KafkaService,
) *DefaultCommissionUsecase {
	return &DefaultCommissionUsecase{
		commissionRepo: commissionRepo,
		kafkaPublisher: kafkaPublisher,
		metrics:        affiliateMetrics,
		kafkaCfg:       kafkaCfg,
	}
}
