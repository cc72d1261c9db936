package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	commissionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/commission"
	conversionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/conversion"
	clickdto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/click"
	conversiondto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/conversion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flowConversionRepo struct {
	mu      sync.Mutex
	items   map[string]*domain.Conversion
	byOrder map[string]string
}

func newFlowConversionRepo() *flowConversionRepo {
	return &flowConversionRepo{
		items:   make(map[string]*domain.Conversion),
		byOrder: make(map[string]string),
	}
}

func (r *flowConversionRepo) CreateConversion(conversion *domain.Conversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byOrder[conversion.ExternalOrderID]; exists {
		return domain.ErrDuplicateConversion
	}
	copied := *conversion
	r.items[conversion.ID] = &copied
	r.byOrder[conversion.ExternalOrderID] = conversion.ID
	return nil
}

func (r *flowConversionRepo) GetConversionByID(conversionID string) (*domain.Conversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversion, ok := r.items[conversionID]
	if !ok {
		return nil, domain.ErrClickNotFound
	}
	copied := *conversion
	return &copied, nil
}

func (r *flowConversionRepo) GetConversionByExternalOrderID(externalOrderID string) (*domain.Conversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byOrder[externalOrderID]
	if !ok {
		return nil, domain.ErrClickNotFound
	}
	copied := *r.items[id]
	return &copied, nil
}

func (r *flowConversionRepo) UpdateConversionStatus(conversionID string, status domain.ConversionStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversion, ok := r.items[conversionID]
	if !ok {
		return domain.ErrClickNotFound
	}
	conversion.Status = status
	conversion.RejectionReason = reason
	return nil
}

type flowCommissionRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Commission
}

func newFlowCommissionRepo() *flowCommissionRepo {
	return &flowCommissionRepo{items: make(map[string]*domain.Commission)}
}

func (r *flowCommissionRepo) CreateCommission(commission *domain.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *commission
	r.items[commission.ID] = &copied
	return nil
}

func (r *flowCommissionRepo) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	commission, ok := r.items[commissionID]
	if !ok {
		return nil, domain.ErrInvalidStatusTransition
	}
	copied := *commission
	return &copied, nil
}

func (r *flowCommissionRepo) GetCommissionByConversionID(conversionID string) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, commission := range r.items {
		if commission.ConversionID == conversionID {
			copied := *commission
			return &copied, nil
		}
	}
	return nil, domain.ErrInvalidStatusTransition
}

func (r *flowCommissionRepo) UpdateCommissionStatus(commissionID string, status domain.CommissionStatus, note string, changedAt time.Time) error {
	return nil
}

func (r *flowCommissionRepo) GetCommissions(filter domain.CommissionFilter, page, limit int) ([]*domain.Commission, int64, error) {
	return nil, 0, nil
}

// Полный конвейер: клик по офферу -> tracking-код из редиректа -> постбэк
// мерчанта -> конверсия и комиссия паблишеру.
func TestClickToCommissionFlow(t *testing.T) {
	clickRepo := &fakeClickRepo{}
	sessionRepo := newFakeSessionRepo()
	catalog := &fakeCatalog{
		offers: map[string]*domain.Offer{
			"offer-O": {ID: "offer-O", MerchantID: "m-1", ProgramID: "prog-O", AffiliateURL: "https://shop.example.com/deal", IsActive: true},
		},
		programs: map[string]*domain.AffiliateProgram{
			"prog-O": {ID: "prog-O", MerchantID: "m-1", BaseCommissionPct: decimal.NewFromInt(10), CookieDays: 30},
		},
	}
	clickUC := newTestClickUsecase(clickRepo, sessionRepo, catalog,
		staticGeo{loc: domain.GeoLocation{Country: "US"}},
		staticUA{info: domain.DeviceInfo{Type: domain.DeviceDesktop}},
	)

	conversionRepo := newFlowConversionRepo()
	commissionRepo := newFlowCommissionRepo()
	kafkaCfg := config.KafkaService{ConversionTopic: "conversion-events", CommissionTopic: "commission-events"}
	kafkaPub := publisher.NewDefaultKafkaPublisher([]string{"localhost:19092"})
	commissionUC := commissionuc.NewDefaultCommissionUsecase(commissionRepo, kafkaPub, testMetrics, kafkaCfg)
	conversionUC := conversionuc.NewDefaultConversionUsecase(conversionRepo, clickRepo, catalog, commissionUC, kafkaPub, testMetrics, kafkaCfg)

	clickOut, err := clickUC.RecordClick(context.Background(), &clickdto.RecordClickInput{
		OfferID:     "offer-O",
		PublisherID: "pub-P",
		IP:          "203.0.113.9",
		UserAgent:   "Mozilla/5.0",
	})
	require.NoError(t, err)
	require.NotEmpty(t, clickOut.TrackingCode)

	// постбэк несёт ровно тот код, который вернул рекордер
	convOut, err := conversionUC.RecordConversion(context.Background(), &conversiondto.RecordConversionInput{
		TrackingCode:    clickOut.TrackingCode,
		ExternalOrderID: "ORD-1",
		SaleAmount:      decimal.NewFromInt(500),
		Currency:        "USD",
	})
	require.NoError(t, err)
	require.NotEmpty(t, convOut.ConversionID)
	require.NotEmpty(t, convOut.CommissionID)

	conversion, err := conversionRepo.GetConversionByID(convOut.ConversionID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionPending, conversion.Status)
	assert.Equal(t, "ORD-1", conversion.ExternalOrderID)
	assert.Equal(t, clickOut.ClickID, conversion.ClickID)

	commission, err := commissionRepo.GetCommissionByConversionID(convOut.ConversionID)
	require.NoError(t, err)
	assert.Equal(t, "pub-P", commission.PublisherID)
	assert.Equal(t, domain.CommissionPending, commission.Status)
	assert.True(t, commission.Amount.Equal(decimal.NewFromInt(50)), "10%% of 500, got %s", commission.Amount)

	click, err := clickRepo.GetClickByID(clickOut.ClickID)
	require.NoError(t, err)
	assert.True(t, click.IsConverted)
	assert.Equal(t, convOut.ConversionID, click.ConversionID)
}
