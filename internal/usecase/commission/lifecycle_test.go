package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers into the default registry, so one instance per test binary
var testMetrics = metrics.NewAffiliateMetrics()

type fakeCommissionRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Commission
}

func newFakeCommissionRepo() *fakeCommissionRepo {
	return &fakeCommissionRepo{items: make(map[string]*domain.Commission)}
}

func (r *fakeCommissionRepo) CreateCommission(commission *domain.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *commission
	r.items[commission.ID] = &copied
	return nil
}

func (r *fakeCommissionRepo) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	commission, ok := r.items[commissionID]
	if !ok {
		return nil, domain.ErrInvalidStatusTransition
	}
	copied := *commission
	return &copied, nil
}

func (r *fakeCommissionRepo) GetCommissionByConversionID(conversionID string) (*domain.Commission, error) {
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

func (r *fakeCommissionRepo) UpdateCommissionStatus(commissionID string, status domain.CommissionStatus, note string, changedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	commission := r.items[commissionID]
	commission.Status = status
	commission.Note = note
	commission.StatusChanged = changedAt
	return nil
}

func (r *fakeCommissionRepo) GetCommissions(filter domain.CommissionFilter, page, limit int) ([]*domain.Commission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Commission
	for _, commission := range r.items {
		if filter.PublisherID != nil && commission.PublisherID != *filter.PublisherID {
			continue
		}
		if filter.Status != nil && commission.Status != *filter.Status {
			continue
		}
		copied := *commission
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func newTestCommissionUsecase(repo domain.CommissionRepository) *DefaultCommissionUsecase {
	return NewDefaultCommissionUsecase(
		repo,
		publisher.NewDefaultKafkaPublisher([]string{"localhost:19092"}),
		testMetrics,
		config.KafkaService{CommissionTopic: "commission-events"},
	)
}

func seedCommission(t *testing.T, repo *fakeCommissionRepo, status domain.CommissionStatus) string {
	t.Helper()
	commission := &domain.Commission{
		ID:           "comm-1",
		PublisherID:  "pub-1",
		ConversionID: "conv-1",
		Amount:       dec("20.00"),
		Currency:     "USD",
		Status:       status,
	}
	require.NoError(t, repo.CreateCommission(commission))
	return commission.ID
}

func TestLifecycle_PendingToApprovedToPaid(t *testing.T) {
	repo := newFakeCommissionRepo()
	uc := newTestCommissionUsecase(repo)
	id := seedCommission(t, repo, domain.CommissionPending)

	require.NoError(t, uc.ApproveCommission(id, "looks good"))
	commission, err := uc.GetCommissionByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionApproved, commission.Status)
	assert.Equal(t, "looks good", commission.Note)

	require.NoError(t, uc.MarkCommissionPaid(id))
	commission, err = uc.GetCommissionByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionPaid, commission.Status)
}

func TestLifecycle_PendingToRejected(t *testing.T) {
	repo := newFakeCommissionRepo()
	uc := newTestCommissionUsecase(repo)
	id := seedCommission(t, repo, domain.CommissionPending)

	require.NoError(t, uc.RejectCommission(id, "fraud suspicion"))
	commission, err := uc.GetCommissionByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionRejected, commission.Status)
}

func TestLifecycle_TerminalStatesStayTerminal(t *testing.T) {
	repo := newFakeCommissionRepo()
	uc := newTestCommissionUsecase(repo)

	id := seedCommission(t, repo, domain.CommissionPaid)
	assert.ErrorIs(t, uc.ApproveCommission(id, ""), domain.ErrInvalidStatusTransition)
	assert.ErrorIs(t, uc.RejectCommission(id, ""), domain.ErrInvalidStatusTransition)

	repo2 := newFakeCommissionRepo()
	uc2 := newTestCommissionUsecase(repo2)
	id2 := seedCommission(t, repo2, domain.CommissionRejected)
	assert.ErrorIs(t, uc2.ApproveCommission(id2, ""), domain.ErrInvalidStatusTransition)
	assert.ErrorIs(t, uc2.MarkCommissionPaid(id2), domain.ErrInvalidStatusTransition)
}

func TestLifecycle_NoSkippingApproval(t *testing.T) {
	repo := newFakeCommissionRepo()
	uc := newTestCommissionUsecase(repo)
	id := seedCommission(t, repo, domain.CommissionPending)

	assert.ErrorIs(t, uc.MarkCommissionPaid(id), domain.ErrInvalidStatusTransition)
}

func TestCreateForConversion(t *testing.T) {
	repo := newFakeCommissionRepo()
	uc := newTestCommissionUsecase(repo)

	click := &domain.ClickEvent{ID: "click-1", PublisherID: "pub-7"}
	conversion := &domain.Conversion{ID: "conv-7", SaleAmount: dec("500"), Currency: "USD"}
	program := &domain.AffiliateProgram{BaseCommissionPct: dec("10"), CookieDays: 30}

	commission, err := uc.CreateForConversion(click, conversion, program)
	require.NoError(t, err)
	assert.Equal(t, "pub-7", commission.PublisherID)
	assert.Equal(t, domain.CommissionPending, commission.Status)
	assert.True(t, commission.Amount.Equal(dec("50.00")), "got %s", commission.Amount)

	stored, err := repo.GetCommissionByConversionID("conv-7")
	require.NoError(t, err)
	assert.True(t, stored.Amount.Equal(dec("50.00")))
}
