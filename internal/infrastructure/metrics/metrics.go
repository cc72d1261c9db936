package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AffiliateMetrics содержит все метрики трекингового конвейера
type AffiliateMetrics struct {
	// Клики
	ClicksRecordedTotal   *prometheus.CounterVec
	BotClicksTotal        *prometheus.CounterVec
	SessionsCreatedTotal  prometheus.Counter
	SessionsExtendedTotal prometheus.Counter

	// Обогащение
	EnrichmentFailuresTotal *prometheus.CounterVec
	EnrichmentDuration      *prometheus.HistogramVec

	// Конверсии
	ConversionsRecordedTotal *prometheus.CounterVec
	ConversionsRejectedTotal *prometheus.CounterVec

	// Комиссии
	CommissionsCreatedTotal *prometheus.CounterVec
	CommissionAmountTotal   *prometheus.CounterVec
	CommissionFailuresTotal prometheus.Counter
}

func NewAffiliateMetrics() *AffiliateMetrics {
	return &AffiliateMetrics{
		ClicksRecordedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_clicks_recorded_total",
			Help: "Total clicks recorded",
		}, []string{"offer_id", "device_type"}),
		BotClicksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_bot_clicks_total",
			Help: "Clicks flagged as bot traffic",
		}, []string{"offer_id"}),
		SessionsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_sessions_created_total",
			Help: "New click sessions created",
		}),
		SessionsExtendedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_sessions_extended_total",
			Help: "Existing click sessions extended",
		}),
		EnrichmentFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_enrichment_failures_total",
			Help: "Geo/UA enrichment lookups that failed or timed out",
		}, []string{"kind"}),
		EnrichmentDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "affiliate_enrichment_duration_seconds",
			Help:    "Enrichment lookup duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		ConversionsRecordedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_conversions_recorded_total",
			Help: "Conversions accepted",
		}, []string{"currency"}),
		ConversionsRejectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_conversions_rejected_total",
			Help: "Conversions rejected by reason",
		}, []string{"reason"}),
		CommissionsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_commissions_created_total",
			Help: "Commissions created",
		}, []string{"publisher_id"}),
		CommissionAmountTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "affiliate_commission_amount_total",
			Help: "Sum of commission amounts by currency",
		}, []string{"currency"}),
		CommissionFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "affiliate_commission_failures_total",
			Help: "Commission creation failures after a persisted conversion",
		}),
	}
}
