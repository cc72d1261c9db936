package publisher

import (
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
)

type ClickEvent struct {
	ClickID      string    `json:"click_id"`
	OfferID      string    `json:"offer_id"`
	PublisherID  string    `json:"publisher_id,omitempty"`
	TrackingCode string    `json:"tracking_code"`
	DeviceType   string    `json:"device_type"`
	IsBot        bool      `json:"is_bot"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ConversionEvent struct {
	ConversionID    string `json:"conversion_id"`
	ClickID         string `json:"click_id"`
	ExternalOrderID string `json:"external_order_id"`
	SaleAmount      string `json:"sale_amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	RejectReason    string `json:"reject_reason,omitempty"`
}

type CommissionEvent struct {
	CommissionID string `json:"commission_id"`
	PublisherID  string `json:"publisher_id"`
	ConversionID string `json:"conversion_id"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func (k *DefaultKafkaPublisher) PublishClick(topic string, event ClickEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(topic, domain.Message{Key: []byte(event.OfferID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishConversion(topic string, event ConversionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(topic, domain.Message{Key: []byte(event.ExternalOrderID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishCommission(topic string, event CommissionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(topic, domain.Message{Key: []byte(event.PublisherID), Value: v})
}
