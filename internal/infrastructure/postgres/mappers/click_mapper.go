package mappers

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainClick(model *models.ClickModel) *domain.ClickEvent {
	return &domain.ClickEvent{
		ID:           model.ID,
		OfferID:      model.OfferID,
		PublisherID:  model.PublisherID,
		SessionID:    model.SessionID,
		TrackingCode: domain.TrackingCode(model.TrackingCode),
		IP:           model.IP,
		UserAgent:    model.UserAgent,
		Referrer:     model.Referrer,
		DeviceType:   domain.DeviceType(model.DeviceType),
		IsBot:        model.IsBot,
		Country:      model.Country,
		City:         model.City,
		SubID1:       model.SubID1,
		SubID2:       model.SubID2,
		SubID3:       model.SubID3,
		IsConverted:  model.IsConverted,
		ConversionID: model.ConversionID,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMClick(click *domain.ClickEvent) *models.ClickModel {
	return &models.ClickModel{
		ID:           click.ID,
		OfferID:      click.OfferID,
		PublisherID:  click.PublisherID,
		SessionID:    click.SessionID,
		TrackingCode: click.TrackingCode.String(),
		IP:           click.IP,
		UserAgent:    click.UserAgent,
		Referrer:     click.Referrer,
		DeviceType:   string(click.DeviceType),
		IsBot:        click.IsBot,
		Country:      click.Country,
		City:         click.City,
		SubID1:       click.SubID1,
		SubID2:       click.SubID2,
		SubID3:       click.SubID3,
		IsConverted:  click.IsConverted,
		ConversionID: click.ConversionID,
		CreatedAt:    click.CreatedAt,
	}
}
