package mappers

import (
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainSession(model *models.SessionModel) *domain.ClickSession {
	return &domain.ClickSession{
		ID:             model.ID,
		Key:            model.Key,
		PublisherID:    model.PublisherID,
		IP:             model.IP,
		StartedAt:      model.StartedAt,
		LastActivityAt: model.LastActivityAt,
		ExpiresAt:      model.ExpiresAt,
		ClickCount:     model.ClickCount,
	}
}

func ToGORMSession(session *domain.ClickSession) *models.SessionModel {
	return &models.SessionModel{
		ID:             session.ID,
		Key:            session.Key,
		PublisherID:    session.PublisherID,
		IP:             session.IP,
		StartedAt:      session.StartedAt,
		LastActivityAt: session.LastActivityAt,
		ExpiresAt:      session.ExpiresAt,
		ClickCount:     session.ClickCount,
	}
}
