package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSessionRepository struct {
	db *gorm.DB
}

func NewDefaultSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{db: db}
}

func (r *DefaultSessionRepository) CreateSession(session *domain.ClickSession) error {
	sessionModel := mappers.ToGORMSession(session)
	if err := r.db.Create(sessionModel).Error; err != nil {
		return err
	}
	session.ID = sessionModel.ID
	return nil
}

func (r *DefaultSessionRepository) GetSessionByKey(key string) (*domain.ClickSession, error) {
	var sessionModel models.SessionModel
	if err := r.db.Model(&models.SessionModel{}).Where("key = ?", key).First(&sessionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSession(&sessionModel), nil
}

func (r *DefaultSessionRepository) Touch(sessionID string, lastActivity, expiresAt time.Time) error {
	return r.db.Model(&models.SessionModel{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"last_activity_at": lastActivity,
			"expires_at":       expiresAt,
			"click_count":      gorm.Expr("click_count + 1"),
		}).Error
}

func (r *DefaultSessionRepository) FindExpiredSessions(since time.Time) ([]*domain.ClickSession, error) {
	var sessionModels []models.SessionModel
	if err := r.db.Model(&models.SessionModel{}).
		Where("expires_at < ?", time.Now()).
		Where("expires_at > ?", since).
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}
	sessions := make([]*domain.ClickSession, len(sessionModels))
	for i, sessionModel := range sessionModels {
		sessions[i] = mappers.ToDomainSession(&sessionModel)
	}
	return sessions, nil
}
