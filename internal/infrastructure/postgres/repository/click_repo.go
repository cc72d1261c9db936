package repository

import (
	"errors"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultClickRepository struct {
	db *gorm.DB
}

func NewDefaultClickRepository(db *gorm.DB) *DefaultClickRepository {
	return &DefaultClickRepository{db: db}
}

func (r *DefaultClickRepository) CreateClick(click *domain.ClickEvent) error {
	clickModel := mappers.ToGORMClick(click)
	if err := r.db.Create(clickModel).Error; err != nil {
		return err
	}
	click.ID = clickModel.ID
	return nil
}

func (r *DefaultClickRepository) GetClickByID(clickID string) (*domain.ClickEvent, error) {
	var clickModel models.ClickModel
	if err := r.db.Model(&models.ClickModel{}).Where("id = ?", clickID).First(&clickModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClickNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClick(&clickModel), nil
}

func (r *DefaultClickRepository) GetClickByTrackingCode(code domain.TrackingCode) (*domain.ClickEvent, error) {
	var clickModel models.ClickModel
	if err := r.db.Model(&models.ClickModel{}).Where("tracking_code = ?", code.String()).First(&clickModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClickNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClick(&clickModel), nil
}

func (r *DefaultClickRepository) MarkConverted(clickID, conversionID string) error {
	res := r.db.Model(&models.ClickModel{}).
		Where("id = ?", clickID).
		Where("is_converted = ?", false).
		Updates(map[string]interface{}{
			"is_converted":  true,
			"conversion_id": conversionID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// либо клика нет, либо он уже сконвертирован - различаем
		var total int64
		if err := r.db.Model(&models.ClickModel{}).Where("id = ?", clickID).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return domain.ErrClickAlreadyConverted
		}
		return domain.ErrClickNotFound
	}
	return nil
}

func (r *DefaultClickRepository) GetClicks(filter domain.ClickFilter, page, limit int) ([]*domain.ClickEvent, int64, error) {
	query := r.db.Model(&models.ClickModel{})
	if filter.OfferID != nil {
		query = query.Where("offer_id = ?", *filter.OfferID)
	}
	if filter.PublisherID != nil {
		query = query.Where("publisher_id = ?", *filter.PublisherID)
	}
	if filter.IsConverted != nil {
		query = query.Where("is_converted = ?", *filter.IsConverted)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var clickModels []models.ClickModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&clickModels).Error; err != nil {
		return nil, 0, err
	}

	clicks := make([]*domain.ClickEvent, len(clickModels))
	for i, clickModel := range clickModels {
		clicks[i] = mappers.ToDomainClick(&clickModel)
	}
	return clicks, total, nil
}
