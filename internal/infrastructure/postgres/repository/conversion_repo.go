package repository

import (
	"errors"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultConversionRepository struct {
	db *gorm.DB
}

func NewDefaultConversionRepository(db *gorm.DB) *DefaultConversionRepository {
	return &DefaultConversionRepository{db: db}
}

// CreateConversion: уникальный индекс по external_order_id сериализует
// конкурентные постбэки - из двух одновременных вставок выживает одна.
func (r *DefaultConversionRepository) CreateConversion(conversion *domain.Conversion) error {
	conversionModel := mappers.ToGORMConversion(conversion)
	if err := r.db.Create(conversionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateConversion
		}
		return err
	}
	conversion.ID = conversionModel.ID
	return nil
}

func (r *DefaultConversionRepository) GetConversionByID(conversionID string) (*domain.Conversion, error) {
	var conversionModel models.ConversionModel
	if err := r.db.Model(&models.ConversionModel{}).Where("id = ?", conversionID).First(&conversionModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainConversion(&conversionModel), nil
}

func (r *DefaultConversionRepository) GetConversionByExternalOrderID(externalOrderID string) (*domain.Conversion, error) {
	var conversionModel models.ConversionModel
	if err := r.db.Model(&models.ConversionModel{}).Where("external_order_id = ?", externalOrderID).First(&conversionModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainConversion(&conversionModel), nil
}

func (r *DefaultConversionRepository) UpdateConversionStatus(conversionID string, status domain.ConversionStatus, reason string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if reason != "" {
		updates["rejection_reason"] = reason
	}
	if status == domain.ConversionValidated {
		updates["validated_at"] = gorm.Expr("NOW()")
	}
	return r.db.Model(&models.ConversionModel{}).Where("id = ?", conversionID).Updates(updates).Error
}
