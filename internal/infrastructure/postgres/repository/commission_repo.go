package repository

import (
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCommissionRepository struct {
	db *gorm.DB
}

func NewDefaultCommissionRepository(db *gorm.DB) *DefaultCommissionRepository {
	return &DefaultCommissionRepository{db: db}
}

func (r *DefaultCommissionRepository) CreateCommission(commission *domain.Commission) error {
	commissionModel := mappers.ToGORMCommission(commission)
	if err := r.db.Create(commissionModel).Error; err != nil {
		return err
	}
	commission.ID = commissionModel.ID
	return nil
}

func (r *DefaultCommissionRepository) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	var commissionModel models.CommissionModel
	if err := r.db.Model(&models.CommissionModel{}).Where("id = ?", commissionID).First(&commissionModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainCommission(&commissionModel), nil
}

func (r *DefaultCommissionRepository) GetCommissionByConversionID(conversionID string) (*domain.Commission, error) {
	var commissionModel models.CommissionModel
	if err := r.db.Model(&models.CommissionModel{}).Where("conversion_id = ?", conversionID).First(&commissionModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainCommission(&commissionModel), nil
}

func (r *DefaultCommissionRepository) UpdateCommissionStatus(commissionID string, status domain.CommissionStatus, note string, changedAt time.Time) error {
	updates := map[string]interface{}{
		"status":         string(status),
		"status_changed": changedAt,
	}
	if note != "" {
		updates["note"] = note
	}
	return r.db.Model(&models.CommissionModel{}).Where("id = ?", commissionID).Updates(updates).Error
}

func (r *DefaultCommissionRepository) GetCommissions(filter domain.CommissionFilter, page, limit int) ([]*domain.Commission, int64, error) {
	query := r.db.Model(&models.CommissionModel{})
	if filter.PublisherID != nil {
		query = query.Where("publisher_id = ?", *filter.PublisherID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var commissionModels []models.CommissionModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&commissionModels).Error; err != nil {
		return nil, 0, err
	}

	commissions := make([]*domain.Commission, len(commissionModels))
	for i, commissionModel := range commissionModels {
		commissions[i] = mappers.ToDomainCommission(&commissionModel)
	}
	return commissions, total, nil
}
