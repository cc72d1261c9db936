package repository

import (
	"errors"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultCatalogRepository читает офферы и программы каталога. Read-only:
// каталог принадлежит соседнему CRUD-сервису.
type DefaultCatalogRepository struct {
	db *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{db: db}
}

func (r *DefaultCatalogRepository) GetOfferByID(offerID string) (*domain.Offer, error) {
	var offerModel models.OfferModel
	if err := r.db.Model(&models.OfferModel{}).Where("id = ?", offerID).First(&offerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOffer(&offerModel), nil
}

func (r *DefaultCatalogRepository) GetProgramByID(programID string) (*domain.AffiliateProgram, error) {
	var programModel models.ProgramModel
	if err := r.db.Model(&models.ProgramModel{}).Preload("Tiers").Where("id = ?", programID).First(&programModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgram(&programModel), nil
}
