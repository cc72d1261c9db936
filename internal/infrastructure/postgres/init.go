package postgres

import (
	"log"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AffiliateConfig) *gorm.DB {
	dsn := cfg.AffiliateDB.Dsn
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey -
	// idempotency of conversions relies on it
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.OfferModel{},
		&models.ProgramModel{},
		&models.TierModel{},
		&models.SessionModel{},
		&models.ClickModel{},
		&models.ConversionModel{},
		&models.CommissionModel{},
	)

	return db
}
