package main

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-affiliate-service/internal/config"
	"github.com/LavaJover/shvark-affiliate-service/internal/delivery/httpapi"
	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/codes"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/geoip"
	publisher "github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/rediscache"
	"github.com/LavaJover/shvark-affiliate-service/internal/infrastructure/useragent"
	clickuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/click"
	commissionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/commission"
	conversionuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/conversion"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.AffiliateDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.AffiliateDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers)

	// Init repos
	clickRepo := repository.NewDefaultClickRepository(db)
	sessionRepo := repository.NewDefaultSessionRepository(db)
	conversionRepo := repository.NewDefaultConversionRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)

	// Session cache: Redis optional, деградация до noop
	var sessionCache domain.SessionCache = rediscache.NoopSessionCache{}
	if cfg.RedisCache.Addr != "" {
		cache, err := rediscache.NewSessionCache(cfg.RedisCache.Addr, cfg.RedisCache.Password, cfg.RedisCache.DB)
		if err != nil {
			log.Printf("redis unavailable, session cache disabled: %v", err)
		} else {
			sessionCache = cache
		}
	}

	// Enrichment strategies
	var geoResolver domain.GeoResolver = geoip.NoopResolver{}
	if cfg.Enrichment.GeoIPPath != "" {
		resolver, err := geoip.NewMaxMindResolver(cfg.Enrichment.GeoIPPath)
		if err != nil {
			log.Printf("geoip db unavailable, geo enrichment disabled: %v", err)
		} else {
			geoResolver = resolver
		}
	}
	uaParser := useragent.NewMileusnaParser()

	// Tracking code generator
	codeGenerator, err := codes.NewNanoidGenerator()
	if err != nil {
		log.Fatalf("failed to init code generator: %v", err)
	}

	affiliateMetrics := metrics.NewAffiliateMetrics()

	// Init usecases
	commissionUsecase := commissionuc.NewDefaultCommissionUsecase(
		commissionRepo,
		kafkaPublisher,
		affiliateMetrics,
		cfg.KafkaService,
	)
	clickUsecase := clickuc.NewDefaultClickUsecase(
		clickRepo,
		sessionRepo,
		sessionCache,
		catalogRepo,
		codeGenerator,
		geoResolver,
		uaParser,
		kafkaPublisher,
		affiliateMetrics,
		cfg,
	)
	conversionUsecase := conversionuc.NewDefaultConversionUsecase(
		conversionRepo,
		clickRepo,
		catalogRepo,
		commissionUsecase,
		kafkaPublisher,
		affiliateMetrics,
		cfg.KafkaService,
	)

	// HTTP delivery
	clickHandler := httpapi.NewClickHandler(clickUsecase)
	conversionHandler := httpapi.NewConversionHandler(conversionUsecase)
	commissionHandler := httpapi.NewCommissionHandler(commissionUsecase)
	router := httpapi.NewRouter(clickHandler, conversionHandler, commissionHandler)

	// Наблюдение за истёкшими сессиями
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			<-ticker.C
			sessions, err := sessionRepo.FindExpiredSessions(time.Now().Add(-10 * time.Minute))
			if err != nil {
				slog.Error("expired sessions scan failed", "error", err.Error())
				continue
			}
			if len(sessions) > 0 {
				slog.Info("sessions expired", "count", len(sessions))
			}
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("affiliate service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
