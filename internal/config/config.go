package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AffiliateConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	AffiliateDB  `yaml:"affiliate_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	RedisCache   `yaml:"redis-cache"`
	Enrichment   `yaml:"enrichment"`
	Tracking     `yaml:"tracking"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type AffiliateDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	ClickTopic      string `yaml:"click_topic" env-default:"affiliate-click-events"`
	ConversionTopic string `yaml:"conversion_topic" env-default:"conversion-events"`
	CommissionTopic string `yaml:"commission_topic" env-default:"commission-events"`
}

type RedisCache struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Enrichment struct {
	GeoIPPath     string        `yaml:"geoip_path"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" env-default:"300ms"`
}

type Tracking struct {
	RedirectParam string `yaml:"redirect_param" env-default:"sub"`
}

func MustLoad() *AffiliateConfig {

	// Processing env config variable and file
	configPath := os.Getenv("AFFILIATE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("AFFILIATE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AffiliateConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
