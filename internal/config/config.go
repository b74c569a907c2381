package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml + переменные окружения)
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Tracing        TracingConfig        `toml:"tracing"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Drafts         DraftsConfig         `toml:"drafts"`
	Pricing        PricingConfig        `toml:"pricing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	OTLPAddr    string `toml:"otlp_addr"` // пусто - трейсинг выключен
	ServiceName string `toml:"service_name"`
}

// Enabled returns true if an OTLP collector address is configured
func (c TracingConfig) Enabled() bool {
	return c.OTLPAddr != ""
}

type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type DraftsConfig struct {
	// URL хранилища черновиков: kvdb://path/to/drafts.db или redis://host:port/db
	URL      string `toml:"url"`
	TTLHours int    `toml:"ttl_hours"`
	Password string `toml:"password"`
}

// TTL время жизни черновика
func (c DraftsConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// PricingConfig глобальные правила расчета, когда в БД нет подходящей записи
type PricingConfig struct {
	DayCount             string `toml:"day_count"`
	PoolStrategy         string `toml:"pool_strategy"`
	MinimumStayDays      int    `toml:"minimum_stay_days"`
	CabinMinimumStayDays int    `toml:"cabin_minimum_stay_days"`
	MemberFreePoolGuests *int   `toml:"member_free_pool_guests"`
	GuestMinBillableAge  *int   `toml:"guest_min_billable_age"`
}

// Rules правила по умолчанию для типа пространства с учетом конфигурации
func (c PricingConfig) Rules(spaceType domain.SpaceType) domain.PricingRules {
	rules := domain.DefaultRules(spaceType)
	if c.DayCount != "" {
		rules.DayCount = domain.DayCountConvention(c.DayCount)
	}
	if c.PoolStrategy != "" {
		rules.PoolStrategy = domain.PoolStrategy(c.PoolStrategy)
	}
	if spaceType == domain.SpaceTypeCabin {
		if c.CabinMinimumStayDays > 0 {
			rules.MinimumStayDays = c.CabinMinimumStayDays
		}
	} else if c.MinimumStayDays > 0 {
		rules.MinimumStayDays = c.MinimumStayDays
	}
	if c.MemberFreePoolGuests != nil {
		rules.MemberFreePoolGuests = *c.MemberFreePoolGuests
	}
	if c.GuestMinBillableAge != nil {
		rules.GuestMinBillableAge = *c.GuestMinBillableAge
	}
	return rules
}

// Load читает TOML-файл, затем .env и переменные окружения (секреты не хранятся в файле)
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Drafts.Password = v
	}
	if v := os.Getenv("DRAFTS_URL"); v != "" {
		c.Drafts.URL = v
	}
	if v := os.Getenv("CATALOG_SERVICE_URL"); v != "" {
		c.CatalogService.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "enap_reservas_pricing"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "enap-reservas-pricing"
	}
	if c.CatalogService.Timeout == 0 {
		c.CatalogService.Timeout = 5
	}
	if c.Drafts.URL == "" {
		c.Drafts.URL = "kvdb://data/drafts.db"
	}
	if c.Drafts.TTLHours == 0 {
		c.Drafts.TTLHours = 72
	}
}

// Validate проверяет обязательные поля и значения правил расчета
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("%w: catalog_service.url is required", ErrInvalidConfig)
	}
	if c.Pricing.DayCount != "" && !domain.DayCountConvention(c.Pricing.DayCount).IsValid() {
		return fmt.Errorf("%w: pricing.day_count must be inclusive or exclusive", ErrInvalidConfig)
	}
	if c.Pricing.PoolStrategy != "" && !domain.PoolStrategy(c.Pricing.PoolStrategy).IsValid() {
		return fmt.Errorf("%w: pricing.pool_strategy must be per_head or flat_base", ErrInvalidConfig)
	}
	if c.Pricing.MemberFreePoolGuests != nil && *c.Pricing.MemberFreePoolGuests < 0 {
		return fmt.Errorf("%w: pricing.member_free_pool_guests must not be negative", ErrInvalidConfig)
	}
	if c.Pricing.GuestMinBillableAge != nil && *c.Pricing.GuestMinBillableAge < 0 {
		return fmt.Errorf("%w: pricing.guest_min_billable_age must not be negative", ErrInvalidConfig)
	}
	return nil
}
