package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/letybo/ordering/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Store      StoreConfig      `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Catalog    CatalogConfig
	Cache      CacheConfig  `validate:"required"`
	Sentry     SentryConfig `validate:"required"`
	Support    SupportConfig
	Loyalty    LoyaltyConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address         string        `validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type StoreConfig struct {
	Provider types.StoreProvider `validate:"required,oneof=postgres memory"`
}

type PostgresConfig struct {
	Host                   string
	Port                   int
	User                   string
	Password               string
	DBName                 string `mapstructure:"dbname"`
	SSLMode                string `mapstructure:"sslmode"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
}

// CatalogConfig points at an optional YAML catalog replacing the built-in one
type CatalogConfig struct {
	File string
}

type CacheConfig struct {
	SelectionTTL    time.Duration `mapstructure:"selection_ttl" validate:"required"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"required"`
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// SupportConfig configures the assistant API behind the support chat.
// SendsPerMinute bounds messages per conversation.
type SupportConfig struct {
	Enabled        bool
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	KeyEndpoint    string        `mapstructure:"key_endpoint"`
	AssistantID    string        `mapstructure:"assistant_id"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RetryMax       int           `mapstructure:"retry_max"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	MaxWait        time.Duration `mapstructure:"max_wait"`
	SendsPerMinute int           `mapstructure:"sends_per_minute"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// LoyaltyConfig overrides the built-in ladder when Tiers is non-empty
type LoyaltyConfig struct {
	Tiers []LoyaltyTierConfig
}

type LoyaltyTierConfig struct {
	Name      string
	Threshold int
}

func NewConfig() (*Configuration, error) {
	// .env only matters for local runs; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("LETYBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file
func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()
	v.SetDefault("deployment.mode", defaults.Deployment.Mode)
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("store.provider", defaults.Store.Provider)
	v.SetDefault("postgres.host", defaults.Postgres.Host)
	v.SetDefault("postgres.port", defaults.Postgres.Port)
	v.SetDefault("postgres.user", defaults.Postgres.User)
	v.SetDefault("postgres.password", defaults.Postgres.Password)
	v.SetDefault("postgres.dbname", defaults.Postgres.DBName)
	v.SetDefault("postgres.sslmode", defaults.Postgres.SSLMode)
	v.SetDefault("postgres.max_open_conns", defaults.Postgres.MaxOpenConns)
	v.SetDefault("postgres.max_idle_conns", defaults.Postgres.MaxIdleConns)
	v.SetDefault("postgres.conn_max_lifetime_minutes", defaults.Postgres.ConnMaxLifetimeMinutes)
	v.SetDefault("catalog.file", "")
	v.SetDefault("cache.selection_ttl", defaults.Cache.SelectionTTL)
	v.SetDefault("cache.cleanup_interval", defaults.Cache.CleanupInterval)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("support.enabled", defaults.Support.Enabled)
	v.SetDefault("support.base_url", defaults.Support.BaseURL)
	v.SetDefault("support.api_key", "")
	v.SetDefault("support.key_endpoint", "")
	v.SetDefault("support.assistant_id", "")
	v.SetDefault("support.timeout", defaults.Support.Timeout)
	v.SetDefault("support.retry_max", defaults.Support.RetryMax)
	v.SetDefault("support.poll_interval", defaults.Support.PollInterval)
	v.SetDefault("support.max_wait", defaults.Support.MaxWait)
	v.SetDefault("support.sends_per_minute", defaults.Support.SendsPerMinute)
	v.SetDefault("support.session_ttl", defaults.Support.SessionTTL)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Deployment.Mode.Validate(); err != nil {
		return err
	}
	if c.Support.Enabled {
		if c.Support.BaseURL == "" || c.Support.AssistantID == "" {
			return fmt.Errorf("support.base_url and support.assistant_id are required when support is enabled")
		}
		if c.Support.APIKey == "" && c.Support.KeyEndpoint == "" {
			return fmt.Errorf("support.api_key or support.key_endpoint is required when support is enabled")
		}
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Store:   StoreConfig{Provider: types.StoreProviderMemory},
		Postgres: PostgresConfig{
			Host:                   "localhost",
			Port:                   5432,
			User:                   "letybo",
			Password:               "letybo",
			DBName:                 "letybo",
			SSLMode:                "disable",
			MaxOpenConns:           10,
			MaxIdleConns:           5,
			ConnMaxLifetimeMinutes: 30,
		},
		Cache: CacheConfig{
			SelectionTTL:    30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Sentry: SentryConfig{Environment: "development", SampleRate: 1.0},
		Support: SupportConfig{
			BaseURL:        "https://api.openai.com/v1",
			Timeout:        30 * time.Second,
			RetryMax:       3,
			PollInterval:   time.Second,
			MaxWait:        2 * time.Minute,
			SendsPerMinute: 10,
			SessionTTL:     time.Hour,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
