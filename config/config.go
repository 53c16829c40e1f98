package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (asynq sweep queue).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisSweepDB  int    `mapstructure:"REDIS_SWEEP_DB"`

	// Cloudinary credentials for payment proof storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	Commission CommissionConfig `mapstructure:",squash"`
	Deposit    DepositConfig    `mapstructure:",squash"`
}

// CommissionConfig carries the commission policy knobs. It is injected into the
// commission service at construction so the core stays testable without a live
// backend or ambient globals.
type CommissionConfig struct {
	// RatePercent is the default commission rate. Therapist records may carry a
	// per-therapist override.
	RatePercent int `mapstructure:"COMMISSION_RATE_PERCENT"`
	// PaymentDeadlineOffset is added to the booking date (server clock) to form
	// the payment deadline.
	PaymentDeadlineOffset time.Duration `mapstructure:"COMMISSION_PAYMENT_DEADLINE"`
	// LateFee (minor currency units) is applied when the sweep marks a record overdue.
	LateFee int64 `mapstructure:"COMMISSION_LATE_FEE"`
	// PendingBlocksBooking controls whether a pending (not yet overdue) commission
	// already blocks new bookings, or only an overdue one does.
	PendingBlocksBooking bool `mapstructure:"COMMISSION_PENDING_BLOCKS_BOOKING"`
	// ProofFolder is the storage folder for uploaded payment proofs.
	ProofFolder string `mapstructure:"COMMISSION_PROOF_FOLDER"`
}

// DepositConfig carries the scheduled-booking deposit policy.
type DepositConfig struct {
	RatePercent int           `mapstructure:"DEPOSIT_RATE_PERCENT"`
	Expiry      time.Duration `mapstructure:"DEPOSIT_EXPIRY"`
	ProofFolder string        `mapstructure:"DEPOSIT_PROOF_FOLDER"`
}

// LoadConfig reads config.yaml (current or "config" directory) plus environment
// variables and returns the resulting Config.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "santai")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SWEEP_DB", 3)
	viper.SetDefault("COMMISSION_RATE_PERCENT", 30)
	viper.SetDefault("COMMISSION_PAYMENT_DEADLINE", 3*time.Hour)
	viper.SetDefault("COMMISSION_LATE_FEE", 50000)
	viper.SetDefault("COMMISSION_PENDING_BLOCKS_BOOKING", false)
	viper.SetDefault("COMMISSION_PROOF_FOLDER", "payment_proofs")
	viper.SetDefault("DEPOSIT_RATE_PERCENT", 50)
	viper.SetDefault("DEPOSIT_EXPIRY", 24*time.Hour)
	viper.SetDefault("DEPOSIT_PROOF_FOLDER", "deposit_proofs")

	if err := viper.ReadInConfig(); err != nil {
		// No config file is fine; environment variables and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
