package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSuggestDB int    `mapstructure:"REDIS_SUGGEST_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe configuration.
	StripeKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// Attendance fee charged when a checkout completes, in minor units.
	AttendanceFeeCents int64  `mapstructure:"ATTENDANCE_FEE_CENTS"`
	Currency           string `mapstructure:"CURRENCY"`

	// Email (Resend) configuration.
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	OfficeEmail  string `mapstructure:"OFFICE_EMAIL"`

	// Google Places API key for address suggestions.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`
	// Two-letter country code suggestions are restricted to.
	SuggestCountry string `mapstructure:"SUGGEST_COUNTRY"`

	// Admin and signing secrets.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`
	JWTSecret  string `mapstructure:"JWT_SECRET"`

	// Base URL used when building links embedded in emails.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SUGGEST_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("ATTENDANCE_FEE_CENTS", 5500)
	viper.SetDefault("CURRENCY", "aud")
	viper.SetDefault("EMAIL_FROM", "bookings@tradecall.example")
	viper.SetDefault("OFFICE_EMAIL", "office@tradecall.example")
	viper.SetDefault("SUGGEST_COUNTRY", "au")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("GOOGLE_API_KEY", "")
	// Secrets have no sensible defaults, but AutomaticEnv only surfaces keys
	// viper already knows about, so each one needs an empty default for an
	// env-only deployment to reach Unmarshal.
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("JWT_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
