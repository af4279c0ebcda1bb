package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB.
	DatabaseURL  string        `mapstructure:"DATABASE_URL"`
	DatabaseName string        `mapstructure:"DATABASE_NAME"`
	StoreTimeout time.Duration `mapstructure:"STORE_TIMEOUT"`

	// Redis content cache.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int           `mapstructure:"REDIS_CACHE_DB"`
	ContentCacheTTL time.Duration `mapstructure:"CONTENT_CACHE_TTL"`

	// Admin authentication.
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	AdminTokenTTL time.Duration `mapstructure:"ADMIN_TOKEN_TTL"`

	// Outbound mail.
	SMTPHost     string        `mapstructure:"SMTP_HOST"`
	SMTPPort     int           `mapstructure:"SMTP_PORT"`
	SMTPUser     string        `mapstructure:"SMTP_USER"`
	SMTPPass     string        `mapstructure:"SMTP_PASS"`
	MailFromName string        `mapstructure:"MAIL_FROM_NAME"`
	AdminEmail   string        `mapstructure:"ADMIN_EMAIL"`
	ContactEmail string        `mapstructure:"CONTACT_EMAIL"`
	MailTimeout  time.Duration `mapstructure:"MAIL_TIMEOUT"`

	// BookingIDScheme is "timestamp" (BK + unix millis) or "uuid".
	BookingIDScheme string `mapstructure:"BOOKING_ID_SCHEME"`

	// Cloudinary image storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	UploadFolder        string `mapstructure:"UPLOAD_FOLDER"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "flowerdecor")
	v.SetDefault("STORE_TIMEOUT", 5*time.Second)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("CONTENT_CACHE_TTL", 5*time.Minute)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_TOKEN_TTL", 24*time.Hour)

	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("MAIL_FROM_NAME", "Flower Decor")
	v.SetDefault("ADMIN_EMAIL", "admin@flowerdecor.com")
	v.SetDefault("CONTACT_EMAIL", "gpflowerdecorators@gmail.com")
	v.SetDefault("MAIL_TIMEOUT", 15*time.Second)

	v.SetDefault("BOOKING_ID_SCHEME", "timestamp")

	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("UPLOAD_FOLDER", "flowerdecor")
}

// Load reads config.yaml (from "." or "./config") and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// MailConfigured reports whether SMTP credentials were supplied.
func (c Config) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}
