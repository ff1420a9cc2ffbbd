package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Server    ServerConfig
	Card      CardConfig
	Signature SignatureConfig
	Mail      MailConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int

	// PublicBaseURL is the externally reachable origin, used for the QR
	// verification URL and for asset links.
	PublicBaseURL string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: recreate tables, false: migration disabled
}

type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

type CardConfig struct {
	// ValidityYears is added to the issue date to compute the expiry date.
	ValidityYears int

	// ImageFetchTimeout bounds each remote image fetch during rendering.
	ImageFetchTimeout time.Duration
}

type SignatureConfig struct {
	// MaxUploadSize is the hard cap for /upload-image bodies, in bytes.
	MaxUploadSize int64
}

type MailConfig struct {
	SendGridAPIKey string
	FromName       string
	FromAddress    string

	// DispatchAddress receives rendered ID cards when no recipient is given.
	DispatchAddress string
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "oma-member-hub"),
			Env:           env,
			Port:          getEnvAsInt("APP_PORT", 8080),
			PublicBaseURL: getEnv("APP_PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", ""),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DB_AUTO_MIGRATE", false), // default: false (safe)
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			Expiry:        getEnvAsDuration("JWT_EXPIRY", "24h"),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", "168h"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
		},
		Card: CardConfig{
			ValidityYears:     getEnvAsInt("CARD_VALIDITY_YEARS", 1),
			ImageFetchTimeout: getEnvAsDuration("CARD_IMAGE_FETCH_TIMEOUT", "10s"),
		},
		Signature: SignatureConfig{
			MaxUploadSize: int64(getEnvAsInt("SIGNATURE_MAX_UPLOAD_SIZE", 2<<20)),
		},
		Mail: MailConfig{
			SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
			FromName:        getEnv("MAIL_FROM_NAME", "One Map Africa"),
			FromAddress:     getEnv("MAIL_FROM_ADDRESS", "no-reply@onemapafrica.org"),
			DispatchAddress: getEnv("MAIL_DISPATCH_ADDRESS", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("env file not found, falling back to system environment",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("env file loaded", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// App validation
	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "invalid port number")
	}
	if c.App.PublicBaseURL == "" {
		errors = append(errors, "public base URL is required")
	}

	// Database validation
	if c.Database.Host == "" {
		errors = append(errors, "database host is required")
	}
	if c.Database.Name == "" {
		errors = append(errors, "database name is required")
	}
	if c.Database.User == "" {
		errors = append(errors, "database user is required")
	}
	if c.Database.Password == "" {
		errors = append(errors, "database password is required")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		errors = append(errors, "JWT secret key is required")
	}
	if len(c.JWT.Secret) < 32 {
		errors = append(errors, "JWT secret key must be at least 32 characters")
	}

	if c.Card.ValidityYears < 1 {
		errors = append(errors, "card validity must be at least one year")
	}
	if c.Signature.MaxUploadSize < 1 {
		errors = append(errors, "signature upload size limit must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
