package testutil

import (
	"time"

	"github.com/onemapafrica/member-hub-api/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:          "oma-member-hub-test",
			Env:           "test",
			Port:          8080,
			PublicBaseURL: "https://hub.onemapafrica.test",
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			Name:            "test",
			User:            "test",
			Password:        "test",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        24 * time.Hour,
			RefreshExpiry: 168 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Card: config.CardConfig{
			ValidityYears:     1,
			ImageFetchTimeout: 2 * time.Second,
		},
		Signature: config.SignatureConfig{
			MaxUploadSize: 2 << 20,
		},
		Mail: config.MailConfig{
			SendGridAPIKey:  "test-api-key",
			FromName:        "One Map Africa",
			FromAddress:     "no-reply@onemapafrica.test",
			DispatchAddress: "cards@onemapafrica.test",
		},
	}
}
