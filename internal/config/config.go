package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Legacy   LegacyConfig
	Funnel   FunnelConfig
	Keys     Topics
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	SessionStore       string // "memory" or "redis"
}

type DatabaseConfig struct {
	// Connection is optional; without it the lead audit log is disabled.
	Connection string
}

type LegacyConfig struct {
	// BaseURL of the legacy PHP platform (lookups, questionnaire, buyer check).
	BaseURL string
	// DemandeURL receives the per-supplier demande forms.
	DemandeURL string
}

type FunnelConfig struct {
	// AutoAdvanceDelay between a single-select answer and the move to the
	// next question.
	AutoAdvanceDelay time.Duration
	// InterRequestDelay spaces the sequential per-supplier submissions.
	InterRequestDelay time.Duration
}

type Topics struct {
	FunnelEvents string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Legacy: LegacyConfig{
			BaseURL:    getEnv("LEGACY_BASE_URL", "https://www.hellopro.fr"),
			DemandeURL: getEnv("LEGACY_DEMANDE_URL", "https://www.hellopro.fr/demande-info"),
		},
		Funnel: FunnelConfig{
			AutoAdvanceDelay:  getEnvAsDuration("AUTO_ADVANCE_DELAY_MS", 300),
			InterRequestDelay: getEnvAsDuration("INTER_REQUEST_DELAY_MS", 200),
		},
		Keys: Topics{
			FunnelEvents: getEnv("FUNNEL_EVENTS_TOPIC_NAME", "FUNNEL_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallbackMs int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallbackMs)) * time.Millisecond
}
