package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Identity  IdentityConfig
	Events    EventsConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "memory"
	Connection string
}

type IdentityConfig struct {
	JwtSecret    string
	PublicKeyPEM string // preferred over JwtSecret when set
}

type EventsConfig struct {
	RevalidateTopic string
}

type TelemetryConfig struct {
	Enabled      bool
	OtlpEndpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/revalidation.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("STORE_DRIVER", StoreDriverPostgres),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Identity: IdentityConfig{
			JwtSecret:    getEnv("JWT_SECRET", ""),
			PublicKeyPEM: getEnv("IDENTITY_JWT_PUBLIC_KEY", ""),
		},
		Events: EventsConfig{
			RevalidateTopic: getEnv("REVALIDATE_TOPIC", "VIEW_INVALIDATED"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OtlpEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
