package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Report store backends selectable with REPORT_STORE.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=json console"`
	StaticDir   string `validate:"required"`
	CORSOrigins []string

	ReportStore string `validate:"oneof=postgres mongo memory"`
	PostgresDSN string `validate:"required_if=ReportStore postgres"`
	MongoURI    string `validate:"required_if=ReportStore mongo"`
	MongoDB     string `validate:"required_if=ReportStore mongo"`

	RedisAddr     string
	RedisPassword string
	RedisChannel  string `validate:"required"`

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string `validate:"required_with=MinioEndpoint"`
	MinioUseSSL    bool
	LogoObject     string `validate:"required_with=MinioEndpoint"`
	LogoPath       string

	GeminiAPIKey  string `validate:"required"`
	GeminiModel   string `validate:"required"`
	GeminiBaseURL string `validate:"omitempty,url"`
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:           getenv("PORT", "3000"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "json"),
		StaticDir:      getenv("STATIC_DIR", "public"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		ReportStore:    getenv("REPORT_STORE", StorePostgres),
		PostgresDSN:    getenv("POSTGRES_DSN", postgresDSNFromParts()),
		MongoURI:       getenv("MONGO_URI", ""),
		MongoDB:        getenv("MONGO_DB", "bemestar"),
		RedisAddr:      getenv("REDIS_ADDR", ""),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		RedisChannel:   getenv("REDIS_CHANNEL", "bemestar:reports"),
		MinioEndpoint:  getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "bemestar-assets"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",
		LogoObject:     getenv("LOGO_OBJECT", "logo.png"),
		LogoPath:       getenv("LOGO_PATH", "logo.png"),
		GeminiAPIKey:   getenv("GEMINI_API_KEY", ""),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:  getenv("GEMINI_BASE_URL", ""),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// postgresDSNFromParts builds a DSN from the PG_* variables, or returns ""
// when PG_HOST is unset.
func postgresDSNFromParts() string {
	host := os.Getenv("PG_HOST")
	if host == "" {
		return ""
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   host + ":" + getenv("PG_PORT", "5432"),
		Path:   "/" + os.Getenv("PG_DATABASE"),
	}
	if user := os.Getenv("PG_USER"); user != "" {
		u.User = url.UserPassword(user, os.Getenv("PG_PASSWORD"))
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
