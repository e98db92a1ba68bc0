package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "STATIC_DIR", "CORS_ORIGINS",
		"REPORT_STORE", "POSTGRES_DSN", "PG_HOST", "PG_PORT", "PG_USER",
		"PG_PASSWORD", "PG_DATABASE", "MONGO_URI", "MONGO_DB",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_CHANNEL",
		"MINIO_ENDPOINT", "MINIO_BUCKET", "LOGO_OBJECT", "LOGO_PATH",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("REPORT_STORE", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, StoreMemory, cfg.ReportStore)
	assert.Equal(t, "logo.png", cfg.LogoPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPORT_STORE", "memory")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GeminiAPIKey")
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PostgresDSN")
}

func TestLoad_PostgresDSNFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_USER", "senai")
	t.Setenv("PG_PASSWORD", "s3cret")
	t.Setenv("PG_DATABASE", "bemestar")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://senai:s3cret@db:5432/bemestar", cfg.PostgresDSN)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("REPORT_STORE", "sqlite")

	_, err := Load()
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}

func TestLoad_GeminiBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("REPORT_STORE", "memory")

	t.Setenv("GEMINI_BASE_URL", "not a url")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("GEMINI_BASE_URL", "http://gemini-proxy:8080")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://gemini-proxy:8080", cfg.GeminiBaseURL)
}
