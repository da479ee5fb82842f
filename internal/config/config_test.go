package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("RESULTS_NON_NUMERIC", "Skip")
	t.Setenv("MIGRATE", "true")
	t.Setenv("STORAGE", "")

	cfg, err := Load([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, domain.NonNumericSkip, cfg.NonNumeric)
	assert.True(t, cfg.Migrate)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE", "postgres")

	cfg, err := Load([]string{"-port", "8081", "-storage", "memory", "-non-numeric", "zero"})
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, domain.NonNumericZero, cfg.NonNumeric)
}

func TestLoad_PostgresParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "scores")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("STORAGE", "")

	cfg, err := Load([]string{})
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/scores?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "")

	_, err := Load([]string{"-storage", "postgres"})
	assert.Error(t, err, "postgres needs a database URL")

	_, err = Load([]string{"-storage", "sqlite"})
	assert.Error(t, err)

	_, err = Load([]string{"-storage", "memory", "-non-numeric", "average"})
	assert.Error(t, err)

	t.Setenv("PORT", "abc")
	_, err = Load([]string{"-storage", "memory"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "warn")

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
}
