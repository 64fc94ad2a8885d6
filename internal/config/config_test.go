package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cosigner/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 720*time.Hour, cfg.Redis.DraftTTL)
	assert.Equal(t, "payments", cfg.AMQP.Exchange)
	assert.Equal(t, 5*time.Second, cfg.AMQP.RetryDelay)
	assert.Equal(t, 10, cfg.AMQP.MaxRedeliveries)
	assert.Equal(t, int64(5<<20), cfg.Upload.IdentityMaxBytes)
	assert.Equal(t, int64(10<<20), cfg.Upload.IncomeMaxBytes)
	assert.Equal(t, "postgres://postgres:@localhost:5432/cosigner?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "apps")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("UPLOAD_TIMEOUT", "2m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.Upload.Timeout)
	assert.Equal(t, "postgres://postgres:@db:5432/apps?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := config.Load()
	assert.Error(t, err)
}
