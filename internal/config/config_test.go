package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Database{
		Driver:   "postgres",
		User:     "planner",
		Password: "secret",
		URL:      "db:5432/media_planner?sslmode=disable",
	})

	assert.Equal(t, "postgres://planner:secret@db:5432/media_planner?sslmode=disable", dsn)
}

func TestHasCredentials(t *testing.T) {
	assert.False(t, Google{}.HasCredentials())
	assert.True(t, Google{APIKey: "key"}.HasCredentials())
	assert.False(t, Meta{AdAccountID: "act_1"}.HasCredentials())
	assert.True(t, Meta{AccessToken: "token"}.HasCredentials())
	assert.False(t, Amazon{ClientSecret: "secret"}.HasCredentials())
	assert.True(t, Amazon{ClientID: "id"}.HasCredentials())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PLATFORMS_MOCK_MODE", "false")
	t.Setenv("META_ACCESS_TOKEN", "meta-token")
	t.Setenv("DATABASE_URL", "pg:5432/planner")
	t.Setenv("METRICS_SEED_DAYS", "5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Platforms.MockMode)
	assert.Equal(t, "meta-token", cfg.Meta.AccessToken)
	assert.Equal(t, 5, cfg.MetricsSync.SeedDays)
	assert.Equal(t, "postgres://postgres:root@pg:5432/planner", cfg.Database.DSN)
	assert.Equal(t, "30 0 * * *", cfg.MetricsSync.CronSchedule)
}
