package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DATASET_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.DatasetTimeout)
	assert.False(t, cfg.CacheEnabled())
	assert.NotSame(t, cfg, Load(), "each Load builds its own Config")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("DATASET_SOURCE", "https://example.com/data.json")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DATASET_CACHE_TTL_SECONDS", "5")
	t.Setenv("CATALOG_BASE_URL", "https://catalog.example/")

	cfg := Load()

	assert.Equal(t, "9090", cfg.APIPort)
	assert.Equal(t, "https://example.com/data.json", cfg.DatasetSource)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 5*time.Second, cfg.DatasetCacheTTL)
	assert.Equal(t, "https://catalog.example/", cfg.CatalogBaseURL)
}
