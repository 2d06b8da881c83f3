package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultCatalogBaseURL = "https://portal.simspace.com/index.html#/training/catalog/structured-content-plan/"

type Config struct {
	APIPort  string
	LogLevel string

	DatasetSource  string
	DatasetTimeout time.Duration
	CatalogBaseURL string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DatasetCacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIPort:         getEnv("API_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatasetSource:   getEnv("DATASET_SOURCE", "training_winners_data.json"),
		DatasetTimeout:  time.Duration(getEnvAsInt("DATASET_TIMEOUT_SECONDS", 10)) * time.Second,
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", DefaultCatalogBaseURL),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		DatasetCacheTTL: time.Duration(getEnvAsInt("DATASET_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
