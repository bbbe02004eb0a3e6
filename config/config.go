// Package config loads service configuration from an optional
// config.yaml and environment variables; environment always wins.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the vidhi backend.
type Config struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`

	// Blob-table store backend: memory, redis or postgres
	StoreType   string `yaml:"store_type" env:"STORE_TYPE" env-default:"memory"`
	RedisURL    string `yaml:"redis_url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL" env-default:""`

	// Raw-upload retention: local or s3
	BlobStorageType string `yaml:"blob_storage_type" env:"BLOB_STORAGE_TYPE" env-default:"local"`
	BlobLocalPath   string `yaml:"blob_local_path" env:"BLOB_STORAGE_LOCAL_PATH" env-default:"./data/uploads"`

	// Secret - environment only
	GeminiAPIKey string `yaml:"-" env:"GEMINI_API_KEY"`

	// How often the indexing worker reconciles pending jobs
	ReconcileInterval time.Duration `yaml:"reconcile_interval" env:"INDEX_RECONCILE_INTERVAL" env-default:"5s"`
}

// Load reads config.yaml when present, then overlays environment
// variables.
func Load() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
