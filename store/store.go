// Package store provides the key/value blob store underneath the data
// layer. Each logical table is one key holding a JSON array; the
// active session is a single-record key. The store is a dumb blob
// layer: no partial updates, no indexes, no schema validation.
package store

import (
	"context"
	"fmt"
	"os"
)

// Key layout. These names must stay stable: they are the persisted
// storage contract.
const (
	TablePrefix = "v_os_prod_"
	SessionKey  = "v_os_session"
)

// Table names
const (
	TableMatters         = "matters"
	TableClients         = "clients"
	TableDocuments       = "documents"
	TableDrafts          = "drafts"
	TableHearings        = "hearings"
	TableComplianceItems = "compliance_items"
	TableChatHistory     = "chat_history"
	TableFirms           = "firms"
	TableUsers           = "users"
	TableAuditLogs       = "audit_logs"
	TableIndexingJobs    = "indexing_jobs"
)

// TableKey returns the storage key for a logical table.
func TableKey(table string) string {
	return TablePrefix + table
}

// KV is the raw blob store. Get returns (nil, nil) when the key is
// absent; callers treat absence and corruption as an empty table.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Type represents the store backend type
type Type string

const (
	TypeMemory   Type = "memory"
	TypeRedis    Type = "redis"
	TypePostgres Type = "postgres"
)

// Config holds configuration for the store
type Config struct {
	Type        Type
	RedisURL    string
	DatabaseURL string
}

// New creates a store instance based on configuration.
func New(ctx context.Context, cfg Config) (KV, error) {
	switch cfg.Type {
	case TypeMemory, "":
		return NewMemory(), nil
	case TypeRedis:
		return NewRedis(ctx, cfg.RedisURL)
	case TypePostgres:
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}

// NewFromEnv creates a store instance from environment variables.
func NewFromEnv(ctx context.Context) (KV, error) {
	cfg := Config{
		Type:        Type(os.Getenv("STORE_TYPE")),
		RedisURL:    os.Getenv("REDIS_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Type == "" {
		cfg.Type = TypeMemory // Default for development
	}
	return New(ctx, cfg)
}
