package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// MaxAuditEntries bounds the stored audit log; the oldest entries are
// trimmed once the cap is exceeded.
const MaxAuditEntries = 5000

// auditOrigin is a placeholder: there is no client/server network
// boundary to attribute a real address to yet.
const auditOrigin = "127.0.0.1"

// AuditRepository appends and reads the append-only audit log. Entries
// are stored newest-first; a written entry is never rewritten.
type AuditRepository struct {
	kv store.KV
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(kv store.KV) *AuditRepository {
	return &AuditRepository{kv: kv}
}

func (r *AuditRepository) readAll(ctx context.Context) ([]*models.AuditLog, error) {
	payload, err := r.kv.Get(ctx, store.TableKey(store.TableAuditLogs))
	if err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var logs []*models.AuditLog
	if err := json.Unmarshal(payload, &logs); err != nil {
		return nil, nil
	}
	return logs, nil
}

// Log prepends one entry and trims the log to MaxAuditEntries.
func (r *AuditRepository) Log(ctx context.Context, firmID, userID, action string, metadata map[string]any) error {
	logs, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	entry := &models.AuditLog{
		ID:        models.NewID("log"),
		FirmID:    firmID,
		UserID:    userID,
		Action:    action,
		Timestamp: models.NowMillis(),
		Metadata:  metadata,
		IPAddress: auditOrigin,
	}

	logs = append([]*models.AuditLog{entry}, logs...)
	if len(logs) > MaxAuditEntries {
		logs = logs[:MaxAuditEntries]
	}

	payload, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("marshal audit log: %w", err)
	}
	if err := r.kv.Set(ctx, store.TableKey(store.TableAuditLogs), payload); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// List returns entries newest-first, optionally filtered by firm.
// An empty firmID returns the platform-wide log.
func (r *AuditRepository) List(ctx context.Context, firmID string) ([]*models.AuditLog, error) {
	logs, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	if firmID == "" {
		return logs, nil
	}

	var out []*models.AuditLog
	for _, l := range logs {
		if l.FirmID == firmID {
			out = append(out, l)
		}
	}
	return out, nil
}
