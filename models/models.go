// Package models defines the entities persisted by the blob-table store.
// Field names and sentinel values mirror the persisted JSON layout, so
// data written by earlier versions of the product remains readable.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GlobalFirmID marks shared reference documents visible to every firm,
// read-only. It must never appear on tenant-authored records.
const GlobalFirmID = "global"

// Tenanted carries the identity fields shared by every firm-scoped
// entity. Embedding it keeps the persisted JSON flat.
type Tenanted struct {
	ID     string `json:"id"`
	FirmID string `json:"firmId"`
}

// RecordID returns the entity id.
func (t *Tenanted) RecordID() string { return t.ID }

// TenantID returns the owning firm id.
func (t *Tenanted) TenantID() string { return t.FirmID }

// SetTenantID stamps the owning firm id.
func (t *Tenanted) SetTenantID(id string) { t.FirmID = id }

// NewID generates a prefixed entity id, e.g. "mt_4f1c09a2b".
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, raw[:9])
}

// NowMillis returns the current time as epoch milliseconds, the
// timestamp unit used across all persisted records.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
