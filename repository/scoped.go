// Package repository implements tenant-scoped data access over the
// blob-table store. The generic Scoped accessor is the isolation
// boundary: every read and write below it is filtered by firm id, and
// nothing above it touches the store directly.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SauravRai18/vidhi/store"
)

// Record is implemented by every firm-scoped entity.
type Record interface {
	RecordID() string
	TenantID() string
	SetTenantID(id string)
}

// Identity resolves the caller's tenant and user for scoping and audit
// attribution. The session resolver implements it; tests substitute a
// fixed identity.
type Identity interface {
	CurrentFirmID(ctx context.Context) string
	CurrentUserID(ctx context.Context) string
}

// ErrTenantMismatch is returned when a save would re-assign an
// existing record to a different firm. Cross-tenant re-assignment is
// always a caller error, never executed silently.
var ErrTenantMismatch = errors.New("record belongs to a different firm")

// Scoped is a generic per-table, per-tenant accessor. Every operation
// is a whole-table read-modify-write; the tenant parameter is the only
// isolation mechanism.
type Scoped[T Record] struct {
	kv    store.KV
	table string
}

// NewScoped creates an accessor for one logical table.
func NewScoped[T Record](kv store.KV, table string) *Scoped[T] {
	return &Scoped[T]{kv: kv, table: table}
}

// readAll loads the full table. An absent or corrupt payload fails
// closed to an empty table so one bad blob cannot take down every
// caller.
func (s *Scoped[T]) readAll(ctx context.Context) ([]T, error) {
	payload, err := s.kv.Get(ctx, store.TableKey(s.table))
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", s.table, err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// writeAll replaces the table wholesale.
func (s *Scoped[T]) writeAll(ctx context.Context, records []T) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal table %s: %w", s.table, err)
	}
	if err := s.kv.Set(ctx, store.TableKey(s.table), payload); err != nil {
		return fmt.Errorf("write table %s: %w", s.table, err)
	}
	return nil
}

// All returns every record owned by firmID.
func (s *Scoped[T]) All(ctx context.Context, firmID string) ([]T, error) {
	records, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []T
	for _, r := range records {
		if r.TenantID() == firmID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Get returns the record matching both id and firmID, or the zero
// value when absent. Absence is not an error.
func (s *Scoped[T]) Get(ctx context.Context, firmID, id string) (T, error) {
	var zero T
	records, err := s.readAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, r := range records {
		if r.RecordID() == id && r.TenantID() == firmID {
			return r, nil
		}
	}
	return zero, nil
}

// Save upserts the record under firmID, stamping its firm id from the
// scope. If a record with the same id already belongs to another firm
// the save is rejected with ErrTenantMismatch.
func (s *Scoped[T]) Save(ctx context.Context, firmID string, record T) error {
	records, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, r := range records {
		if r.RecordID() == record.RecordID() {
			idx = i
			break
		}
	}

	if idx >= 0 && records[idx].TenantID() != firmID {
		return fmt.Errorf("save %s/%s: %w", s.table, record.RecordID(), ErrTenantMismatch)
	}

	record.SetTenantID(firmID)
	if idx >= 0 {
		records[idx] = record
	} else {
		records = append(records, record)
	}
	return s.writeAll(ctx, records)
}

// Delete removes the record iff both id and firmID match; deleting an
// absent or foreign record is a no-op. It reports whether a record was
// actually removed.
func (s *Scoped[T]) Delete(ctx context.Context, firmID, id string) (bool, error) {
	records, err := s.readAll(ctx)
	if err != nil {
		return false, err
	}

	kept := records[:0]
	removed := false
	for _, r := range records {
		if r.RecordID() == id && r.TenantID() == firmID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	return true, s.writeAll(ctx, kept)
}

// Unscoped returns the full table across all tenants. It exists for
// the shared-document union, platform administration and the indexing
// worker; nothing else may call it.
func (s *Scoped[T]) Unscoped(ctx context.Context) ([]T, error) {
	return s.readAll(ctx)
}
