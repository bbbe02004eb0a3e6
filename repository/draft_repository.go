package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// ErrStaleDraftVersion is returned when a save carries a lower version
// than the stored draft. Versions are monotonic per draft id; a stale
// writer must reload instead of silently overwriting newer content.
var ErrStaleDraftVersion = errors.New("draft version is older than the stored version")

// DraftRepository handles store operations for drafts
type DraftRepository struct {
	scoped   *Scoped[*models.Draft]
	audit    *AuditRepository
	identity Identity
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(kv store.KV, audit *AuditRepository, identity Identity) *DraftRepository {
	return &DraftRepository{
		scoped:   NewScoped[*models.Draft](kv, store.TableDrafts),
		audit:    audit,
		identity: identity,
	}
}

// All returns the caller's drafts, optionally filtered by matter.
func (r *DraftRepository) All(ctx context.Context, matterID string) ([]*models.Draft, error) {
	drafts, err := r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
	if err != nil {
		return nil, err
	}
	if matterID == "" {
		return drafts, nil
	}

	var out []*models.Draft
	for _, d := range drafts {
		if d.MatterID == matterID {
			out = append(out, d)
		}
	}
	return out, nil
}

// Get returns one draft by id, or nil when absent.
func (r *DraftRepository) Get(ctx context.Context, id string) (*models.Draft, error) {
	return r.scoped.Get(ctx, r.identity.CurrentFirmID(ctx), id)
}

// Unlinked returns drafts not attached to any matter, including those
// carrying the legacy "default" sentinel.
func (r *DraftRepository) Unlinked(ctx context.Context) ([]*models.Draft, error) {
	drafts, err := r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
	if err != nil {
		return nil, err
	}

	var out []*models.Draft
	for _, d := range drafts {
		if d.Unlinked() {
			out = append(out, d)
		}
	}
	return out, nil
}

// Save upserts the draft, enforcing version monotonicity, and records
// the action.
func (r *DraftRepository) Save(ctx context.Context, d *models.Draft) error {
	firmID := r.identity.CurrentFirmID(ctx)

	existing, err := r.scoped.Get(ctx, firmID, d.ID)
	if err != nil {
		return err
	}
	if existing != nil && d.Version < existing.Version {
		return fmt.Errorf("save draft %s at version %d (stored %d): %w",
			d.ID, d.Version, existing.Version, ErrStaleDraftVersion)
	}

	if err := r.scoped.Save(ctx, firmID, d); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_DRAFT", map[string]any{
		"id":      d.ID,
		"version": d.Version,
	})
}
