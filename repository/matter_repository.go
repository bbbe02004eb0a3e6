package repository

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// MatterRepository handles store operations for matters
type MatterRepository struct {
	scoped   *Scoped[*models.Matter]
	audit    *AuditRepository
	identity Identity
}

// NewMatterRepository creates a new matter repository
func NewMatterRepository(kv store.KV, audit *AuditRepository, identity Identity) *MatterRepository {
	return &MatterRepository{
		scoped:   NewScoped[*models.Matter](kv, store.TableMatters),
		audit:    audit,
		identity: identity,
	}
}

// All returns the caller's matters.
func (r *MatterRepository) All(ctx context.Context) ([]*models.Matter, error) {
	return r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
}

// Get returns one matter by id, or nil when absent.
func (r *MatterRepository) Get(ctx context.Context, id string) (*models.Matter, error) {
	return r.scoped.Get(ctx, r.identity.CurrentFirmID(ctx), id)
}

// Save upserts the matter and records the action.
func (r *MatterRepository) Save(ctx context.Context, m *models.Matter) error {
	firmID := r.identity.CurrentFirmID(ctx)
	if err := r.scoped.Save(ctx, firmID, m); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_MATTER", map[string]any{
		"id":    m.ID,
		"title": m.Title,
	})
}
