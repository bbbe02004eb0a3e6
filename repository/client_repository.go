package repository

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// ClientRepository handles store operations for clients
type ClientRepository struct {
	scoped   *Scoped[*models.Client]
	audit    *AuditRepository
	identity Identity
}

// NewClientRepository creates a new client repository
func NewClientRepository(kv store.KV, audit *AuditRepository, identity Identity) *ClientRepository {
	return &ClientRepository{
		scoped:   NewScoped[*models.Client](kv, store.TableClients),
		audit:    audit,
		identity: identity,
	}
}

// All returns the caller's clients.
func (r *ClientRepository) All(ctx context.Context) ([]*models.Client, error) {
	return r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
}

// Get returns one client by id, or nil when absent.
func (r *ClientRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	return r.scoped.Get(ctx, r.identity.CurrentFirmID(ctx), id)
}

// Save upserts the client and records the action.
func (r *ClientRepository) Save(ctx context.Context, c *models.Client) error {
	firmID := r.identity.CurrentFirmID(ctx)
	if err := r.scoped.Save(ctx, firmID, c); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_CLIENT", map[string]any{
		"id":   c.ID,
		"name": c.Name,
	})
}
