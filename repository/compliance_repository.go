package repository

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// ComplianceRepository handles store operations for compliance items
type ComplianceRepository struct {
	scoped   *Scoped[*models.ComplianceItem]
	audit    *AuditRepository
	identity Identity
}

// NewComplianceRepository creates a new compliance repository
func NewComplianceRepository(kv store.KV, audit *AuditRepository, identity Identity) *ComplianceRepository {
	return &ComplianceRepository{
		scoped:   NewScoped[*models.ComplianceItem](kv, store.TableComplianceItems),
		audit:    audit,
		identity: identity,
	}
}

// All returns the caller's compliance items.
func (r *ComplianceRepository) All(ctx context.Context) ([]*models.ComplianceItem, error) {
	return r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
}

// Save upserts the item and records the action.
func (r *ComplianceRepository) Save(ctx context.Context, item *models.ComplianceItem) error {
	firmID := r.identity.CurrentFirmID(ctx)
	if err := r.scoped.Save(ctx, firmID, item); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_COMPLIANCE_ITEM", map[string]any{
		"id":     item.ID,
		"status": string(item.Status),
	})
}
