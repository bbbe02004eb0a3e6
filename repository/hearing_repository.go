package repository

import (
	"context"
	"sort"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// HearingRepository handles store operations for hearings
type HearingRepository struct {
	scoped   *Scoped[*models.Hearing]
	audit    *AuditRepository
	identity Identity
}

// NewHearingRepository creates a new hearing repository
func NewHearingRepository(kv store.KV, audit *AuditRepository, identity Identity) *HearingRepository {
	return &HearingRepository{
		scoped:   NewScoped[*models.Hearing](kv, store.TableHearings),
		audit:    audit,
		identity: identity,
	}
}

// All returns the caller's hearings, optionally filtered by matter.
func (r *HearingRepository) All(ctx context.Context, matterID string) ([]*models.Hearing, error) {
	hearings, err := r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
	if err != nil {
		return nil, err
	}
	if matterID == "" {
		return hearings, nil
	}

	var out []*models.Hearing
	for _, h := range hearings {
		if h.MatterID == matterID {
			out = append(out, h)
		}
	}
	return out, nil
}

// Upcoming returns hearings dated now or later, earliest first.
func (r *HearingRepository) Upcoming(ctx context.Context) ([]*models.Hearing, error) {
	hearings, err := r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
	if err != nil {
		return nil, err
	}

	now := models.NowMillis()
	var out []*models.Hearing
	for _, h := range hearings {
		if h.Date >= now {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Save upserts the hearing and records the action.
func (r *HearingRepository) Save(ctx context.Context, h *models.Hearing) error {
	firmID := r.identity.CurrentFirmID(ctx)
	if err := r.scoped.Save(ctx, firmID, h); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_HEARING", map[string]any{
		"id":       h.ID,
		"matterId": h.MatterID,
	})
}
