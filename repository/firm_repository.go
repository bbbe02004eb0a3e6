package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// FirmRepository handles store operations for firms. Firms are the
// tenants themselves, so this table is not firm-scoped.
type FirmRepository struct {
	kv store.KV
}

// NewFirmRepository creates a new firm repository
func NewFirmRepository(kv store.KV) *FirmRepository {
	return &FirmRepository{kv: kv}
}

func (r *FirmRepository) readAll(ctx context.Context) ([]*models.Firm, error) {
	payload, err := r.kv.Get(ctx, store.TableKey(store.TableFirms))
	if err != nil {
		return nil, fmt.Errorf("read firms: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var firms []*models.Firm
	if err := json.Unmarshal(payload, &firms); err != nil {
		return nil, nil
	}
	return firms, nil
}

// All returns every firm on the platform.
func (r *FirmRepository) All(ctx context.Context) ([]*models.Firm, error) {
	return r.readAll(ctx)
}

// Get returns one firm by id, or nil when absent.
func (r *FirmRepository) Get(ctx context.Context, id string) (*models.Firm, error) {
	firms, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range firms {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

// Save upserts the firm by id.
func (r *FirmRepository) Save(ctx context.Context, firm *models.Firm) error {
	firms, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, f := range firms {
		if f.ID == firm.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		firms[idx] = firm
	} else {
		firms = append(firms, firm)
	}

	payload, err := json.Marshal(firms)
	if err != nil {
		return fmt.Errorf("marshal firms: %w", err)
	}
	if err := r.kv.Set(ctx, store.TableKey(store.TableFirms), payload); err != nil {
		return fmt.Errorf("write firms: %w", err)
	}
	return nil
}
