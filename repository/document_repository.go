package repository

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// DocumentRepository handles store operations for legal documents.
// Shared reference documents (firmId "global") are readable by every
// tenant through GetAll but invisible to Get, Delete and any mutation.
type DocumentRepository struct {
	scoped   *Scoped[*models.LegalDocument]
	audit    *AuditRepository
	identity Identity
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(kv store.KV, audit *AuditRepository, identity Identity) *DocumentRepository {
	return &DocumentRepository{
		scoped:   NewScoped[*models.LegalDocument](kv, store.TableDocuments),
		audit:    audit,
		identity: identity,
	}
}

// GetAll returns the caller's documents plus shared global documents.
// This is the only read path that crosses tenant scope.
func (r *DocumentRepository) GetAll(ctx context.Context) ([]*models.LegalDocument, error) {
	firmID := r.identity.CurrentFirmID(ctx)
	docs, err := r.scoped.Unscoped(ctx)
	if err != nil {
		return nil, err
	}

	var out []*models.LegalDocument
	for _, d := range docs {
		if d.FirmID == firmID || d.FirmID == models.GlobalFirmID {
			out = append(out, d)
		}
	}
	return out, nil
}

// Get returns one of the caller's own documents by id, or nil when
// absent. Global documents are not reachable here.
func (r *DocumentRepository) Get(ctx context.Context, id string) (*models.LegalDocument, error) {
	return r.scoped.Get(ctx, r.identity.CurrentFirmID(ctx), id)
}

// Unlinked returns the caller's documents not attached to any matter.
func (r *DocumentRepository) Unlinked(ctx context.Context) ([]*models.LegalDocument, error) {
	docs, err := r.scoped.All(ctx, r.identity.CurrentFirmID(ctx))
	if err != nil {
		return nil, err
	}

	var out []*models.LegalDocument
	for _, d := range docs {
		if d.Unlinked() {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetForFirm returns a document under an explicit firm scope. It
// exists for the indexing worker, which runs without a session.
func (r *DocumentRepository) GetForFirm(ctx context.Context, firmID, id string) (*models.LegalDocument, error) {
	return r.scoped.Get(ctx, firmID, id)
}

// SaveForFirm upserts a document under an explicit firm scope on
// behalf of the indexing worker, attributing the audit entry to the
// system rather than a user.
func (r *DocumentRepository) SaveForFirm(ctx context.Context, firmID string, d *models.LegalDocument) error {
	if err := r.scoped.Save(ctx, firmID, d); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, "system", "DOCUMENT_INDEXED", map[string]any{
		"id":     d.ID,
		"status": string(d.Status),
	})
}

// Save upserts the document and records the action.
func (r *DocumentRepository) Save(ctx context.Context, d *models.LegalDocument) error {
	firmID := r.identity.CurrentFirmID(ctx)
	if err := r.scoped.Save(ctx, firmID, d); err != nil {
		return err
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "SAVE_DOCUMENT", map[string]any{
		"id":    d.ID,
		"title": d.Title,
	})
}

// Delete removes one of the caller's own documents. Deleting a global
// or foreign document is a no-op thanks to the tenant guard.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	firmID := r.identity.CurrentFirmID(ctx)
	removed, err := r.scoped.Delete(ctx, firmID, id)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return r.audit.Log(ctx, firmID, r.identity.CurrentUserID(ctx), "DELETE_DOCUMENT", map[string]any{
		"id": id,
	})
}
