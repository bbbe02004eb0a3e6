package service

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// LinkService attaches documents and drafts to matters by setting
// their matterId. There is no unlink operation; relinking to another
// matter overwrites the association. Targets outside the caller's
// tenant are invisible: linking them is a silent no-op, which is the
// tenant-isolation boundary in practice.
type LinkService struct {
	documents *repository.DocumentRepository
	drafts    *repository.DraftRepository
}

// NewLinkService creates a new link service
func NewLinkService(documents *repository.DocumentRepository, drafts *repository.DraftRepository) *LinkService {
	return &LinkService{documents: documents, drafts: drafts}
}

// LinkDocument attaches one of the caller's documents to a matter.
// Global shared documents cannot be linked: they are not reachable
// through the tenant-scoped get.
func (s *LinkService) LinkDocument(ctx context.Context, matterID, documentID string) error {
	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	doc.MatterID = matterID
	return s.documents.Save(ctx, doc)
}

// LinkDraft attaches one of the caller's drafts to a matter. The save
// goes through the draft repository so the audit log and version guard
// fire.
func (s *LinkService) LinkDraft(ctx context.Context, matterID, draftID string) error {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return err
	}
	if draft == nil {
		return nil
	}

	draft.MatterID = matterID
	draft.UpdatedAt = models.NowMillis()
	return s.drafts.Save(ctx, draft)
}
