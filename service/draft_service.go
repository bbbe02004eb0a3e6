package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// ErrDraftNotFound is returned when a draft id does not resolve within
// the caller's tenant.
var ErrDraftNotFound = errors.New("draft not found")

// DraftService creates draft shells, versions their content and
// generates content through the AI collaborator.
type DraftService struct {
	drafts   *repository.DraftRepository
	users    *repository.UserRepository
	gen      Generator
	sessions SessionReader
	logger   *zap.Logger
}

// NewDraftService creates a new draft service
func NewDraftService(drafts *repository.DraftRepository, users *repository.UserRepository, gen Generator, sessions SessionReader, logger *zap.Logger) *DraftService {
	return &DraftService{
		drafts:   drafts,
		users:    users,
		gen:      gen,
		sessions: sessions,
		logger:   logger,
	}
}

// CreateDraftInput carries the caller-supplied draft fields
type CreateDraftInput struct {
	Title    string
	Type     string
	Content  string
	MatterID string
}

// CreateDraft persists a new draft at version 1.
func (s *DraftService) CreateDraft(ctx context.Context, in CreateDraftInput) (*models.Draft, error) {
	now := models.NowMillis()
	draft := &models.Draft{
		Tenanted:  models.Tenanted{ID: models.NewID("dr")},
		MatterID:  in.MatterID,
		Title:     in.Title,
		Type:      in.Type,
		Content:   in.Content,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		Revisions: []models.DraftRevision{{Version: 1, Content: in.Content, CreatedAt: now}},
	}
	if draft.Title == "" {
		draft.Title = "Untitled Draft"
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SaveContent stores new content for an existing draft, bumping the
// version by exactly one and appending to the revision history.
func (s *DraftService) SaveContent(ctx context.Context, id, content string) (*models.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	now := models.NowMillis()
	draft.Content = content
	draft.Version++
	draft.UpdatedAt = now
	draft.Revisions = append(draft.Revisions, models.DraftRevision{
		Version:   draft.Version,
		Content:   content,
		CreatedAt: now,
	})

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Generate produces draft content from structured intake data under
// the caller's persona, stores it as a new draft and bumps the user's
// drafts-created counter.
func (s *DraftService) Generate(ctx context.Context, title string, data map[string]any) (*models.Draft, error) {
	role := models.RoleSeniorAdvocate
	user := s.sessions.Current(ctx)
	if user != nil {
		role = user.Role
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal draft data: %w", err)
	}
	prompt := fmt.Sprintf("Generate a formal legal draft based on: %s. "+
		"Follow professional Indian court formatting.", payload)

	content, err := s.gen.Generate(ctx, generationModel, role.Profile().SystemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	draft, err := s.CreateDraft(ctx, CreateDraftInput{Title: title, Content: content})
	if err != nil {
		return nil, err
	}

	if user != nil {
		stored, err := s.users.Get(ctx, user.ID)
		if err == nil && stored != nil {
			stored.Usage.DraftsCreated++
			if err := s.users.Save(ctx, stored); err != nil {
				s.logger.Warn("failed to bump drafts counter",
					zap.String("userId", stored.ID), zap.Error(err))
			}
		}
	}

	return draft, nil
}
