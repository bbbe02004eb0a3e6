package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/models"
)

func TestCreateDraftStartsAtVersionOne(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).draftService(&stubGenerator{})

	draft, err := svc.CreateDraft(ctx, CreateDraftInput{Title: "Bail Application", Content: "initial"})
	require.NoError(t, err)

	assert.Equal(t, 1, draft.Version)
	require.Len(t, draft.Revisions, 1)
	assert.Equal(t, "initial", draft.Revisions[0].Content)
	assert.Equal(t, "firm_test", draft.FirmID)
}

func TestCreateDraftDefaultTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).draftService(&stubGenerator{})

	draft, err := svc.CreateDraft(ctx, CreateDraftInput{})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Draft", draft.Title)
}

func TestSaveContentBumpsVersion(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).draftService(&stubGenerator{})

	draft, err := svc.CreateDraft(ctx, CreateDraftInput{Title: "Petition", Content: "v1"})
	require.NoError(t, err)

	updated, err := svc.SaveContent(ctx, draft.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "v2", updated.Content)
	require.Len(t, updated.Revisions, 2)
	assert.Equal(t, 2, updated.Revisions[1].Version)

	updated, err = svc.SaveContent(ctx, draft.ID, "v3")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Version)
	assert.Len(t, updated.Revisions, 3)
}

func TestSaveContentUnknownDraft(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).draftService(&stubGenerator{})

	_, err := svc.SaveContent(ctx, "dr_missing", "content")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestGenerateDraft(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{response: "IN THE HIGH COURT OF DELHI..."}
	svc := env.draftService(gen)

	draft, err := svc.Generate(ctx, "Writ Petition", map[string]any{"petitioner": "Rahul Malhotra"})
	require.NoError(t, err)

	assert.Equal(t, "Writ Petition", draft.Title)
	assert.Equal(t, "IN THE HIGH COURT OF DELHI...", draft.Content)
	assert.Equal(t, 1, draft.Version)
	assert.Contains(t, gen.lastPrompt, "petitioner")
	assert.Equal(t, generationModel, gen.lastModel)

	// The persona follows the session user's role
	assert.Equal(t, models.RoleSeniorAdvocate.Profile().SystemInstruction, gen.lastSystem)

	// The drafts-created counter moved
	stored, err := env.users.Get(ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Usage.DraftsCreated)
}
