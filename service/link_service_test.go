package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/store"
)

func TestLinkDocument(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewLinkService(env.docs, env.drafts)

	require.NoError(t, env.docs.Save(ctx, &models.LegalDocument{Tenanted: models.Tenanted{ID: "doc_1"}, Title: "Evidence"}))

	require.NoError(t, svc.LinkDocument(ctx, "mt_1", "doc_1"))

	got, err := env.docs.Get(ctx, "doc_1")
	require.NoError(t, err)
	assert.Equal(t, "mt_1", got.MatterID)

	loose, err := env.docs.Unlinked(ctx)
	require.NoError(t, err)
	assert.Empty(t, loose)
}

func TestLinkDocumentUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewLinkService(env.docs, env.drafts)

	require.NoError(t, svc.LinkDocument(ctx, "mt_1", "doc_missing"))
}

func TestLinkDocumentGlobalIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewLinkService(env.docs, env.drafts)

	scoped := repository.NewScoped[*models.LegalDocument](env.kv, store.TableDocuments)
	require.NoError(t, scoped.Save(ctx, models.GlobalFirmID, &models.LegalDocument{
		Tenanted: models.Tenanted{ID: "doc_global"},
		Title:    "Shared Statute",
	}))

	require.NoError(t, svc.LinkDocument(ctx, "mt_1", "doc_global"))

	all, err := scoped.Unscoped(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].MatterID)
	assert.Equal(t, models.GlobalFirmID, all[0].FirmID)
}

func TestLinkDraftKeepsVersion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewLinkService(env.docs, env.drafts)

	require.NoError(t, env.drafts.Save(ctx, &models.Draft{
		Tenanted: models.Tenanted{ID: "dr_1"},
		Title:    "Petition",
		Version:  4,
		MatterID: models.UnlinkedMatterID,
	}))

	require.NoError(t, svc.LinkDraft(ctx, "mt_1", "dr_1"))

	got, err := env.drafts.Get(ctx, "dr_1")
	require.NoError(t, err)
	assert.Equal(t, "mt_1", got.MatterID)

	// Linking moves the draft without consuming a content version
	assert.Equal(t, 4, got.Version)

	loose, err := env.drafts.Unlinked(ctx)
	require.NoError(t, err)
	assert.Empty(t, loose)
}

func TestLinkDraftWritesAudit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewLinkService(env.docs, env.drafts)

	require.NoError(t, env.drafts.Save(ctx, &models.Draft{Tenanted: models.Tenanted{ID: "dr_1"}, Version: 1}))
	require.NoError(t, svc.LinkDraft(ctx, "mt_1", "dr_1"))

	logs, err := env.audit.List(ctx, env.firm.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "SAVE_DRAFT", logs[0].Action)
}
