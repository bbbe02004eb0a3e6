package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/store"
)

func TestAuditLogNewestFirst(t *testing.T) {
	ctx := context.Background()
	audit := NewAuditRepository(store.NewMemory())

	require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", "SAVE_MATTER", nil))
	require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", "SAVE_CLIENT", nil))
	require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", "SAVE_DRAFT", nil))

	logs, err := audit.List(ctx, "firm_a")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "SAVE_DRAFT", logs[0].Action)
	assert.Equal(t, "SAVE_CLIENT", logs[1].Action)
	assert.Equal(t, "SAVE_MATTER", logs[2].Action)
}

func TestAuditListFiltersByFirm(t *testing.T) {
	ctx := context.Background()
	audit := NewAuditRepository(store.NewMemory())

	require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", "SAVE_MATTER", nil))
	require.NoError(t, audit.Log(ctx, "firm_b", "usr_2", "SAVE_MATTER", nil))

	aOnly, err := audit.List(ctx, "firm_a")
	require.NoError(t, err)
	require.Len(t, aOnly, 1)
	assert.Equal(t, "usr_1", aOnly[0].UserID)

	all, err := audit.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAuditEntryShape(t *testing.T) {
	ctx := context.Background()
	audit := NewAuditRepository(store.NewMemory())

	require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", "SAVE_DOCUMENT", map[string]any{"id": "doc_1"}))

	logs, err := audit.List(ctx, "firm_a")
	require.NoError(t, err)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.True(t, len(entry.ID) > 4 && entry.ID[:4] == "log_")
	assert.Equal(t, "127.0.0.1", entry.IPAddress)
	assert.NotZero(t, entry.Timestamp)
	assert.Equal(t, "doc_1", entry.Metadata["id"])
}

func TestAuditLogTrimsAtCap(t *testing.T) {
	if testing.Short() {
		t.Skip("writes the full audit cap")
	}

	ctx := context.Background()
	audit := NewAuditRepository(store.NewMemory())

	for i := 0; i < MaxAuditEntries+3; i++ {
		require.NoError(t, audit.Log(ctx, "firm_a", "usr_1", fmt.Sprintf("ACTION_%d", i), nil))
	}

	logs, err := audit.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, logs, MaxAuditEntries)

	// Newest survives at the head; the oldest entries were trimmed
	assert.Equal(t, fmt.Sprintf("ACTION_%d", MaxAuditEntries+2), logs[0].Action)
	assert.Equal(t, "ACTION_3", logs[len(logs)-1].Action)
}
