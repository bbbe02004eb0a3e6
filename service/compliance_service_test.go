package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

func newComplianceFixture(t *testing.T) (*ComplianceService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewComplianceService(repository.NewComplianceRepository(env.kv, env.audit, env.resolver)), env
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newComplianceFixture(t)

	require.NoError(t, svc.SeedDefaults(ctx))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)

	var critical int
	for _, item := range items {
		assert.Equal(t, "firm_test", item.FirmID)
		if item.Status == models.ComplianceCritical {
			critical++
		}
	}
	assert.Equal(t, 1, critical)

	require.NoError(t, svc.SeedDefaults(ctx))
	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestUpdateComplianceStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newComplianceFixture(t)

	require.NoError(t, svc.SeedDefaults(ctx))
	items, err := svc.List(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, items[0].ID, models.ComplianceCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.ComplianceCompleted, updated.Status)

	reloaded, err := svc.List(ctx)
	require.NoError(t, err)
	for _, item := range reloaded {
		if item.ID == items[0].ID {
			assert.Equal(t, models.ComplianceCompleted, item.Status)
		}
	}
}

func TestUpdateComplianceStatusUnknown(t *testing.T) {
	ctx := context.Background()
	svc, _ := newComplianceFixture(t)

	item, err := svc.UpdateStatus(ctx, "cp_missing", models.ComplianceCompleted)
	require.NoError(t, err)
	assert.Nil(t, item)
}
