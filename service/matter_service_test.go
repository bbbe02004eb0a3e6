package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/models"
)

func TestCreateMatterDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).matterService()

	matter, err := svc.CreateMatter(ctx, CreateMatterInput{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Matter", matter.Title)
	assert.Equal(t, defaultCourt, matter.Court)
	assert.Equal(t, models.MatterPending, matter.Status)
	assert.Equal(t, []string{"Active"}, matter.Tags)
	assert.Equal(t, "firm_test", matter.FirmID)
	assert.NotZero(t, matter.CreatedAt)
	assert.NotZero(t, matter.LastAccessedAt)
}

func TestCreateClientDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).matterService()

	client, err := svc.CreateClient(ctx, CreateClientInput{})
	require.NoError(t, err)

	assert.Equal(t, "Unnamed Client", client.Name)
	assert.Equal(t, "Individual", client.Type)
	assert.Equal(t, "firm_test", client.FirmID)
}

func TestAddHearingEarliestWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.matterService()

	matter, err := svc.CreateMatter(ctx, CreateMatterInput{Title: "Hearing Test"})
	require.NoError(t, err)
	require.Zero(t, matter.NextHearingDate)

	day := int64(24 * time.Hour / time.Millisecond)
	base := models.NowMillis()

	// First hearing sets the index
	_, err = svc.AddHearing(ctx, AddHearingInput{MatterID: matter.ID, Date: base + 10*day})
	require.NoError(t, err)
	got, err := env.matters.Get(ctx, matter.ID)
	require.NoError(t, err)
	assert.Equal(t, base+10*day, got.NextHearingDate)

	// An earlier hearing lowers it
	_, err = svc.AddHearing(ctx, AddHearingInput{MatterID: matter.ID, Date: base + 2*day})
	require.NoError(t, err)
	got, err = env.matters.Get(ctx, matter.ID)
	require.NoError(t, err)
	assert.Equal(t, base+2*day, got.NextHearingDate)

	// A later hearing never raises it
	_, err = svc.AddHearing(ctx, AddHearingInput{MatterID: matter.ID, Date: base + 30*day})
	require.NoError(t, err)
	got, err = env.matters.Get(ctx, matter.ID)
	require.NoError(t, err)
	assert.Equal(t, base+2*day, got.NextHearingDate)
}

func TestAddHearingDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestEnv(t).matterService()

	hearing, err := svc.AddHearing(ctx, AddHearingInput{MatterID: "mt_missing"})
	require.NoError(t, err)
	assert.Equal(t, "Mentioning", hearing.Purpose)
	assert.NotZero(t, hearing.Date)
}

func TestUpdateLastAccessed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.matterService()

	matter, err := svc.CreateMatter(ctx, CreateMatterInput{Title: "Touched"})
	require.NoError(t, err)

	before := matter.LastAccessedAt
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, svc.UpdateLastAccessed(ctx, matter.ID))

	got, err := env.matters.Get(ctx, matter.ID)
	require.NoError(t, err)
	assert.Greater(t, got.LastAccessedAt, before)

	// An unknown matter is a no-op, not an error
	require.NoError(t, svc.UpdateLastAccessed(ctx, "mt_missing"))
}

func TestSeedFirmDataIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.matterService()

	require.NoError(t, svc.SeedFirmData(ctx))

	clients, err := env.clients.All(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	matters, err := env.matters.All(ctx)
	require.NoError(t, err)
	require.Len(t, matters, 2)

	hearings, err := env.hearings.All(ctx, "")
	require.NoError(t, err)
	require.Len(t, hearings, 2)

	// Matters picked up their hearing dates
	for _, m := range matters {
		assert.NotZero(t, m.NextHearingDate)
	}

	// A second run leaves everything untouched
	require.NoError(t, svc.SeedFirmData(ctx))
	clients, err = env.clients.All(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}
