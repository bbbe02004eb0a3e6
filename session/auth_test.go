package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *Resolver, *repository.FirmRepository, *repository.AuditRepository) {
	t.Helper()
	kv := store.NewMemory()
	users := repository.NewUserRepository(kv)
	firms := repository.NewFirmRepository(kv)
	audit := repository.NewAuditRepository(kv)
	resolver := NewResolver(kv)
	auth := NewAuthService(users, firms, audit, resolver, zap.NewNop())
	return auth, resolver, firms, audit
}

func TestSignupCreatesFirmUserAndSession(t *testing.T) {
	ctx := context.Background()
	auth, resolver, firms, audit := newAuthFixture(t)

	user, err := auth.Signup(ctx, "adv@example.com", "password123", "Adv Name", "Chambers", models.RoleSeniorAdvocate)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.FirmID)
	assert.Equal(t, models.TierPro, user.Tier)
	assert.Equal(t, 500, user.Usage.MaxResearchCredits)
	assert.NotEqual(t, "password123", user.PasswordHash)

	firm, err := firms.Get(ctx, user.FirmID)
	require.NoError(t, err)
	require.NotNil(t, firm)
	assert.Equal(t, user.ID, firm.OwnerID)
	assert.Equal(t, 500, firm.Credits)

	// Signup starts a session
	current := resolver.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	logs, err := audit.List(ctx, user.FirmID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "USER_SIGNUP", logs[0].Action)
}

func TestSignupStudentGetsBasicPlan(t *testing.T) {
	ctx := context.Background()
	auth, _, firms, _ := newAuthFixture(t)

	user, err := auth.Signup(ctx, "student@example.com", "password123", "Student", "Law School", models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, models.TierBasic, user.Tier)
	assert.Equal(t, 50, user.Usage.MaxResearchCredits)

	firm, err := firms.Get(ctx, user.FirmID)
	require.NoError(t, err)
	assert.Equal(t, 50, firm.Credits)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Signup(ctx, "adv@example.com", "password123", "First", "Chambers", models.RoleSeniorAdvocate)
	require.NoError(t, err)

	_, err = auth.Signup(ctx, "ADV@example.com", "password123", "Second", "Other", models.RoleSeniorAdvocate)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Signup(ctx, "x@example.com", "password123", "X", "Y", "Paralegal")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth, resolver, _, _ := newAuthFixture(t)

	signedUp, err := auth.Signup(ctx, "adv@example.com", "password123", "Adv", "Chambers", models.RoleJuniorAdvocate)
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))
	require.Nil(t, resolver.Current(ctx))

	_, err = auth.Login(ctx, "adv@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := auth.Login(ctx, "adv@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, user.ID)
	assert.NotZero(t, user.LastLogin)

	current := resolver.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, signedUp.ID, current.ID)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	auth, resolver, _, _ := newAuthFixture(t)

	_, err := auth.Signup(ctx, "adv@example.com", "password123", "Old Name", "Chambers", models.RoleSeniorAdvocate)
	require.NoError(t, err)

	name := "New Name"
	city := "Mumbai"
	done := true
	updated, err := auth.UpdateProfile(ctx, ProfileUpdate{Name: &name, City: &city, IsSetupComplete: &done})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Mumbai", updated.City)
	assert.True(t, updated.IsSetupComplete)

	// The session copy follows the table row
	current := resolver.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "New Name", current.Name)
	assert.Equal(t, "Mumbai", current.City)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	ctx := context.Background()
	auth, _, _, _ := newAuthFixture(t)

	name := "Anyone"
	_, err := auth.UpdateProfile(ctx, ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNoSession)
}
