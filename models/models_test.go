package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID("mt")
	assert.True(t, strings.HasPrefix(id, "mt_"))
	assert.Len(t, id, len("mt_")+9)

	assert.NotEqual(t, NewID("mt"), NewID("mt"))
}

func TestRoleProfileFallback(t *testing.T) {
	known := RoleStudent.Profile()
	assert.Equal(t, TierBasic, known.SignupPlan)
	assert.Equal(t, 50, known.SignupCredits)

	// Unknown roles fall back to the senior advocate profile
	unknown := UserRole("Paralegal").Profile()
	assert.Equal(t, RoleSeniorAdvocate.Profile().SystemInstruction, unknown.SystemInstruction)

	assert.False(t, UserRole("Paralegal").Valid())
	for _, r := range AllRoles {
		assert.True(t, r.Valid())
	}
}

func TestDraftUnlinked(t *testing.T) {
	assert.True(t, (&Draft{}).Unlinked())
	assert.True(t, (&Draft{MatterID: UnlinkedMatterID}).Unlinked())
	assert.False(t, (&Draft{MatterID: "mt_1"}).Unlinked())

	assert.True(t, (&LegalDocument{}).Unlinked())
	assert.False(t, (&LegalDocument{MatterID: "mt_1"}).Unlinked())
}

func TestUserPublicStripsHash(t *testing.T) {
	u := User{ID: "usr_1", PasswordHash: "secret"}
	assert.Empty(t, u.Public().PasswordHash)
	assert.Equal(t, "secret", u.PasswordHash)
}
