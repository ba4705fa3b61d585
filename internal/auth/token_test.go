package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	issued, err := m.Issue(&admin.Principal{
		Username: "admin_galle",
		Role:     admin.RoleDistrictAdmin,
		District: "Galle",
	})
	require.NoError(t, err)
	require.NotEmpty(t, issued)

	p, err := m.Parse(issued)
	require.NoError(t, err)
	assert.Equal(t, "admin_galle", p.Username)
	assert.Equal(t, admin.RoleDistrictAdmin, p.Role)
	assert.Equal(t, "Galle", p.District)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	issued, err := issuer.Issue(&admin.Principal{Username: "admin", Role: admin.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(issued)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	issued, err := m.Issue(&admin.Principal{Username: "admin", Role: admin.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = m.Parse(issued)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
