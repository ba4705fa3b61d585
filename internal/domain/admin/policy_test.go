package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate_SuperAdminAllowsEverything(t *testing.T) {
	p := &Principal{Username: "admin", Role: RoleSuperAdmin}

	assert.True(t, CanMutate(p, "Colombo", "Colombo"))
	assert.True(t, CanMutate(p, "Colombo", "Kandy"))
	assert.True(t, CanMutate(p, "", ""))
}

func TestCanMutate_DistrictAdminOwnDistrict(t *testing.T) {
	p := &Principal{Username: "admin_kandy", Role: RoleDistrictAdmin, District: "Kandy"}

	assert.True(t, CanMutate(p, "Kandy", "Kandy"))
}

func TestCanMutate_DistrictAdminForeignDistrict(t *testing.T) {
	p := &Principal{Username: "admin_kandy", Role: RoleDistrictAdmin, District: "Kandy"}

	assert.False(t, CanMutate(p, "Colombo", "Colombo"))
}

func TestCanMutate_DistrictAdminCannotRetarget(t *testing.T) {
	p := &Principal{Username: "admin_kandy", Role: RoleDistrictAdmin, District: "Kandy"}

	// Moving an owned event away, or a foreign event in, is denied.
	assert.False(t, CanMutate(p, "Kandy", "Colombo"))
	assert.False(t, CanMutate(p, "Colombo", "Kandy"))
}

func TestCanMutate_Total(t *testing.T) {
	cases := []struct {
		name string
		p    *Principal
	}{
		{"nil principal", nil},
		{"empty principal", &Principal{}},
		{"unknown role", &Principal{Role: "AUDITOR"}},
		{"district admin without district", &Principal{Role: RoleDistrictAdmin}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, CanMutate(tc.p, "Galle", "Galle"))
			})
		})
	}
}

func TestUserValidate(t *testing.T) {
	kandy := "Kandy"
	nowhere := "Atlantis"

	assert.NoError(t, (&User{Username: "admin", Role: RoleSuperAdmin}).Validate())
	assert.NoError(t, (&User{Username: "admin_kandy", Role: RoleDistrictAdmin, District: &kandy}).Validate())

	assert.Error(t, (&User{Role: RoleSuperAdmin}).Validate(), "username required")
	assert.Error(t, (&User{Username: "x", Role: RoleSuperAdmin, District: &kandy}).Validate(), "super admin carries no district")
	assert.Error(t, (&User{Username: "x", Role: RoleDistrictAdmin}).Validate(), "district admin needs a district")
	assert.Error(t, (&User{Username: "x", Role: RoleDistrictAdmin, District: &nowhere}).Validate(), "district must be in the catalog")
	assert.Error(t, (&User{Username: "x", Role: "AUDITOR"}).Validate(), "unknown role")
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := &User{Username: "admin", Role: RoleSuperAdmin}

	assert.NoError(t, u.SetPassword("secret123"))
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUserPrincipal(t *testing.T) {
	kandy := "Kandy"

	p := (&User{Username: "admin_kandy", Role: RoleDistrictAdmin, District: &kandy}).Principal()
	assert.Equal(t, "admin_kandy", p.Username)
	assert.Equal(t, RoleDistrictAdmin, p.Role)
	assert.Equal(t, "Kandy", p.District)
	assert.False(t, p.IsSuper())

	super := (&User{Username: "admin", Role: RoleSuperAdmin}).Principal()
	assert.True(t, super.IsSuper())
	assert.Empty(t, super.District)
}
