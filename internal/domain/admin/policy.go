package admin

// Principal is the authenticated caller's claim, parsed once at the
// request boundary and passed explicitly from there on. A nil
// Principal means no (or an unparseable) claim.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	District string `json:"district,omitempty"`
}

// IsSuper reports whether the principal is a global administrator.
func (p *Principal) IsSuper() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// CanMutate is the sole authorization gate for event writes. It is
// total: every (principal, district pair) input yields a definite
// answer and it never panics.
//
// For creates, pass the target district twice. For edits, pass the
// event's stored district and the submitted one; a district admin may
// neither touch an event outside their district nor retarget one into
// or out of it. Deletes pass the stored district twice.
func CanMutate(p *Principal, currentDistrict, targetDistrict string) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleDistrictAdmin:
		return p.District != "" &&
			currentDistrict == p.District &&
			targetDistrict == p.District
	default:
		return false
	}
}
