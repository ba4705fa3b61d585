// Package admin holds administrator accounts, the request-scoped
// principal derived from the session claim, and the access policy
// gating event mutations.
package admin

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/district"
)

// Administrator roles.
const (
	RoleSuperAdmin    = "SUPER_ADMIN"
	RoleDistrictAdmin = "DISTRICT_ADMIN"
)

// User is an administrator account. District is set iff the role is
// DISTRICT_ADMIN.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'DISTRICT_ADMIN'"`
	District     *string   `json:"district,omitempty"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "admin_users"
}

// BeforeCreate sets a UUID before creating the record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Validate checks if the account data is consistent
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	switch u.Role {
	case RoleSuperAdmin:
		if u.District != nil {
			return fmt.Errorf("super admin must not carry a district")
		}
	case RoleDistrictAdmin:
		if u.District == nil {
			return fmt.Errorf("district admin requires a district")
		}
		if !district.Valid(*u.District) {
			return fmt.Errorf("unknown district: %s", *u.District)
		}
	default:
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	return nil
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Principal returns the authorization view of this account.
func (u *User) Principal() *Principal {
	p := &Principal{Username: u.Username, Role: u.Role}
	if u.District != nil {
		p.District = *u.District
	}
	return p
}
