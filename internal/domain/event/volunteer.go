package event

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Volunteer roles. Role is free text; these are the values the forms
// offer.
const (
	RoleMember      = "Member"
	RoleCoordinator = "Coordinator"
	RoleLecturer    = "Lecturer"
)

// Volunteer is a participation record owned by exactly one event.
// Editing an event replaces its whole volunteer set, so records are
// created fresh with a new identity on every edit and never shared
// between events.
type Volunteer struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EventID  uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"not null"`
	Role     string    `json:"role" gorm:"not null;default:'Member'"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	PhotoURL string    `json:"photoUrl,omitempty"`
}

// TableName overrides the table name used by GORM
func (Volunteer) TableName() string {
	return "volunteers"
}

// BeforeCreate sets a UUID before creating the record
func (v *Volunteer) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Normalize fills in the default role for blank submissions.
func (v *Volunteer) Normalize() {
	if v.Role == "" {
		v.Role = RoleMember
	}
}

// Validate checks if the participation record is valid
func (v *Volunteer) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
