package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/district"
)

// Seminar types. Anything else is tolerated by the reporting core and
// lands in its Other bucket.
const (
	TypePaper    = "Paper"
	TypeRemedial = "Remedial"
)

// Event represents one seminar record with its owned volunteer
// participations.
type Event struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Date        time.Time      `json:"date" gorm:"not null"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Type        string         `json:"type" gorm:"not null;default:'Paper'"`
	Location    string         `json:"location" gorm:"not null"`
	District    string         `json:"district" gorm:"not null"`
	Status      Status         `json:"status" gorm:"type:event_status;not null;default:'UPCOMING'"`
	Description string         `json:"description,omitempty"`
	ImagePaths  pq.StringArray `json:"imagePaths" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	Volunteers  []Volunteer    `json:"volunteers" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// DurationDays returns the inclusive day span of the event, counted
// in civil calendar dates so mixed time zone offsets on the two ends
// cannot skew the span. An event without an end date lasts one day.
// An end date before the start yields a non-positive result; the
// reporting core classifies those into its Other duration bucket
// rather than rejecting them.
func (e *Event) DurationDays() int {
	if e.EndDate == nil {
		return 1
	}
	start := truncateToDay(e.Date)
	end := truncateToDay(*e.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Location == "" {
		return fmt.Errorf("location is required")
	}
	if !district.Valid(e.District) {
		return fmt.Errorf("unknown district: %s", e.District)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("invalid status: %s", e.Status)
	}
	if e.EndDate != nil && e.EndDate.Before(e.Date) {
		return fmt.Errorf("end date must be on or after start date")
	}
	for i := range e.Volunteers {
		if err := e.Volunteers[i].Validate(); err != nil {
			return fmt.Errorf("volunteer %d: %w", i, err)
		}
	}
	return nil
}

// truncateToDay reduces t to its civil calendar date, anchored in UTC
// so dates in different locations difference cleanly.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
