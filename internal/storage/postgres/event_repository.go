package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
)

// ErrEventNotFound is returned when no event matches the given id.
var ErrEventNotFound = errors.New("event not found")

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(e *event.Event) error {
	r.log.Debug("Creating event", "title", e.Title, "district", e.District)

	if err := e.Validate(); err != nil {
		return fmt.Errorf("event validation failed: %w", err)
	}

	for i := range e.Volunteers {
		e.Volunteers[i].Normalize()
	}

	if err := r.db.Create(e).Error; err != nil {
		r.log.Error("Failed to create event", "error", err, "title", e.Title)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("Event created", "id", e.ID, "district", e.District)
	return nil
}

func (r *PostgresEventRepository) GetByID(id string) (*event.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event id: %w", err)
	}

	var e event.Event
	if err := r.db.Preload("Volunteers").First(&e, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		r.log.Error("Failed to get event", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

func (r *PostgresEventRepository) GetAll() ([]event.Event, error) {
	var events []event.Event
	if err := r.db.Preload("Volunteers").Order("date asc").Find(&events).Error; err != nil {
		r.log.Error("Failed to list events", "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Update rewrites the event's scalar fields and replaces its whole
// volunteer set in one transaction. Participation records are owned
// child values: the previous set is deleted and the submitted one
// recreated with fresh identities.
func (r *PostgresEventRepository) Update(e *event.Event) error {
	r.log.Debug("Updating event", "id", e.ID)

	if err := e.Validate(); err != nil {
		return fmt.Errorf("event validation failed: %w", err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&event.Event{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
			"title":       e.Title,
			"date":        e.Date,
			"end_date":    e.EndDate,
			"type":        e.Type,
			"location":    e.Location,
			"district":    e.District,
			"status":      e.Status,
			"description": e.Description,
			"image_paths": e.ImagePaths,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		if err := tx.Where("event_id = ?", e.ID).Delete(&event.Volunteer{}).Error; err != nil {
			return fmt.Errorf("failed to remove previous volunteers: %w", err)
		}

		for i := range e.Volunteers {
			v := &e.Volunteers[i]
			v.ID = uuid.Nil
			v.EventID = e.ID
			v.Normalize()
			if err := tx.Create(v).Error; err != nil {
				return fmt.Errorf("failed to recreate volunteer: %w", err)
			}
		}

		return nil
	})
}

func (r *PostgresEventRepository) Delete(id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid event id: %w", err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&event.Volunteer{}).Error; err != nil {
			return fmt.Errorf("failed to delete volunteers: %w", err)
		}

		result := tx.Delete(&event.Event{}, "id = ?", eventID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		r.log.Info("Event deleted", "id", id)
		return nil
	})
}

// Volunteers lists participation records ordered by name, restricted
// to events of the given district when district is non-empty.
func (r *PostgresEventRepository) Volunteers(district string) ([]event.Volunteer, error) {
	var volunteers []event.Volunteer

	query := r.db.Order("name asc")
	if district != "" {
		query = query.
			Joins("JOIN events ON events.id = volunteers.event_id").
			Where("events.district = ?", district)
	}

	if err := query.Find(&volunteers).Error; err != nil {
		r.log.Error("Failed to list volunteers", "district", district, "error", err)
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	return volunteers, nil
}
