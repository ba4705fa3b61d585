package postgres

import (
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// EventRepository defines the persistence operations on seminar
// events. Update and Delete carry replace-all semantics for the owned
// volunteer records.
type EventRepository interface {
	Create(e *event.Event) error
	GetByID(id string) (*event.Event, error)
	GetAll() ([]event.Event, error)
	Update(e *event.Event) error
	Delete(id string) error
	Volunteers(district string) ([]event.Volunteer, error)
}

// UserRepository defines the persistence operations on administrator
// accounts.
type UserRepository interface {
	Create(u *admin.User) error
	GetByUsername(username string) (*admin.User, error)
	GetAll() ([]admin.User, error)
	UpdatePassword(username, passwordHash string) error
	Count() (int64, error)
}
