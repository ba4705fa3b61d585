package postgres

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// InMemoryEventRepository is a map-backed EventRepository used by
// handler tests.
type InMemoryEventRepository struct {
	events map[string]*event.Event
}

func NewInMemoryEventRepository() *InMemoryEventRepository {
	return &InMemoryEventRepository{
		events: make(map[string]*event.Event),
	}
}

func (r *InMemoryEventRepository) Create(e *event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	for i := range e.Volunteers {
		if e.Volunteers[i].ID == uuid.Nil {
			e.Volunteers[i].ID = uuid.New()
		}
		e.Volunteers[i].EventID = e.ID
		e.Volunteers[i].Normalize()
	}
	stored := *e
	r.events[e.ID.String()] = &stored
	return nil
}

func (r *InMemoryEventRepository) GetByID(id string) (*event.Event, error) {
	e, exists := r.events[id]
	if !exists {
		return nil, ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *InMemoryEventRepository) GetAll() ([]event.Event, error) {
	events := make([]event.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func (r *InMemoryEventRepository) Update(e *event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, exists := r.events[e.ID.String()]; !exists {
		return ErrEventNotFound
	}
	for i := range e.Volunteers {
		e.Volunteers[i].ID = uuid.New()
		e.Volunteers[i].EventID = e.ID
		e.Volunteers[i].Normalize()
	}
	stored := *e
	r.events[e.ID.String()] = &stored
	return nil
}

func (r *InMemoryEventRepository) Delete(id string) error {
	if _, exists := r.events[id]; !exists {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *InMemoryEventRepository) Volunteers(district string) ([]event.Volunteer, error) {
	var volunteers []event.Volunteer
	for _, e := range r.events {
		if district != "" && e.District != district {
			continue
		}
		volunteers = append(volunteers, e.Volunteers...)
	}
	sort.Slice(volunteers, func(i, j int) bool {
		return strings.Compare(volunteers[i].Name, volunteers[j].Name) < 0
	})
	return volunteers, nil
}

// InMemoryUserRepository is a map-backed UserRepository used by
// handler tests.
type InMemoryUserRepository struct {
	users map[string]*admin.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*admin.User),
	}
}

func (r *InMemoryUserRepository) Create(u *admin.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stored := *u
	r.users[u.Username] = &stored
	return nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (*admin.User, error) {
	u, exists := r.users[username]
	if !exists {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *InMemoryUserRepository) GetAll() ([]admin.User, error) {
	users := make([]admin.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (r *InMemoryUserRepository) UpdatePassword(username, passwordHash string) error {
	u, exists := r.users[username]
	if !exists {
		return ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *InMemoryUserRepository) Count() (int64, error) {
	return int64(len(r.users)), nil
}
