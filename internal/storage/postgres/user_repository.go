package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
)

// ErrUserNotFound is returned when no account matches the given username.
var ErrUserNotFound = errors.New("user not found")

// PostgresUserRepository implements UserRepository using GORM
type PostgresUserRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: logger.Repository("user"),
	}
}

func (r *PostgresUserRepository) Create(u *admin.User) error {
	r.log.Debug("Creating admin user", "username", u.Username, "role", u.Role)

	if err := u.Validate(); err != nil {
		return fmt.Errorf("user validation failed: %w", err)
	}

	var existing admin.User
	if err := r.db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
		return fmt.Errorf("user %s already exists", u.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if err := r.db.Create(u).Error; err != nil {
		r.log.Error("Failed to create user", "error", err, "username", u.Username)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("Admin user created", "id", u.ID, "username", u.Username)
	return nil
}

func (r *PostgresUserRepository) GetByUsername(username string) (*admin.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	var u admin.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		r.log.Error("Failed to get user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *PostgresUserRepository) GetAll() ([]admin.User, error) {
	var users []admin.User
	if err := r.db.Order("username asc").Find(&users).Error; err != nil {
		r.log.Error("Failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *PostgresUserRepository) UpdatePassword(username, passwordHash string) error {
	result := r.db.Model(&admin.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		r.log.Error("Failed to update password", "username", username, "error", result.Error)
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	r.log.Info("Password updated", "username", username)
	return nil
}

func (r *PostgresUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&admin.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
