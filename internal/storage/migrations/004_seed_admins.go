package migrations

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/district"
)

const seedPassword = "password123"

// migration004Up creates the super admin plus one admin per district.
// Passwords are bcrypt-hashed; change them after first login.
func migration004Up(db *gorm.DB) error {
	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM admin_users").Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := db.Exec(
		`INSERT INTO admin_users (username, password_hash, role, district) VALUES (?, ?, 'SUPER_ADMIN', NULL)`,
		"admin", string(hash),
	).Error; err != nil {
		return err
	}

	for _, d := range district.All {
		username := "admin_" + strings.ReplaceAll(strings.ToLower(d), " ", "")
		if err := db.Exec(
			`INSERT INTO admin_users (username, password_hash, role, district) VALUES (?, ?, 'DISTRICT_ADMIN', ?)`,
			username, string(hash), d,
		).Error; err != nil {
			return err
		}
	}

	return nil
}

func migration004Down(db *gorm.DB) error {
	return db.Exec(`DELETE FROM admin_users`).Error
}
