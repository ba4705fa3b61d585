package migrations

import "gorm.io/gorm"

func migration001Up(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.Exec(`
        DO $$ BEGIN
            CREATE TYPE event_status AS ENUM ('UPCOMING', 'COMPLETED', 'CANCELLED');
        EXCEPTION
            WHEN duplicate_object THEN null;
        END $$
    `).Error
}

func migration001Down(db *gorm.DB) error {
	return db.Exec(`DROP TYPE IF EXISTS event_status`).Error
}
