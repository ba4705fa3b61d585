package migrations

import "gorm.io/gorm"

func migration002Up(db *gorm.DB) error {
	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS events (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            title TEXT NOT NULL,
            date TIMESTAMP WITH TIME ZONE NOT NULL,
            end_date TIMESTAMP WITH TIME ZONE,
            type TEXT NOT NULL DEFAULT 'Paper',
            location TEXT NOT NULL,
            district TEXT NOT NULL,
            status event_status NOT NULL DEFAULT 'UPCOMING',
            description TEXT,
            image_paths TEXT[] NOT NULL DEFAULT '{}',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS volunteers (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'Member',
            phone TEXT,
            email TEXT,
            bio TEXT,
            photo_url TEXT
        )
    `).Error; err != nil {
		return err
	}

	return db.Exec(`
        CREATE TABLE IF NOT EXISTS admin_users (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            username TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'DISTRICT_ADMIN',
            district TEXT
        )
    `).Error
}

func migration002Down(db *gorm.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS volunteers`,
		`DROP TABLE IF EXISTS events`,
		`DROP TABLE IF EXISTS admin_users`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
