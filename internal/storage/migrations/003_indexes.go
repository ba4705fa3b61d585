package migrations

import "gorm.io/gorm"

func migration003Up(db *gorm.DB) error {
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_events_district ON events(district)`,
		`CREATE INDEX IF NOT EXISTS idx_events_status ON events(status)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
		`CREATE INDEX IF NOT EXISTS idx_volunteers_event_id ON volunteers(event_id)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func migration003Down(db *gorm.DB) error {
	for _, stmt := range []string{
		`DROP INDEX IF EXISTS idx_events_district`,
		`DROP INDEX IF EXISTS idx_events_status`,
		`DROP INDEX IF EXISTS idx_events_date`,
		`DROP INDEX IF EXISTS idx_volunteers_event_id`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
