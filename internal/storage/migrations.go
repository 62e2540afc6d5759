package storage

import (
	"fmt"
	"log"
)

// runMigrations applies any pending schema migrations
func (s *SQLiteStore) runMigrations() error {
	return s.runTimestampMigration()
}

// Early databases stored collections without an updated_at column.
func (s *SQLiteStore) runTimestampMigration() error {
	var count int
	err := s.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('collections')
		WHERE name = 'updated_at'
	`).Scan(&count)

	if err != nil {
		return fmt.Errorf("checking for updated_at column: %w", err)
	}

	if count == 0 {
		log.Println("Running migration: Adding collection timestamp column...")

		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("starting transaction: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`ALTER TABLE collections ADD COLUMN updated_at DATETIME`)
		if err != nil && err.Error() != "duplicate column name: updated_at" {
			return fmt.Errorf("adding updated_at column: %w", err)
		}

		_, err = tx.Exec(`
			CREATE TRIGGER IF NOT EXISTS update_collection_timestamp
			AFTER UPDATE ON collections
			BEGIN
			    UPDATE collections SET updated_at = CURRENT_TIMESTAMP WHERE name = NEW.name;
			END`)
		if err != nil {
			return fmt.Errorf("adding timestamp trigger: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration: %w", err)
		}

		log.Println("Migration completed successfully")
	}

	return nil
}
