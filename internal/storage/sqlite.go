package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps each collection as a single JSON document in a
// key-value table, so a load-modify-save cycle is one row read and one
// row write.
type SQLiteStore struct {
	conn *sql.DB
}

// Initialize creates a new database with the collections schema
func Initialize(dbPath string) error {
	// Check if database already exists
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists at %s", dbPath)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	// Create database file
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TRIGGER IF NOT EXISTS update_collection_timestamp
AFTER UPDATE ON collections
BEGIN
    UPDATE collections SET updated_at = CURRENT_TIMESTAMP WHERE name = NEW.name;
END;`

// OpenSQLite opens an existing collections database
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	// Check if DB exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'kontak -init' to create it", dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{conn: conn}

	// Run any pending migrations
	if err := s.runMigrations(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Load decodes the collection stored under key into v. Missing rows and
// undecodable payloads degrade to an empty collection.
func (s *SQLiteStore) Load(key string, v interface{}) {
	var data string
	err := s.conn.QueryRow(`SELECT data FROM collections WHERE name = ?`, key).Scan(&data)
	if err != nil {
		return
	}

	// Malformed payloads are treated as empty, not surfaced
	_ = json.Unmarshal([]byte(data), v)
}

// Save encodes v and stores it under key
func (s *SQLiteStore) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = s.conn.Exec(
		`INSERT INTO collections (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}

// Remove deletes the collection stored under key
func (s *SQLiteStore) Remove(key string) error {
	if _, err := s.conn.Exec(`DELETE FROM collections WHERE name = ?`, key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Register the sqlite backend
func init() {
	Register("sqlite", func(path string) (Store, error) {
		return OpenSQLite(path)
	})
}
