package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// requiredTables must exist for a file to be read as a flashcard collection.
var requiredTables = []string{"col", "cards", "revlog"}

// DB wraps a read-only connection to a flashcard collection.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the collection at path without ever writing to it.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("no collection path configured")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening collection: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening collection: %s is a directory", path)
	}

	conn, err := sql.Open("sqlite", readOnlyURI(path))
	if err != nil {
		return nil, fmt.Errorf("opening collection: %w", err)
	}
	// Pragmas are per connection; keep a single one so they always apply.
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only=ON",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn, path: path}
	if err := db.checkSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// uriPathEscaper escapes the characters SQLite's URI parser would read
// as a query, a fragment or an escape inside the file name.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// readOnlyURI builds a read-only SQLite URI for path.
func readOnlyURI(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?mode=ro"
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Path returns the collection file path.
func (db *DB) Path() string {
	return db.path
}

// checkSchema verifies the collection tables are present.
func (db *DB) checkSchema() error {
	for _, table := range requiredTables {
		var name string
		err := db.conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%s does not look like a flashcard collection (missing %q table)", db.path, table)
		}
		if err != nil {
			return fmt.Errorf("checking schema: %w", err)
		}
	}
	return nil
}
