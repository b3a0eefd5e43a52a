package cmd

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rnwolfe/deckstats/internal/config"
)

// writeCollection creates an empty collection with one card.
func writeCollection(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer conn.Close()

	for _, s := range []string{
		`CREATE TABLE col (id INTEGER PRIMARY KEY, crt INTEGER NOT NULL)`,
		`CREATE TABLE cards (id INTEGER PRIMARY KEY, type INTEGER NOT NULL, queue INTEGER NOT NULL,
			due INTEGER NOT NULL, ivl INTEGER NOT NULL, factor INTEGER NOT NULL)`,
		`CREATE TABLE revlog (id INTEGER PRIMARY KEY, cid INTEGER NOT NULL, ease INTEGER NOT NULL,
			ivl INTEGER NOT NULL DEFAULT 0, lastIvl INTEGER NOT NULL, factor INTEGER NOT NULL DEFAULT 0,
			time INTEGER NOT NULL, type INTEGER NOT NULL)`,
		`INSERT INTO col (id, crt) VALUES (1, 1704067200)`,
		`INSERT INTO cards VALUES (1, 2, 2, 70, 30, 2500)`,
	} {
		if _, err := conn.Exec(s); err != nil {
			t.Fatalf("fixture SQL failed: %v\nSQL: %s", err, s)
		}
	}
	return path
}

func TestLoadDataset_Collection(t *testing.T) {
	configTestEnv(t)
	flagCollection = writeCollection(t, "collection.anki2")
	t.Cleanup(func() { flagCollection = "" })

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	data, err := loadDataset(cfg, now())
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if data.Source != flagCollection {
		t.Errorf("Source = %q, want %q", data.Source, flagCollection)
	}
	if len(data.Activity) == 0 {
		t.Error("expected a filled activity range")
	}
}

func TestLoadDataset_NotACollection(t *testing.T) {
	configTestEnv(t)
	path := filepath.Join(t.TempDir(), "notes.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`CREATE TABLE notes (id INTEGER)`); err != nil {
		t.Fatal(err)
	}
	conn.Close()
	flagCollection = path
	t.Cleanup(func() { flagCollection = "" })

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loadDataset(cfg, now()); err == nil || !strings.Contains(err.Error(), "flashcard collection") {
		t.Fatalf("expected schema error, got %v", err)
	}
}
