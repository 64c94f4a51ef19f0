package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// The store writes through modernc.org/sqlite; verify the on-disk database is
// plain SQLite readable by the cgo driver as well, so external tooling can
// inspect .ft/flags.db directly.
func TestDatabaseReadableByCgoDriver(t *testing.T) {
	baseDir := t.TempDir()

	st, err := Initialize(baseDir)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := st.SetBool("feature.dark_mode", true); err != nil {
		t.Fatalf("SetBool failed: %v", err)
	}
	if err := st.SetBool("feature.beta_banner", false); err != nil {
		t.Fatalf("SetBool failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	raw, err := sql.Open("sqlite3", filepath.Join(baseDir, dbFile))
	if err != nil {
		t.Fatalf("open with cgo driver: %v", err)
	}
	defer raw.Close()

	rows := map[string]int{}
	result, err := raw.Query("SELECT key, value FROM flags")
	if err != nil {
		t.Fatalf("query flags: %v", err)
	}
	defer result.Close()
	for result.Next() {
		var key string
		var value int
		if err := result.Scan(&key, &value); err != nil {
			t.Fatalf("scan: %v", err)
		}
		rows[key] = value
	}
	if err := result.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	if rows["feature.dark_mode"] != 1 {
		t.Errorf("feature.dark_mode = %d, want 1", rows["feature.dark_mode"])
	}
	if value, ok := rows["feature.beta_banner"]; !ok || value != 0 {
		t.Errorf("feature.beta_banner = %d (present=%v), want stored 0", value, ok)
	}
}
