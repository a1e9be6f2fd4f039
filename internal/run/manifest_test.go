package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestSave(t *testing.T) {
	dir := t.TempDir()
	m := New("profile", "data/raw/munra_2.txt")
	m.Outputs = []string{"data/processed/munra_clean.csv"}
	m.Rows = 42
	m.Columns = 10
	m.Warnings = []string{"skipped 1 malformed input lines"}

	path, err := m.Save(filepath.Join(dir, "processed"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if got.ID == "" || got.ID != m.ID {
		t.Fatalf("id mismatch: %q vs %q", got.ID, m.ID)
	}
	if got.Command != "profile" || got.Rows != 42 {
		t.Fatalf("manifest = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}
