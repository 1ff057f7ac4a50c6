package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrationsOrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "010_records.sql", "CREATE TABLE b (id int);")
	writeFile(t, dir, "001_core.sql", "CREATE TABLE a (id int);")
	writeFile(t, dir, "002_drugs.sql", "CREATE TABLE c (id int);")

	m := NewMigrator(nil, dir)
	migs, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("got %d migrations, want 3", len(migs))
	}
	want := []int{1, 2, 10}
	for i, mig := range migs {
		if mig.Version != want[i] {
			t.Errorf("migs[%d].Version = %d, want %d", i, mig.Version, want[i])
		}
	}
}

func TestLoadMigrationsSkipsNonNumeric(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001_core.sql", "CREATE TABLE a (id int);")
	writeFile(t, dir, "notes.sql", "-- not a migration")
	writeFile(t, dir, "README.md", "docs")

	m := NewMigrator(nil, dir)
	migs, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migs) != 1 {
		t.Fatalf("got %d migrations, want 1", len(migs))
	}
	if migs[0].Name != "001_core.sql" {
		t.Errorf("Name = %q, want 001_core.sql", migs[0].Name)
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "nope"))
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
