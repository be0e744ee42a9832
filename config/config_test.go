package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/replayinfo/games"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[catalog]
path = "index.db"

[scan]
workers = 8
format = "text"

[log]
verbosity = 2

[columns]
th165 = ["Weekday", "Player Name", "Score"]
`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Catalog.Path != "index.db" {
		t.Errorf("catalog path = %q, want index.db", c.Catalog.Path)
	}
	if c.CatalogPath() != filepath.Join(c.Dir, "index.db") {
		t.Errorf("CatalogPath = %q", c.CatalogPath())
	}
	if c.Scan.Workers != 8 || c.Scan.Format != "text" {
		t.Errorf("scan = %+v", c.Scan)
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("log verbosity = %d, want 2", c.Log.Verbosity)
	}

	cols, err := c.ColumnsFor(games.TH165)
	if err != nil {
		t.Fatalf("ColumnsFor failed: %v", err)
	}
	want := []games.Column{games.ColWeekday, games.ColName, games.ColScore}
	if len(cols) != len(want) {
		t.Fatalf("columns = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d = %v, want %v", i, cols[i], want[i])
		}
	}

	if cols, err := c.ColumnsFor(games.TH11); err != nil || cols != nil {
		t.Errorf("ColumnsFor(th11) = %v, %v; want nil, nil", cols, err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Scan.Workers != 4 {
		t.Errorf("workers = %d, want 4", c.Scan.Workers)
	}
	if c.Scan.Format != "values" {
		t.Errorf("format = %q, want values", c.Scan.Format)
	}
	if c.Catalog.Path != filepath.Join(".replayinfo", "catalog.db") {
		t.Errorf("catalog path = %q", c.Catalog.Path)
	}
}

func TestLoadConfigRejectsUnknownGame(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[columns]\nth99 = [\"Name\"]\n")
	if _, err := Load(dir); !errors.Is(err, games.ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
}

func TestLoadConfigRejectsUnknownColumn(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[columns]\nth11 = [\"Bogus\"]\n")
	if _, err := Load(dir); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[scan]\nworkers = 2\n")
	sub := filepath.Join(root, "replays", "th16")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(sub)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if c.Scan.Workers != 2 {
		t.Errorf("workers = %d, want 2", c.Scan.Workers)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	c, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil config, got %+v", c)
	}
}
