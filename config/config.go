// Package config handles replayinfo.toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/replayinfo/games"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "replayinfo.toml"

// Config represents a replayinfo.toml file.
type Config struct {
	Catalog Catalog `toml:"catalog"`
	Scan    Scan    `toml:"scan"`
	Log     Log     `toml:"log"`

	// Columns selects the visible columns per game, by display name.
	Columns map[string][]string `toml:"columns"`

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
}

// Catalog configures the metadata index.
type Catalog struct {
	Path string `toml:"path"`
}

// Scan configures bulk indexing.
type Scan struct {
	Workers int    `toml:"workers"`
	Format  string `toml:"format"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join(".replayinfo", "catalog.db")
	}
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = 4
	}
	if c.Scan.Format == "" {
		c.Scan.Format = "values"
	}
}

// Load parses replayinfo.toml from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	c.applyDefaults()

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find replayinfo.toml and loads it.
// Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// CatalogPath returns the catalog path, resolved against the config directory.
func (c *Config) CatalogPath() string {
	if filepath.IsAbs(c.Catalog.Path) || c.Dir == "" {
		return c.Catalog.Path
	}
	return filepath.Join(c.Dir, c.Catalog.Path)
}

// ColumnsFor returns the configured columns of a game, or nil to keep the
// game's defaults.
func (c *Config) ColumnsFor(id games.ID) ([]games.Column, error) {
	names, ok := c.Columns[string(id)]
	if !ok {
		return nil, nil
	}
	cols := make([]games.Column, 0, len(names))
	for _, name := range names {
		col, ok := games.ParseColumn(name)
		if !ok {
			return nil, fmt.Errorf("columns.%s: unknown column %q", id, name)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func (c *Config) validate() error {
	for id := range c.Columns {
		if _, err := games.Lookup(games.ID(id)); err != nil {
			return fmt.Errorf("columns: %w", err)
		}
		if _, err := c.ColumnsFor(games.ID(id)); err != nil {
			return err
		}
	}
	return nil
}
