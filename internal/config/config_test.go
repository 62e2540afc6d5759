package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	be.Err(t, err, nil)

	be.Equal(t, cfg.Storage.Backend, "sqlite")
	be.Equal(t, cfg.Trash.RetentionDays, 30)
	be.Equal(t, cfg.Trash.Retention(), 30*24*time.Hour)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Storage.Backend = "file"
	cfg.Storage.Path = "/tmp/kontak"
	cfg.Trash.RetentionDays = 7
	cfg.API.BaseURL = "https://api.example.com"
	be.Err(t, cfg.SaveTo(path), nil)

	loaded, err := LoadFrom(path)
	be.Err(t, err, nil)
	be.Equal(t, loaded.Storage.Backend, "file")
	be.Equal(t, loaded.Storage.Path, "/tmp/kontak")
	be.Equal(t, loaded.Trash.RetentionDays, 7)
	be.Equal(t, loaded.API.BaseURL, "https://api.example.com")
}
