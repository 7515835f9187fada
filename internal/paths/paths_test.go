package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPathsShareAppDir(t *testing.T) {
	dir, err := AppDir()
	if err != nil {
		t.Fatalf("AppDir() error: %v", err)
	}
	if filepath.Base(dir) != "volcano" {
		t.Errorf("AppDir() = %s, want a volcano directory", dir)
	}

	cfg, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}
	if !strings.HasPrefix(cfg, dir) || filepath.Base(cfg) != "config.toml" {
		t.Errorf("ConfigPath() = %s, want config.toml under %s", cfg, dir)
	}

	db, err := DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error: %v", err)
	}
	if filepath.Base(db) != "catalog.db" {
		t.Errorf("DatabasePath() = %s, want catalog.db", db)
	}

	log, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() error: %v", err)
	}
	if !strings.HasSuffix(log, filepath.Join("logs", "volcano.log")) {
		t.Errorf("LogPath() = %s, want logs/volcano.log suffix", log)
	}
}
