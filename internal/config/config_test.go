package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exifio/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCatalog := filepath.Join(tempHome, ".local", "share", "exifio")
	if cfg.Paths.CatalogDir != wantCatalog {
		t.Fatalf("unexpected catalog dir: got %q want %q", cfg.Paths.CatalogDir, wantCatalog)
	}
	if cfg.Paths.LogDir != filepath.Join(wantCatalog, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected worker count: %d", cfg.Scan.Workers)
	}
	if cfg.Scan.FollowSymlinks {
		t.Fatal("expected symlink following disabled by default")
	}
	if cfg.Write.ByteOrder != "preserve" {
		t.Fatalf("unexpected byte order: %q", cfg.Write.ByteOrder)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.CatalogPath() != filepath.Join(wantCatalog, "catalog.db") {
		t.Fatalf("unexpected catalog path: %q", cfg.CatalogPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.CatalogDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "exifio.toml")

	body := strings.Join([]string{
		"[paths]",
		`catalog_dir = "` + filepath.Join(tempDir, "catalog") + `"`,
		"",
		"[scan]",
		"workers = 8",
		`extensions = [".JPG", "Png", ""]`,
		"",
		"[write]",
		`byte_order = "Big"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("resolved = %q", resolved)
	}
	if cfg.Paths.CatalogDir != filepath.Join(tempDir, "catalog") {
		t.Fatalf("catalog dir = %q", cfg.Paths.CatalogDir)
	}
	if cfg.Scan.Workers != 8 {
		t.Fatalf("workers = %d", cfg.Scan.Workers)
	}
	want := []string{"jpg", "png"}
	if len(cfg.Scan.Extensions) != len(want) {
		t.Fatalf("extensions = %v", cfg.Scan.Extensions)
	}
	for i, ext := range want {
		if cfg.Scan.Extensions[i] != ext {
			t.Fatalf("extensions = %v", cfg.Scan.Extensions)
		}
	}
	if cfg.Write.ByteOrder != "big" {
		t.Fatalf("byte order = %q", cfg.Write.ByteOrder)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if resolved != path {
		t.Fatalf("resolved = %q", resolved)
	}
	if cfg.Scan.Workers != config.Default().Scan.Workers {
		t.Fatalf("workers = %d", cfg.Scan.Workers)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero workers", func(c *config.Config) { c.Scan.Workers = -1 }, "scan.workers"},
		{"no extensions", func(c *config.Config) { c.Scan.Extensions = nil }, "scan.extensions"},
		{"bad byte order", func(c *config.Config) { c.Write.ByteOrder = "middle" }, "write.byte_order"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range cases {
		cfg := config.Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %s", tc.name, err, tc.want)
		}
	}
}

func TestScansExtension(t *testing.T) {
	cfg := config.Default()
	for _, ext := range []string{".jpg", "JPEG", ".WEBP", "png"} {
		if !cfg.ScansExtension(ext) {
			t.Fatalf("expected %q to pass the filter", ext)
		}
	}
	if cfg.ScansExtension(".mkv") {
		t.Fatal("expected .mkv to be rejected")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Write.ByteOrder != "preserve" {
		t.Fatalf("byte order = %q", cfg.Write.ByteOrder)
	}
}
