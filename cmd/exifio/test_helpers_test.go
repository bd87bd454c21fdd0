package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exifio/internal/exif"
	"exifio/internal/testsupport"
	"exifio/internal/tiff"
)

// writeCLIConfig drops a config file pointing the catalog and logs at
// per-test temp directories and returns its path.
func writeCLIConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "exifio.toml")
	content := fmt.Sprintf(
		"[paths]\ncatalog_dir = %q\nlog_dir = %q\n",
		filepath.Join(base, "catalog"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// makeJPEG writes a JPEG fixture whose EXIF block carries a camera make,
// model, and capture timestamp, and returns its path.
func makeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	md := exif.NewMetadata()
	md.Set(exif.DirImage, 0x010F, exif.NewAscii("Nikon"))
	md.Set(exif.DirImage, 0x0110, exif.NewAscii("Z8"))
	md.Set(exif.DirPhoto, 0x9003, exif.NewAscii("2025:06:01 12:00:00"))
	payload, err := tiff.Encode(md)
	if err != nil {
		t.Fatal(err)
	}
	return testsupport.WriteFile(t, dir, name, testsupport.JPEG(payload))
}
