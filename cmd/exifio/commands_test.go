package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"exifio"
	"exifio/internal/exif"
	"exifio/internal/testsupport"
	"exifio/internal/tiff"
)

func TestShowRendersTags(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	out, _, err := runCLI(t, cfg, "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Make")
	requireContains(t, out, "Nikon")
	requireContains(t, out, "DateTimeOriginal")
	requireContains(t, out, "== Image ==")
}

func TestShowJSON(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	out, _, err := runCLI(t, cfg, "show", path, "--json")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}

	var payload showPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if payload.Format != "JPEG" {
		t.Fatalf("format = %q", payload.Format)
	}
	fields := payload.Dirs["Image"]
	if len(fields) != 2 {
		t.Fatalf("image fields = %d", len(fields))
	}
	if fields[0].Tag != "Make" || fields[0].Value != "Nikon" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
}

func TestDumpListsRawFields(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	out, _, err := runCLI(t, cfg, "dump", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	requireContains(t, out, "0x010F")
	requireContains(t, out, "ASCII")
	requireContains(t, out, "fields=3")
}

func TestSetAndRemoveRoundTrip(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	out, _, err := runCLI(t, cfg, "set", path, "Artist=Dorothea Lange")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	requireContains(t, out, "Set Image.Artist")

	md, _, err := exifio.DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := md.GetString(exif.DirImage, 0x013B); got != "Dorothea Lange" {
		t.Fatalf("artist = %q", got)
	}

	out, _, err = runCLI(t, cfg, "remove", path, "Artist")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Removed 1 tag(s)")

	md, _, err = exifio.DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := md.Get(exif.DirImage, 0x013B); ok {
		t.Fatal("artist tag still present")
	}
}

func TestSetUnknownTag(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	if _, _, err := runCLI(t, cfg, "set", path, "NoSuchTag=x"); err == nil {
		t.Fatal("expected error for unknown tag")
	}
}

func TestSetCreatesExifBlock(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := testsupport.WriteFile(t, t.TempDir(), "bare.jpg", testsupport.JPEG(nil))

	if _, _, err := runCLI(t, cfg, "set", path, "Make=Leica"); err != nil {
		t.Fatalf("set on exif-less file: %v", err)
	}

	md, _, err := exifio.DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := md.GetString(exif.DirImage, 0x010F); got != "Leica" {
		t.Fatalf("make = %q", got)
	}
}

func TestSetOutputLeavesSourceUntouched(t *testing.T) {
	cfg := writeCLIConfig(t)
	dir := t.TempDir()
	path := makeJPEG(t, dir, "photo.jpg")
	copyPath := filepath.Join(dir, "edited.jpg")

	if _, _, err := runCLI(t, cfg, "set", path, "Artist=Gordon Parks", "--output", copyPath); err != nil {
		t.Fatalf("set --output: %v", err)
	}

	md, _, err := exifio.DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := md.Get(exif.DirImage, 0x013B); ok {
		t.Fatal("source file gained the tag")
	}

	md, _, err = exifio.DecodeFile(copyPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := md.GetString(exif.DirImage, 0x013B); got != "Gordon Parks" {
		t.Fatalf("artist = %q", got)
	}
}

func TestStrip(t *testing.T) {
	cfg := writeCLIConfig(t)
	path := makeJPEG(t, t.TempDir(), "photo.jpg")

	out, _, err := runCLI(t, cfg, "strip", path)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	requireContains(t, out, "stripped")

	out, _, err = runCLI(t, cfg, "strip", path)
	if err != nil {
		t.Fatalf("second strip: %v", err)
	}
	requireContains(t, out, "no EXIF metadata")
}

func TestThumbnail(t *testing.T) {
	cfg := writeCLIConfig(t)
	dir := t.TempDir()

	md := exif.NewMetadata()
	md.Set(exif.DirImage, 0x010F, exif.NewAscii("Canon"))
	md.Thumbnail = []byte{0xFF, 0xD8, 0xAA, 0xFF, 0xD9}
	payload, err := tiff.Encode(md)
	if err != nil {
		t.Fatal(err)
	}
	path := testsupport.WriteFile(t, dir, "photo.jpg", testsupport.JPEG(payload))

	target := filepath.Join(dir, "thumb.jpg")
	out, _, err := runCLI(t, cfg, "thumbnail", path, "--output", target)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	requireContains(t, out, target)

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(md.Thumbnail) {
		t.Fatalf("thumbnail size = %d", len(got))
	}
}

func TestScanAndCatalog(t *testing.T) {
	cfg := writeCLIConfig(t)
	root := t.TempDir()
	makeJPEG(t, root, "a.jpg")
	makeJPEG(t, root, "b.jpg")

	out, _, err := runCLI(t, cfg, "scan", root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Scanned")

	out, _, err = runCLI(t, cfg, "catalog", "list")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, "a.jpg")
	requireContains(t, out, "Nikon Z8")

	out, _, err = runCLI(t, cfg, "catalog", "list", "--make", "Canon")
	if err != nil {
		t.Fatalf("catalog list --make: %v", err)
	}
	requireContains(t, out, "Catalog is empty")

	out, _, err = runCLI(t, cfg, "catalog", "stats")
	if err != nil {
		t.Fatalf("catalog stats: %v", err)
	}
	requireContains(t, out, "JPEG")
	requireContains(t, out, "Total")

	if err := os.Remove(filepath.Join(root, "b.jpg")); err != nil {
		t.Fatal(err)
	}
	out, _, err = runCLI(t, cfg, "catalog", "prune")
	if err != nil {
		t.Fatalf("catalog prune: %v", err)
	}
	requireContains(t, out, "Pruned 1 entry")
}

func TestConfigInitAndValidate(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "write.byte_order")
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "exifio")
}
