package jpeg

import (
	"bytes"
	"errors"
	"testing"

	"exifio/internal/testsupport"
)

var payload = []byte("MM\x00\x2A\x00\x00\x00\x08\x00\x00")

func TestExtract(t *testing.T) {
	data := testsupport.JPEG(payload)
	got, err := Extract(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x, want %x", got, payload)
	}
}

func TestExtractNoExif(t *testing.T) {
	if _, err := Extract(testsupport.JPEG(nil)); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif, got %v", err)
	}
}

func TestExtractNotJPEG(t *testing.T) {
	if _, err := Extract([]byte("not a jpeg")); !errors.Is(err, ErrNotJPEG) {
		t.Fatalf("expected ErrNotJPEG, got %v", err)
	}
}

func TestInsertFresh(t *testing.T) {
	data := testsupport.JPEG(nil)
	out, err := Insert(data, payload)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Extract(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x", got)
	}

	// APP1 must come after the JFIF APP0 segment.
	if out[2] != 0xFF || out[3] != 0xE0 {
		t.Fatalf("APP0 displaced: %x", out[2:4])
	}
}

func TestInsertReplacesExisting(t *testing.T) {
	data := testsupport.JPEG(payload)
	replacement := []byte("II\x2A\x00\x08\x00\x00\x00")

	out, err := Insert(data, replacement)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Extract(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, replacement) {
		t.Fatalf("payload = %x", got)
	}
	if bytes.Contains(out, payload) {
		t.Fatal("old payload still present")
	}
}

func TestInsertTooLarge(t *testing.T) {
	big := make([]byte, maxPayload+1)
	if _, err := Insert(testsupport.JPEG(nil), big); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestStrip(t *testing.T) {
	data := testsupport.JPEG(payload)
	out, err := Strip(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, testsupport.JPEG(nil)) {
		t.Fatal("strip result differs from exif-free stream")
	}
	if _, err := Strip(out); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif, got %v", err)
	}
}

func TestScanTruncatedSegment(t *testing.T) {
	data := testsupport.JPEG(payload)
	if _, err := Extract(data[:len(data)-30]); err == nil {
		t.Fatal("expected error on truncated stream")
	}
}
