package webp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"exifio/internal/testsupport"
)

// Odd length exercises RIFF pad-byte handling.
var payload = []byte("MM\x00\x2A\x00\x00\x00\x08\x00")

func TestExtract(t *testing.T) {
	got, err := Extract(testsupport.WebP(payload))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x", got)
	}
}

func TestExtractNoExif(t *testing.T) {
	if _, err := Extract(testsupport.WebP(nil)); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif, got %v", err)
	}
}

func TestInsertSetsVP8XFlag(t *testing.T) {
	out, err := Insert(testsupport.WebP(nil), payload)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(out); err != nil {
		t.Fatal(err)
	}

	got, err := Extract(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %x", got)
	}

	idx := bytes.Index(out, []byte("VP8X"))
	if out[idx+8]&0x08 == 0 {
		t.Fatal("VP8X EXIF flag not set")
	}

	declared := binary.LittleEndian.Uint32(out[4:])
	if int(declared) != len(out)-8 {
		t.Fatalf("RIFF size %d, want %d", declared, len(out)-8)
	}
}

func TestStripClearsVP8XFlag(t *testing.T) {
	out, err := Strip(testsupport.WebP(payload))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(out); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif after strip, got %v", err)
	}

	idx := bytes.Index(out, []byte("VP8X"))
	if out[idx+8]&0x08 != 0 {
		t.Fatal("VP8X EXIF flag still set")
	}

	declared := binary.LittleEndian.Uint32(out[4:])
	if int(declared) != len(out)-8 {
		t.Fatalf("RIFF size %d, want %d", declared, len(out)-8)
	}
}

func TestExtractNotWebP(t *testing.T) {
	if _, err := Extract([]byte("RIFFxxxxWAVE")); !errors.Is(err, ErrNotWebP) {
		t.Fatalf("expected ErrNotWebP, got %v", err)
	}
}

func TestScanTruncatedChunk(t *testing.T) {
	data := testsupport.WebP(payload)
	idx := bytes.Index(data, []byte("EXIF"))
	binary.LittleEndian.PutUint32(data[idx+4:], 1<<24)

	if _, err := Extract(data); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
