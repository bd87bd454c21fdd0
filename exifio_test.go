package exifio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"exifio/internal/exif"
	"exifio/internal/testsupport"
	"exifio/internal/tiff"
)

func sampleTIFF(t *testing.T) []byte {
	t.Helper()
	md := exif.NewMetadata()
	md.Order = binary.LittleEndian
	md.Set(exif.DirImage, 0x010F, exif.NewAscii("Sony"))
	md.Set(exif.DirImage, 0x0110, exif.NewAscii("A7 IV"))
	md.Set(exif.DirPhoto, 0x9003, exif.NewAscii("2025:01:15 08:00:00"))
	payload, err := tiff.Encode(md)
	if err != nil {
		t.Fatal(err)
	}
	return payload
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", testsupport.JPEG(nil), FormatJPEG},
		{"png", testsupport.PNG(nil), FormatPNG},
		{"webp", testsupport.WebP(nil), FormatWebP},
		{"tiff-le", []byte("II\x2A\x00\x08\x00\x00\x00"), FormatTIFF},
		{"tiff-be", []byte("MM\x00\x2A\x00\x00\x00\x08"), FormatTIFF},
		{"garbage", []byte("garbage"), FormatUnknown},
		{"empty", nil, FormatUnknown},
	}
	for _, tc := range cases {
		if got := DetectFormat(tc.data); got != tc.want {
			t.Errorf("%s: format = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDecodeAcrossContainers(t *testing.T) {
	payload := sampleTIFF(t)
	cases := []struct {
		name   string
		data   []byte
		format Format
	}{
		{"jpeg", testsupport.JPEG(payload), FormatJPEG},
		{"png", testsupport.PNG(payload), FormatPNG},
		{"webp", testsupport.WebP(payload), FormatWebP},
		{"tiff", payload, FormatTIFF},
	}
	for _, tc := range cases {
		md, format, err := DecodeBytes(tc.data)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if format != tc.format {
			t.Fatalf("%s: format = %s", tc.name, format)
		}
		if got := md.GetString(exif.DirImage, 0x010F); got != "Sony" {
			t.Fatalf("%s: make = %q", tc.name, got)
		}
		if got := md.GetString(exif.DirPhoto, 0x9003); got != "2025:01:15 08:00:00" {
			t.Fatalf("%s: datetime = %q", tc.name, got)
		}
	}
}

func TestDecodeNoExif(t *testing.T) {
	for _, data := range [][]byte{testsupport.JPEG(nil), testsupport.PNG(nil), testsupport.WebP(nil)} {
		if _, _, err := DecodeBytes(data); !errors.Is(err, ErrNoExif) {
			t.Fatalf("expected ErrNoExif, got %v", err)
		}
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	if _, _, err := DecodeBytes([]byte("plain text")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBareTIFFRewriteUnsupported(t *testing.T) {
	data := sampleTIFF(t)
	md, _, err := DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := EncodeBytes(data, md); !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("encode: expected ErrUnsupportedOperation, got %v", err)
	}
	_, err = StripBytes(data)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("strip: expected ErrUnsupportedOperation, got %v", err)
	}
	if errors.Is(err, ErrUnknownFormat) {
		t.Fatal("a recognized format must not report ErrUnknownFormat")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "photo.jpg", testsupport.JPEG(sampleTIFF(t)))

	md, _, err := DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	md.Set(exif.DirImage, 0x013B, exif.NewAscii("Ansel"))
	if err := WriteFile(path, md); err != nil {
		t.Fatal(err)
	}

	got, _, err := DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if artist := got.GetString(exif.DirImage, 0x013B); artist != "Ansel" {
		t.Fatalf("artist = %q", artist)
	}
	if camMake := got.GetString(exif.DirImage, 0x010F); camMake != "Sony" {
		t.Fatalf("make = %q", camMake)
	}
}

func TestStripFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "photo.png", testsupport.PNG(sampleTIFF(t)))

	if err := StripFile(path); err != nil {
		t.Fatal(err)
	}
	if _, _, err := DecodeFile(path); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif after strip, got %v", err)
	}
	if err := StripFile(path); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif on second strip, got %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	md := exif.NewMetadata()
	md.Set(exif.DirImage, 0x010F, exif.NewAscii("Canon"))
	md.Thumbnail = []byte{0xFF, 0xD8, 0x01, 0x02, 0xFF, 0xD9}
	payload, err := tiff.Encode(md)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "photo.jpg", testsupport.JPEG(payload))

	thumb, err := Thumbnail(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(thumb, md.Thumbnail) {
		t.Fatalf("thumbnail = %x", thumb)
	}

	bare := testsupport.WriteFile(t, dir, "bare.jpg", testsupport.JPEG(sampleTIFF(t)))
	if _, err := Thumbnail(bare); !errors.Is(err, ErrNoExif) {
		t.Fatalf("expected ErrNoExif, got %v", err)
	}
}
