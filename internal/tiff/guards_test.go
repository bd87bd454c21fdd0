package tiff

import (
	"encoding/binary"
	"errors"
	"testing"

	"exifio/internal/exif"
)

// rawIFD assembles a big-endian TIFF stream from hand-built directories.
func header(firstIFD uint32) []byte {
	out := []byte{'M', 'M', 0, 42, 0, 0, 0, 0}
	binary.BigEndian.PutUint32(out[4:], firstIFD)
	return out
}

func entry(tag uint16, typ uint16, count uint32, slot uint32) []byte {
	out := make([]byte, entrySize)
	binary.BigEndian.PutUint16(out[0:], tag)
	binary.BigEndian.PutUint16(out[2:], typ)
	binary.BigEndian.PutUint32(out[4:], count)
	binary.BigEndian.PutUint32(out[8:], slot)
	return out
}

func ifd(next uint32, entries ...[]byte) []byte {
	out := make([]byte, 2, 2+len(entries)*entrySize+4)
	binary.BigEndian.PutUint16(out, uint16(len(entries)))
	for _, e := range entries {
		out = append(out, e...)
	}
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], next)
	return append(out, tail[:]...)
}

func TestDecodeChainCycle(t *testing.T) {
	// IFD0 at offset 8 whose next-IFD pointer loops back to itself.
	data := append(header(8), ifd(8, entry(0x0112, 3, 1, 1<<16))...)

	_, err := Decode(data)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestDecodeSubIFDCycle(t *testing.T) {
	// ExifTag pointing back at IFD0.
	data := append(header(8), ifd(0, entry(0x8769, 4, 1, 8))...)

	_, err := Decode(data)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestDecodeValueOffsetOutOfBounds(t *testing.T) {
	// A RATIONAL whose value offset points far past the stream.
	data := append(header(8), ifd(0, entry(0x011A, 5, 1, 0xFFFF))...)

	_, err := Decode(data)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatal("expected ParseError with offset context")
	}
	if perr.Offset != 0xFFFF {
		t.Fatalf("offset = %#x", perr.Offset)
	}
}

func TestDecodeIFDOffsetOutOfBounds(t *testing.T) {
	data := header(0xFFFFFF)
	_, err := Decode(data)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeEntryCountPastEnd(t *testing.T) {
	// Directory claims 1000 entries but the stream ends immediately.
	data := append(header(8), 0x03, 0xE8)
	_, err := Decode(data)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeUnknownTypePreserved(t *testing.T) {
	// Type 200 is not a TIFF type; the inline slot must survive untouched.
	data := append(header(8), ifd(0, entry(0x9999, 200, 1, 0xDEADBEEF))...)

	md, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := md.Get(exif.DirImage, 0x9999)
	if !ok {
		t.Fatal("unknown-type field dropped")
	}
	if binary.BigEndian.Uint32(v.Data) != 0xDEADBEEF {
		t.Fatalf("payload = %x", v.Data)
	}
}
