package tiff

import (
	"bytes"
	"encoding/binary"
	"testing"

	"exifio/internal/exif"
)

func sampleMetadata(order binary.ByteOrder) *exif.Metadata {
	md := exif.NewMetadata()
	md.Order = order
	md.Set(exif.DirImage, 0x010F, exif.NewAscii("Fujifilm"))
	md.Set(exif.DirImage, 0x0110, exif.NewAscii("X-T5"))
	md.Set(exif.DirImage, 0x0112, exif.NewShort(1))
	md.Set(exif.DirImage, 0x011A, exif.NewRational(exif.Rational{Num: 72, Den: 1}))
	md.Set(exif.DirPhoto, 0x829A, exif.NewRational(exif.Rational{Num: 1, Den: 250}))
	md.Set(exif.DirPhoto, 0x9003, exif.NewAscii("2024:06:01 10:30:00"))
	md.Set(exif.DirPhoto, 0x9201, exif.NewSRational(exif.SRational{Num: 7965784, Den: 1000000}))
	md.Set(exif.DirGPS, 0x0001, exif.NewAscii("N"))
	md.Set(exif.DirGPS, 0x0002, exif.NewRational(
		exif.Rational{Num: 40, Den: 1},
		exif.Rational{Num: 26, Den: 1},
		exif.Rational{Num: 4614, Den: 100},
	))
	md.Set(exif.DirIop, 0x0001, exif.NewAscii("R98"))
	return md
}

func TestRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		encoded, err := Encode(sampleMetadata(order))
		if err != nil {
			t.Fatalf("%v: encode: %v", order, err)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("%v: decode: %v", order, err)
		}

		want := sampleMetadata(order)
		for _, dir := range exif.Dirs {
			wantFields := want.Fields(dir)
			gotFields := decoded.Fields(dir)
			if len(wantFields) != len(gotFields) {
				t.Fatalf("%v: %s field count %d, want %d", order, dir, len(gotFields), len(wantFields))
			}
			for i, wf := range wantFields {
				gf := gotFields[i]
				if gf.ID != wf.ID || gf.Value.Type != wf.Value.Type || gf.Value.Count != wf.Value.Count {
					t.Fatalf("%v: %s field %d: got (%#04x %s %d), want (%#04x %s %d)",
						order, dir, i, gf.ID, gf.Value.Type, gf.Value.Count, wf.ID, wf.Value.Type, wf.Value.Count)
				}
				if !bytes.Equal(gf.Value.Encoded(binary.BigEndian), wf.Value.Encoded(binary.BigEndian)) {
					t.Fatalf("%v: %s %s payload mismatch", order, dir, gf.Name(dir))
				}
			}
		}
	}
}

func TestRoundTripThumbnail(t *testing.T) {
	md := sampleMetadata(binary.LittleEndian)
	md.Thumbnail = []byte{0xFF, 0xD8, 0xFF, 0xD9}
	md.Set(exif.DirThumbnail, 0x0103, exif.NewShort(6))

	encoded, err := Encode(md)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(decoded.Thumbnail, md.Thumbnail) {
		t.Fatalf("thumbnail = %x, want %x", decoded.Thumbnail, md.Thumbnail)
	}
	if v, ok := decoded.Get(exif.DirThumbnail, 0x0103); !ok {
		t.Fatal("IFD1 Compression missing")
	} else if n, err := v.Uint(0); err != nil || n != 6 {
		t.Fatalf("IFD1 Compression = %d, %v", n, err)
	}
	// Locator tags are structural and must not surface as fields.
	if _, ok := decoded.Get(exif.DirThumbnail, exif.TagJPEGInterchangeFormat); ok {
		t.Fatal("thumbnail offset tag leaked into fields")
	}
}

func TestEncodeEmptyMetadata(t *testing.T) {
	md := exif.NewMetadata()
	encoded, err := Encode(md)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != 0 {
		t.Fatalf("expected empty set, got %d fields", decoded.Len())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{'I', 'I'},
		{'X', 'X', 0, 42, 0, 0, 0, 8},
		{'M', 'M', 0, 41, 0, 0, 0, 8},
	}
	for i, data := range cases {
		if _, err := Decode(data); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
