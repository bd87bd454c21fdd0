// Package testsupport builds minimal image containers for tests: just enough
// structure for the container scanners, with no real pixel data.
package testsupport

import (
	"encoding/binary"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

// JPEG returns a minimal JPEG stream: SOI, APP0, optionally an EXIF APP1
// holding tiffPayload, a tiny SOS segment, and EOI.
func JPEG(tiffPayload []byte) []byte {
	out := []byte{0xFF, 0xD8} // SOI

	app0 := []byte("JFIF\x00\x01\x02\x00\x00\x01\x00\x01\x00\x00")
	out = appendSegment(out, 0xE0, app0)

	if tiffPayload != nil {
		payload := append([]byte("Exif\x00\x00"), tiffPayload...)
		out = appendSegment(out, 0xE1, payload)
	}

	out = appendSegment(out, 0xDA, []byte{0x01, 0x01, 0x00}) // SOS stub
	return append(out, 0xFF, 0xD9)                           // EOI
}

func appendSegment(out []byte, marker byte, payload []byte) []byte {
	out = append(out, 0xFF, marker)
	var length [2]byte
	binary.BigEndian.PutUint16(length[:], uint16(len(payload)+2))
	out = append(out, length[:]...)
	return append(out, payload...)
}

// PNG returns a minimal PNG stream: signature, IHDR, optionally an eXIf chunk
// holding tiffPayload, IDAT, IEND. All CRCs are valid.
func PNG(tiffPayload []byte) []byte {
	out := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1) // width
	binary.BigEndian.PutUint32(ihdr[4:], 1) // height
	ihdr[8] = 8                             // bit depth
	out = appendChunk(out, "IHDR", ihdr)

	if tiffPayload != nil {
		out = appendChunk(out, "eXIf", tiffPayload)
	}

	out = appendChunk(out, "IDAT", []byte{0x00})
	return appendChunk(out, "IEND", nil)
}

func appendChunk(out []byte, typ string, payload []byte) []byte {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(payload)))
	out = append(out, word[:]...)
	out = append(out, typ...)
	out = append(out, payload...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	return append(out, word[:]...)
}

// WebP returns a minimal extended-format WEBP stream: RIFF header, VP8X, a
// VP8 stub, and optionally an EXIF chunk holding tiffPayload.
func WebP(tiffPayload []byte) []byte {
	var body []byte

	vp8x := make([]byte, 10) // flags + reserved + canvas size
	body = appendRIFFChunk(body, "VP8X", vp8x)
	body = appendRIFFChunk(body, "VP8 ", []byte{0x00, 0x00, 0x00})

	if tiffPayload != nil {
		body = appendRIFFChunk(body, "EXIF", tiffPayload)
		body[8] |= 0x08 // VP8X EXIF flag
	}

	out := make([]byte, 0, riffHeaderLen+len(body))
	out = append(out, "RIFF"...)
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], uint32(4+len(body)))
	out = append(out, word[:]...)
	out = append(out, "WEBP"...)
	return append(out, body...)
}

const riffHeaderLen = 12

func appendRIFFChunk(out []byte, fourCC string, payload []byte) []byte {
	out = append(out, fourCC...)
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], uint32(len(payload)))
	out = append(out, word[:]...)
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// WriteFile drops fixture bytes into dir under name and returns the path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
