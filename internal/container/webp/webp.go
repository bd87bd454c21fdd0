// Package webp reads and writes the EXIF chunk of a WEBP (RIFF) stream.
package webp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	riffHeaderSize = 12
	// VP8X feature flag marking an EXIF chunk, per the extended file format.
	flagEXIF = 0x08
)

var (
	// ErrNotWebP reports input that is not a RIFF/WEBP stream.
	ErrNotWebP = errors.New("webp: not a RIFF WEBP stream")
	// ErrNoExif reports a stream with no EXIF chunk.
	ErrNoExif = errors.New("webp: no EXIF chunk")
	// ErrTruncated reports a chunk running past the end of the stream.
	ErrTruncated = errors.New("webp: truncated stream")
)

// IsWebP reports whether data begins with a RIFF header of form type WEBP.
func IsWebP(data []byte) bool {
	return len(data) >= riffHeaderSize &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP"))
}

// chunk is one located RIFF chunk; end includes the odd-size pad byte.
type chunk struct {
	fourCC string
	start  int
	end    int
	data   []byte
}

func scan(data []byte, visit func(c chunk) (stop bool)) error {
	if !IsWebP(data) {
		return ErrNotWebP
	}

	pos := riffHeaderSize
	for pos < len(data) {
		if pos+8 > len(data) {
			return ErrTruncated
		}
		length := int(binary.LittleEndian.Uint32(data[pos+4:]))
		end := pos + 8 + length + length%2 // chunks are even-size padded
		if length < 0 || pos+8+length > len(data) {
			return ErrTruncated
		}
		if end > len(data) {
			end = len(data) // final chunk may omit the pad byte
		}
		c := chunk{
			fourCC: string(data[pos : pos+4]),
			start:  pos,
			end:    end,
			data:   data[pos+8 : pos+8+length],
		}
		if visit(c) {
			return nil
		}
		pos = end
	}
	return nil
}

func findExif(data []byte) (chunk, bool, error) {
	var found chunk
	ok := false
	err := scan(data, func(c chunk) bool {
		if c.fourCC == "EXIF" {
			found = c
			ok = true
			return true
		}
		return false
	})
	return found, ok, err
}

// Extract returns the TIFF payload of the EXIF chunk.
func Extract(data []byte) ([]byte, error) {
	c, ok, err := findExif(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoExif
	}
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out, nil
}

// Insert returns the stream with the EXIF chunk replaced or appended. When a
// VP8X chunk is present its EXIF feature flag is set; the RIFF size is
// rewritten either way.
func Insert(data []byte, payload []byte) ([]byte, error) {
	newChunk := make([]byte, 0, 8+len(payload)+1)
	newChunk = append(newChunk, "EXIF"...)
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], uint32(len(payload)))
	newChunk = append(newChunk, word[:]...)
	newChunk = append(newChunk, payload...)
	if len(payload)%2 == 1 {
		newChunk = append(newChunk, 0)
	}

	var out []byte
	if existing, ok, err := findExif(data); err != nil {
		return nil, err
	} else if ok {
		out = make([]byte, 0, len(data)-(existing.end-existing.start)+len(newChunk))
		out = append(out, data[:existing.start]...)
		out = append(out, newChunk...)
		out = append(out, data[existing.end:]...)
	} else {
		out = make([]byte, 0, len(data)+len(newChunk))
		out = append(out, data...)
		out = append(out, newChunk...)
	}

	setVP8XFlag(out, true)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(out)-8))
	return out, nil
}

// Strip returns the stream with the EXIF chunk removed and the VP8X flag
// cleared. It returns ErrNoExif when there is nothing to strip.
func Strip(data []byte) ([]byte, error) {
	c, ok, err := findExif(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoExif
	}

	out := make([]byte, 0, len(data)-(c.end-c.start))
	out = append(out, data[:c.start]...)
	out = append(out, data[c.end:]...)

	setVP8XFlag(out, false)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(out)-8))
	return out, nil
}

func setVP8XFlag(data []byte, on bool) {
	_ = scan(data, func(c chunk) bool {
		if c.fourCC == "VP8X" && len(c.data) >= 1 {
			if on {
				data[c.start+8] |= flagEXIF
			} else {
				data[c.start+8] &^= flagEXIF
			}
			return true
		}
		return false
	})
}

// Validate confirms the RIFF size field is consistent with the stream length.
func Validate(data []byte) error {
	if !IsWebP(data) {
		return ErrNotWebP
	}
	declared := binary.LittleEndian.Uint32(data[4:])
	if uint64(declared)+8 > uint64(len(data)) {
		return fmt.Errorf("%w: RIFF size %d past end", ErrTruncated, declared)
	}
	return nil
}
