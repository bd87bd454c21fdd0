// Package jpeg locates, inserts, and strips the EXIF APP1 segment in a JPEG
// stream without decoding image data.
package jpeg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1

	// Segment length is a 16-bit count that includes its own two bytes, so an
	// APP1 payload tops out just under 64 KiB.
	maxPayload = 0xFFFF - 2 - len(exifHeader)
)

const exifHeader = "Exif\x00\x00"

var (
	// ErrNotJPEG reports input that does not start with SOI.
	ErrNotJPEG = errors.New("jpeg: missing SOI marker")
	// ErrNoExif reports a stream with no EXIF APP1 segment.
	ErrNoExif = errors.New("jpeg: no EXIF segment")
	// ErrTruncated reports a segment running past the end of the stream.
	ErrTruncated = errors.New("jpeg: truncated stream")
	// ErrTooLarge reports an EXIF payload that cannot fit one APP1 segment.
	ErrTooLarge = errors.New("jpeg: EXIF payload exceeds APP1 capacity")
)

// IsJPEG reports whether data begins with a JPEG SOI marker.
func IsJPEG(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1] == markerSOI
}

// segment is one marker segment located in the stream. start is the offset of
// the 0xFF marker byte; end is one past the segment's last byte.
type segment struct {
	marker byte
	start  int
	end    int
}

// scan walks marker segments from SOI until SOS or EOI. Entropy-coded data is
// never entered.
func scan(data []byte, visit func(seg segment) (stop bool)) error {
	if !IsJPEG(data) {
		return ErrNotJPEG
	}

	pos := 2
	for pos+2 <= len(data) {
		if data[pos] != 0xFF {
			return fmt.Errorf("%w: expected marker at %#x", ErrTruncated, pos)
		}
		marker := data[pos+1]

		// Standalone markers carry no length.
		if marker == markerEOI {
			return nil
		}
		if marker >= 0xD0 && marker <= 0xD7 {
			pos += 2
			continue
		}

		if pos+4 > len(data) {
			return ErrTruncated
		}
		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		if length < 2 || pos+2+length > len(data) {
			return ErrTruncated
		}

		if visit(segment{marker: marker, start: pos, end: pos + 2 + length}) {
			return nil
		}
		if marker == markerSOS {
			// Compressed data follows; nothing of interest past here.
			return nil
		}
		pos += 2 + length
	}
	return nil
}

func findExif(data []byte) (segment, bool, error) {
	var found segment
	ok := false
	err := scan(data, func(seg segment) bool {
		if seg.marker == markerAPP1 && bytes.HasPrefix(data[seg.start+4:seg.end], []byte(exifHeader)) {
			found = seg
			ok = true
			return true
		}
		return false
	})
	return found, ok, err
}

// Extract returns the TIFF payload of the EXIF APP1 segment.
func Extract(data []byte) ([]byte, error) {
	seg, ok, err := findExif(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoExif
	}
	payload := data[seg.start+4+len(exifHeader) : seg.end]
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Insert returns the stream with the EXIF APP1 segment replaced, or inserted
// after SOI (following any APP0/JFIF segment) when none exists.
func Insert(data []byte, payload []byte) ([]byte, error) {
	if len(payload) > maxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(payload))
	}

	seg := make([]byte, 0, 4+len(exifHeader)+len(payload))
	seg = append(seg, 0xFF, markerAPP1, 0, 0)
	seg = append(seg, exifHeader...)
	seg = append(seg, payload...)
	binary.BigEndian.PutUint16(seg[2:], uint16(len(seg)-2))

	if existing, ok, err := findExif(data); err != nil {
		return nil, err
	} else if ok {
		out := make([]byte, 0, len(data)-(existing.end-existing.start)+len(seg))
		out = append(out, data[:existing.start]...)
		out = append(out, seg...)
		out = append(out, data[existing.end:]...)
		return out, nil
	}

	insertAt := 2
	_ = scan(data, func(s segment) bool {
		if s.marker == markerAPP0 {
			insertAt = s.end
		}
		return true // only the first segment matters
	})

	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:insertAt]...)
	out = append(out, seg...)
	out = append(out, data[insertAt:]...)
	return out, nil
}

// Strip returns the stream with the EXIF APP1 segment removed. It returns
// ErrNoExif when there is nothing to strip.
func Strip(data []byte) ([]byte, error) {
	seg, ok, err := findExif(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoExif
	}
	out := make([]byte, 0, len(data)-(seg.end-seg.start))
	out = append(out, data[:seg.start]...)
	out = append(out, data[seg.end:]...)
	return out, nil
}
