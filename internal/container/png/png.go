// Package png reads and writes the eXIf chunk of a PNG stream, leaving all
// other chunks untouched.
package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

var (
	// ErrNotPNG reports input without the PNG signature.
	ErrNotPNG = errors.New("png: missing signature")
	// ErrNoExif reports a stream with no eXIf chunk.
	ErrNoExif = errors.New("png: no eXIf chunk")
	// ErrTruncated reports a chunk running past the end of the stream.
	ErrTruncated = errors.New("png: truncated stream")
	// ErrCRC reports an eXIf chunk whose checksum does not match.
	ErrCRC = errors.New("png: eXIf chunk CRC mismatch")
)

// IsPNG reports whether data begins with the PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, signature)
}

// chunk is one located chunk: start is the offset of the length word, end is
// one past the CRC.
type chunk struct {
	typ   string
	start int
	end   int
	data  []byte
}

func scan(data []byte, visit func(c chunk) (stop bool)) error {
	if !IsPNG(data) {
		return ErrNotPNG
	}

	pos := len(signature)
	for pos < len(data) {
		if pos+8 > len(data) {
			return ErrTruncated
		}
		length := int(binary.BigEndian.Uint32(data[pos:]))
		end := pos + 8 + length + 4
		if length < 0 || end > len(data) {
			return ErrTruncated
		}
		c := chunk{
			typ:   string(data[pos+4 : pos+8]),
			start: pos,
			end:   end,
			data:  data[pos+8 : pos+8+length],
		}
		if visit(c) {
			return nil
		}
		if c.typ == "IEND" {
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
		if c.typ == "eXIf" {
			found = c
			ok = true
			return true
		}
		return false
	})
	return found, ok, err
}

func chunkCRC(typ string, payload []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)
	return crc.Sum32()
}

func buildChunk(typ string, payload []byte) []byte {
	out := make([]byte, 0, 12+len(payload))
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(payload)))
	out = append(out, word[:]...)
	out = append(out, typ...)
	out = append(out, payload...)
	binary.BigEndian.PutUint32(word[:], chunkCRC(typ, payload))
	return append(out, word[:]...)
}

// Extract returns the TIFF payload of the eXIf chunk, verifying its CRC.
func Extract(data []byte) ([]byte, error) {
	c, ok, err := findExif(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoExif
	}

	stored := binary.BigEndian.Uint32(data[c.end-4:])
	if stored != chunkCRC(c.typ, c.data) {
		return nil, fmt.Errorf("%w: stored %#08x", ErrCRC, stored)
	}

	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out, nil
}

// Insert returns the stream with the eXIf chunk replaced, or inserted before
// the first IDAT chunk when none exists.
func Insert(data []byte, payload []byte) ([]byte, error) {
	newChunk := buildChunk("eXIf", payload)

	if existing, ok, err := findExif(data); err != nil {
		return nil, err
	} else if ok {
		out := make([]byte, 0, len(data)-(existing.end-existing.start)+len(newChunk))
		out = append(out, data[:existing.start]...)
		out = append(out, newChunk...)
		out = append(out, data[existing.end:]...)
		return out, nil
	}

	insertAt := -1
	if err := scan(data, func(c chunk) bool {
		if c.typ == "IDAT" || c.typ == "IEND" {
			insertAt = c.start
			return true
		}
		return false
	}); err != nil {
		return nil, err
	}
	if insertAt < 0 {
		return nil, fmt.Errorf("%w: no IDAT or IEND chunk", ErrTruncated)
	}

	out := make([]byte, 0, len(data)+len(newChunk))
	out = append(out, data[:insertAt]...)
	out = append(out, newChunk...)
	out = append(out, data[insertAt:]...)
	return out, nil
}

// Strip returns the stream with the eXIf chunk removed. It returns ErrNoExif
// when there is nothing to strip.
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
	return out, nil
}
