package exif

import (
	"encoding/binary"
	"sort"
)

// Field is one tag/value pair inside a directory.
type Field struct {
	ID    uint16
	Value Value
}

// Name returns the canonical tag name for the field within dir.
func (f Field) Name(dir Dir) string {
	return TagName(dir, f.ID)
}

// Metadata is a decoded EXIF block: the byte order it was stored with, the
// fields of every directory, and the embedded thumbnail stream when IFD1
// carries one. Pointer tags (ExifTag, GPSTag, InteroperabilityTag) and the
// thumbnail offset tags are structural; they are materialized on encode and
// never appear as fields here.
type Metadata struct {
	Order     binary.ByteOrder
	dirs      map[Dir]map[uint16]Value
	Thumbnail []byte
}

// NewMetadata returns an empty metadata set in big-endian byte order.
func NewMetadata() *Metadata {
	return &Metadata{
		Order: binary.BigEndian,
		dirs:  make(map[Dir]map[uint16]Value),
	}
}

// Get returns the value of a tag and whether it is present.
func (m *Metadata) Get(dir Dir, id uint16) (Value, bool) {
	v, ok := m.dirs[dir][id]
	return v, ok
}

// Set stores a value for a tag, replacing any existing one.
func (m *Metadata) Set(dir Dir, id uint16, v Value) {
	if m.dirs == nil {
		m.dirs = make(map[Dir]map[uint16]Value)
	}
	fields, ok := m.dirs[dir]
	if !ok {
		fields = make(map[uint16]Value)
		m.dirs[dir] = fields
	}
	fields[id] = v
}

// Remove deletes a tag and reports whether it was present.
func (m *Metadata) Remove(dir Dir, id uint16) bool {
	fields, ok := m.dirs[dir]
	if !ok {
		return false
	}
	if _, ok := fields[id]; !ok {
		return false
	}
	delete(fields, id)
	if len(fields) == 0 {
		delete(m.dirs, dir)
	}
	return true
}

// Fields returns the fields of a directory sorted by tag ID.
func (m *Metadata) Fields(dir Dir) []Field {
	fields := m.dirs[dir]
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, 0, len(fields))
	for id, v := range fields {
		out = append(out, Field{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len reports the total number of fields across all directories.
func (m *Metadata) Len() int {
	n := 0
	for _, fields := range m.dirs {
		n += len(fields)
	}
	return n
}

// Empty reports whether the set has no fields and no thumbnail.
func (m *Metadata) Empty() bool {
	return m.Len() == 0 && len(m.Thumbnail) == 0
}

// GetString returns a string tag from dir, or "" when absent or non-string.
func (m *Metadata) GetString(dir Dir, id uint16) string {
	v, ok := m.Get(dir, id)
	if !ok {
		return ""
	}
	s, err := v.String()
	if err != nil {
		return ""
	}
	return s
}
