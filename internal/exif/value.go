package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
)

// ErrKind reports an accessor applied to a value of an incompatible type.
var ErrKind = errors.New("exif: value kind mismatch")

// Value is one decoded field payload. Data holds the raw element bytes in the
// byte order recorded in Order; accessors decode on demand so malformed input
// surfaces as errors instead of panics.
type Value struct {
	Type  Type
	Count uint32
	Order binary.ByteOrder
	Data  []byte
}

func (v Value) check(index int, want ...Type) error {
	ok := false
	for _, t := range want {
		if v.Type == t {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: have %s", ErrKind, v.Type)
	}
	size := v.Type.Size()
	if size == 0 {
		return fmt.Errorf("%w: unsized type %s", ErrKind, v.Type)
	}
	if index < 0 || (index+1)*size > len(v.Data) {
		return fmt.Errorf("exif: index %d out of range for %d bytes of %s", index, len(v.Data), v.Type)
	}
	return nil
}

// Uint returns element index of a BYTE, SHORT or LONG value.
func (v Value) Uint(index int) (uint32, error) {
	if err := v.check(index, TypeByte, TypeShort, TypeLong); err != nil {
		return 0, err
	}
	switch v.Type {
	case TypeByte:
		return uint32(v.Data[index]), nil
	case TypeShort:
		return uint32(v.Order.Uint16(v.Data[index*2:])), nil
	default:
		return v.Order.Uint32(v.Data[index*4:]), nil
	}
}

// Int returns element index of a SBYTE, SSHORT or SLONG value.
func (v Value) Int(index int) (int32, error) {
	if err := v.check(index, TypeSByte, TypeSShort, TypeSLong); err != nil {
		return 0, err
	}
	switch v.Type {
	case TypeSByte:
		return int32(int8(v.Data[index])), nil
	case TypeSShort:
		return int32(int16(v.Order.Uint16(v.Data[index*2:]))), nil
	default:
		return int32(v.Order.Uint32(v.Data[index*4:])), nil
	}
}

// Rational returns element index of a RATIONAL value.
func (v Value) Rational(index int) (Rational, error) {
	if err := v.check(index, TypeRational); err != nil {
		return Rational{}, err
	}
	return Rational{
		Num: v.Order.Uint32(v.Data[index*8:]),
		Den: v.Order.Uint32(v.Data[index*8+4:]),
	}, nil
}

// SRational returns element index of a SRATIONAL value.
func (v Value) SRational(index int) (SRational, error) {
	if err := v.check(index, TypeSRational); err != nil {
		return SRational{}, err
	}
	return SRational{
		Num: int32(v.Order.Uint32(v.Data[index*8:])),
		Den: int32(v.Order.Uint32(v.Data[index*8+4:])),
	}, nil
}

// Float returns element index of a FLOAT or DOUBLE value.
func (v Value) Float(index int) (float64, error) {
	if err := v.check(index, TypeFloat, TypeDouble); err != nil {
		return 0, err
	}
	if v.Type == TypeFloat {
		return float64(math.Float32frombits(v.Order.Uint32(v.Data[index*4:]))), nil
	}
	return math.Float64frombits(v.Order.Uint64(v.Data[index*8:])), nil
}

// String returns an ASCII or UTF8 value with trailing NUL terminators removed.
func (v Value) String() (string, error) {
	if v.Type != TypeAscii && v.Type != TypeUTF8 {
		return "", fmt.Errorf("%w: have %s", ErrKind, v.Type)
	}
	return string(bytes.TrimRight(v.Data, "\x00")), nil
}

// Bytes returns a copy of the raw payload.
func (v Value) Bytes() []byte {
	out := make([]byte, len(v.Data))
	copy(out, v.Data)
	return out
}

// UCS2String decodes a Windows XP* tag payload, which is UCS-2 little endian
// stored as BYTE elements regardless of the file byte order.
func (v Value) UCS2String() (string, error) {
	if v.Type != TypeByte && v.Type != TypeUndefined {
		return "", fmt.Errorf("%w: have %s", ErrKind, v.Type)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(v.Data)
	if err != nil {
		return "", fmt.Errorf("decode UCS-2: %w", err)
	}
	return string(bytes.TrimRight(decoded, "\x00")), nil
}

// Encoded returns the payload converted to the destination byte order.
// Single-byte element types pass through unchanged.
func (v Value) Encoded(dst binary.ByteOrder) []byte {
	size := v.Type.Size()
	if size <= 1 || v.Order == dst {
		out := make([]byte, len(v.Data))
		copy(out, v.Data)
		return out
	}

	// RATIONAL and DOUBLE payloads swap as two/one 4- or 8-byte words; every
	// multi-byte type reduces to fixed-width words.
	word := size
	if v.Type == TypeRational || v.Type == TypeSRational {
		word = 4
	}

	out := make([]byte, len(v.Data))
	for pos := 0; pos+word <= len(v.Data); pos += word {
		switch word {
		case 2:
			dst.PutUint16(out[pos:], v.Order.Uint16(v.Data[pos:]))
		case 4:
			dst.PutUint32(out[pos:], v.Order.Uint32(v.Data[pos:]))
		case 8:
			dst.PutUint64(out[pos:], v.Order.Uint64(v.Data[pos:]))
		}
	}
	return out
}

// NewAscii builds an ASCII value; the wire form appends the NUL terminator.
func NewAscii(s string) Value {
	data := append([]byte(s), 0)
	return Value{Type: TypeAscii, Count: uint32(len(data)), Order: binary.BigEndian, Data: data}
}

// NewUTF8 builds a UTF8 value; the wire form appends the NUL terminator.
func NewUTF8(s string) Value {
	data := append([]byte(s), 0)
	return Value{Type: TypeUTF8, Count: uint32(len(data)), Order: binary.BigEndian, Data: data}
}

// NewShort builds a SHORT value from one or more elements.
func NewShort(elems ...uint16) Value {
	data := make([]byte, 2*len(elems))
	for i, e := range elems {
		binary.BigEndian.PutUint16(data[i*2:], e)
	}
	return Value{Type: TypeShort, Count: uint32(len(elems)), Order: binary.BigEndian, Data: data}
}

// NewLong builds a LONG value from one or more elements.
func NewLong(elems ...uint32) Value {
	data := make([]byte, 4*len(elems))
	for i, e := range elems {
		binary.BigEndian.PutUint32(data[i*4:], e)
	}
	return Value{Type: TypeLong, Count: uint32(len(elems)), Order: binary.BigEndian, Data: data}
}

// NewRational builds a RATIONAL value from one or more fractions.
func NewRational(elems ...Rational) Value {
	data := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.BigEndian.PutUint32(data[i*8:], e.Num)
		binary.BigEndian.PutUint32(data[i*8+4:], e.Den)
	}
	return Value{Type: TypeRational, Count: uint32(len(elems)), Order: binary.BigEndian, Data: data}
}

// NewSRational builds a SRATIONAL value from one or more fractions.
func NewSRational(elems ...SRational) Value {
	data := make([]byte, 8*len(elems))
	for i, e := range elems {
		binary.BigEndian.PutUint32(data[i*8:], uint32(e.Num))
		binary.BigEndian.PutUint32(data[i*8+4:], uint32(e.Den))
	}
	return Value{Type: TypeSRational, Count: uint32(len(elems)), Order: binary.BigEndian, Data: data}
}

// NewUndefined builds an UNDEFINED value holding opaque bytes.
func NewUndefined(b []byte) Value {
	data := make([]byte, len(b))
	copy(data, b)
	return Value{Type: TypeUndefined, Count: uint32(len(data)), Order: binary.BigEndian, Data: data}
}
