package exif

import "fmt"

// Type identifies the wire encoding of a field value, as defined by TIFF 6.0
// and extended by EXIF 3.0 (UTF-8 strings).
type Type uint16

const (
	TypeByte      Type = 1   // 8-bit unsigned integer
	TypeAscii     Type = 2   // 7-bit ASCII, NUL-terminated
	TypeShort     Type = 3   // 16-bit unsigned integer
	TypeLong      Type = 4   // 32-bit unsigned integer
	TypeRational  Type = 5   // two Longs: numerator, denominator
	TypeSByte     Type = 6   // 8-bit signed integer
	TypeUndefined Type = 7   // opaque bytes, meaning per field definition
	TypeSShort    Type = 8   // 16-bit signed integer
	TypeSLong     Type = 9   // 32-bit signed integer
	TypeSRational Type = 10  // two SLongs: numerator, denominator
	TypeFloat     Type = 11  // IEEE 754 single precision
	TypeDouble    Type = 12  // IEEE 754 double precision
	TypeUTF8      Type = 129 // UTF-8 string, NUL-terminated, no BOM
)

// Size returns the byte width of a single element of the type, or 0 when the
// type is not one this package knows how to decode.
func (t Type) Size() int {
	switch t {
	case TypeByte, TypeAscii, TypeSByte, TypeUndefined, TypeUTF8:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t {
	case TypeByte:
		return "BYTE"
	case TypeAscii:
		return "ASCII"
	case TypeShort:
		return "SHORT"
	case TypeLong:
		return "LONG"
	case TypeRational:
		return "RATIONAL"
	case TypeSByte:
		return "SBYTE"
	case TypeUndefined:
		return "UNDEFINED"
	case TypeSShort:
		return "SSHORT"
	case TypeSLong:
		return "SLONG"
	case TypeSRational:
		return "SRATIONAL"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeUTF8:
		return "UTF8"
	default:
		return fmt.Sprintf("TYPE(%d)", uint16(t))
	}
}

// Rational is an unsigned fraction. The numerator and denominator are kept
// exactly as stored; values are never reduced so they round-trip byte for byte.
type Rational struct {
	Num uint32
	Den uint32
}

// Float converts the fraction to a float64. A zero denominator yields NaN or
// Inf following IEEE semantics, matching how EXIF encodes "unknown" (0/0).
func (r Rational) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// SRational is a signed fraction in two's complement notation.
type SRational struct {
	Num int32
	Den int32
}

// Float converts the fraction to a float64.
func (r SRational) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
