package exif

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue builds a Value for a tag from its textual form, using the tag's
// default wire type. Numeric array types accept space-separated elements and
// fractions accept "n/d" or a plain integer.
func ParseValue(dir Dir, id uint16, text string) (Value, error) {
	typ := TagType(dir, id)
	switch typ {
	case TypeAscii:
		return NewAscii(text), nil
	case TypeUTF8:
		return NewUTF8(text), nil
	case TypeByte, TypeUndefined:
		return NewUndefined([]byte(text)), nil
	case TypeShort:
		elems, err := parseUints(text, 16)
		if err != nil {
			return Value{}, err
		}
		shorts := make([]uint16, len(elems))
		for i, e := range elems {
			shorts[i] = uint16(e)
		}
		return NewShort(shorts...), nil
	case TypeLong:
		elems, err := parseUints(text, 32)
		if err != nil {
			return Value{}, err
		}
		longs := make([]uint32, len(elems))
		for i, e := range elems {
			longs[i] = uint32(e)
		}
		return NewLong(longs...), nil
	case TypeRational:
		elems := strings.Fields(text)
		if len(elems) == 0 {
			return Value{}, fmt.Errorf("parse %s: empty value", TagName(dir, id))
		}
		rats := make([]Rational, len(elems))
		for i, e := range elems {
			num, den, err := parseFraction(e)
			if err != nil {
				return Value{}, err
			}
			rats[i] = Rational{Num: uint32(num), Den: uint32(den)}
		}
		return NewRational(rats...), nil
	case TypeSRational:
		elems := strings.Fields(text)
		if len(elems) == 0 {
			return Value{}, fmt.Errorf("parse %s: empty value", TagName(dir, id))
		}
		rats := make([]SRational, len(elems))
		for i, e := range elems {
			num, den, err := parseFraction(e)
			if err != nil {
				return Value{}, err
			}
			rats[i] = SRational{Num: int32(num), Den: int32(den)}
		}
		return NewSRational(rats...), nil
	default:
		return Value{}, fmt.Errorf("parse %s: cannot build %s values from text", TagName(dir, id), typ)
	}
}

func parseUints(text string, bits int) ([]uint64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse: empty value")
	}
	out := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, bits)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}

func parseFraction(text string) (int64, int64, error) {
	numText, denText, ok := strings.Cut(text, "/")
	if !ok {
		num, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("parse fraction %q: %w", text, err)
		}
		return num, 1, nil
	}
	num, err := strconv.ParseInt(numText, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse fraction %q: %w", text, err)
	}
	den, err := strconv.ParseInt(denText, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse fraction %q: %w", text, err)
	}
	return num, den, nil
}
