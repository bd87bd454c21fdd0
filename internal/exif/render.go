package exif

import (
	"fmt"
	"strconv"
	"strings"
)

// Windows XP* tags store UCS-2 text in BYTE payloads.
func isUCS2Tag(dir Dir, id uint16) bool {
	return dir == DirImage && id >= 0x9C9B && id <= 0x9C9F
}

// Render formats a value for display. Strings render as-is, numeric arrays as
// space-separated elements, fractions as "n/d", and opaque payloads as a byte
// count once they stop being printable.
func Render(dir Dir, id uint16, v Value) string {
	if isUCS2Tag(dir, id) {
		if s, err := v.UCS2String(); err == nil {
			return s
		}
	}

	switch v.Type {
	case TypeAscii, TypeUTF8:
		s, err := v.String()
		if err != nil {
			return fmt.Sprintf("(%d bytes)", len(v.Data))
		}
		return s
	case TypeByte, TypeShort, TypeLong:
		return renderElems(v, func(i int) (string, error) {
			n, err := v.Uint(i)
			return strconv.FormatUint(uint64(n), 10), err
		})
	case TypeSByte, TypeSShort, TypeSLong:
		return renderElems(v, func(i int) (string, error) {
			n, err := v.Int(i)
			return strconv.FormatInt(int64(n), 10), err
		})
	case TypeRational:
		return renderElems(v, func(i int) (string, error) {
			r, err := v.Rational(i)
			return r.String(), err
		})
	case TypeSRational:
		return renderElems(v, func(i int) (string, error) {
			r, err := v.SRational(i)
			return r.String(), err
		})
	case TypeFloat, TypeDouble:
		return renderElems(v, func(i int) (string, error) {
			f, err := v.Float(i)
			return strconv.FormatFloat(f, 'g', -1, 64), err
		})
	default:
		if printable(v.Data) {
			return string(v.Data)
		}
		return fmt.Sprintf("(%d bytes)", len(v.Data))
	}
}

const maxRenderElems = 16

func renderElems(v Value, one func(int) (string, error)) string {
	count := int(v.Count)
	shown := count
	if shown > maxRenderElems {
		shown = maxRenderElems
	}

	parts := make([]string, 0, shown)
	for i := 0; i < shown; i++ {
		s, err := one(i)
		if err != nil {
			return fmt.Sprintf("(%d bytes)", len(v.Data))
		}
		parts = append(parts, s)
	}
	if count > shown {
		parts = append(parts, fmt.Sprintf("... (%d more)", count-shown))
	}
	return strings.Join(parts, " ")
}

func printable(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if (c < 0x20 || c > 0x7E) && c != 0 {
			return false
		}
	}
	return true
}
