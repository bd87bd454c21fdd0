package exif

import (
	"fmt"
	"strconv"
	"strings"
)

// Dir identifies which image file directory a field belongs to.
type Dir int

const (
	// DirImage is IFD0, the primary image directory.
	DirImage Dir = iota
	// DirPhoto is the Exif private sub-IFD reached through ExifTag.
	DirPhoto
	// DirGPS is the GPS Info sub-IFD reached through GPSTag.
	DirGPS
	// DirIop is the Interoperability sub-IFD reached through InteroperabilityTag.
	DirIop
	// DirThumbnail is IFD1, the thumbnail directory chained after IFD0.
	DirThumbnail
)

// Dirs lists every directory in traversal order.
var Dirs = []Dir{DirImage, DirPhoto, DirGPS, DirIop, DirThumbnail}

func (d Dir) String() string {
	switch d {
	case DirImage:
		return "Image"
	case DirPhoto:
		return "Photo"
	case DirGPS:
		return "GPSInfo"
	case DirIop:
		return "Iop"
	case DirThumbnail:
		return "Thumbnail"
	default:
		return fmt.Sprintf("Dir(%d)", int(d))
	}
}

// Pointer tags linking IFD0/Photo to their sub-IFDs, and the IFD1 fields that
// locate the embedded thumbnail stream.
const (
	TagExifIFD                  uint16 = 0x8769
	TagGPSIFD                   uint16 = 0x8825
	TagInteroperabilityIFD      uint16 = 0xA005
	TagJPEGInterchangeFormat    uint16 = 0x0201
	TagJPEGInterchangeFormatLen uint16 = 0x0202
)

type tagInfo struct {
	Name string
	Type Type
}

func tableFor(dir Dir) map[uint16]tagInfo {
	switch dir {
	case DirImage, DirThumbnail:
		return imageTags
	case DirPhoto:
		return photoTags
	case DirGPS:
		return gpsTags
	case DirIop:
		return iopTags
	default:
		return nil
	}
}

// TagName returns the canonical name of a tag within a directory. Tags absent
// from the tables render as Unknown_0xXXXX so they survive display and
// round-trips.
func TagName(dir Dir, id uint16) string {
	if info, ok := tableFor(dir)[id]; ok {
		return info.Name
	}
	return fmt.Sprintf("Unknown_0x%04X", id)
}

// TagType returns the default wire type for a tag, or TypeUndefined when the
// tag is not in the tables.
func TagType(dir Dir, id uint16) Type {
	if info, ok := tableFor(dir)[id]; ok {
		return info.Type
	}
	return TypeUndefined
}

// LookupTag resolves a tag name to its directory and ID. Names may be
// qualified as "Dir.Name" (for example "GPSInfo.GPSLatitude"); unqualified
// names search Image, then Photo, then GPS, then Iop. Unknown_0xXXXX names
// resolve to the hex ID in the Image directory.
func LookupTag(name string) (Dir, uint16, bool) {
	dirs := Dirs[:4]
	if prefix, rest, ok := strings.Cut(name, "."); ok {
		for _, d := range Dirs {
			if d.String() == prefix {
				dirs = []Dir{d}
				name = rest
				break
			}
		}
	}

	if hex, ok := strings.CutPrefix(name, "Unknown_0x"); ok {
		id, err := strconv.ParseUint(hex, 16, 16)
		if err == nil {
			d := DirImage
			if len(dirs) == 1 {
				d = dirs[0]
			}
			return d, uint16(id), true
		}
	}

	for _, d := range dirs {
		for id, info := range tableFor(d) {
			if info.Name == name {
				return d, id, true
			}
		}
	}
	return DirImage, 0, false
}
