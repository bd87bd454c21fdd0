package tiff

import (
	"encoding/binary"

	"exifio/internal/exif"
)

// Decode parses a TIFF stream into a metadata set. It walks IFD0, the Exif,
// GPS and Interoperability sub-IFDs, and IFD1, with every offset bounds-checked
// and the visited set guarding against offset cycles. Pointer tags and the
// IFD1 thumbnail locators are consumed structurally; the thumbnail stream is
// returned on the metadata itself.
func Decode(data []byte) (*exif.Metadata, error) {
	if len(data) < headerSize {
		return nil, parseErr(0, ErrTruncated)
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, parseErr(0, ErrBadHeader)
	}
	if order.Uint16(data[2:]) != 42 {
		return nil, parseErr(2, ErrBadHeader)
	}

	md := exif.NewMetadata()
	md.Order = order

	d := &decoder{data: data, order: order, md: md, visited: make(map[uint32]struct{})}

	next, err := d.readIFD(order.Uint32(data[4:]), exif.DirImage)
	if err != nil {
		return nil, err
	}
	if next != 0 {
		if _, err := d.readIFD(next, exif.DirThumbnail); err != nil {
			return nil, err
		}
		if err := d.extractThumbnail(); err != nil {
			return nil, err
		}
	}
	return md, nil
}

type decoder struct {
	data    []byte
	order   binary.ByteOrder
	md      *exif.Metadata
	visited map[uint32]struct{}
	ifds    int
	entries int
}

// readIFD decodes one directory and returns the offset of the next IFD in the
// chain (zero when the chain ends).
func (d *decoder) readIFD(offset uint32, dir exif.Dir) (uint32, error) {
	if offset == 0 {
		return 0, nil
	}
	if _, seen := d.visited[offset]; seen {
		return 0, parseErr(offset, ErrCycle)
	}
	d.visited[offset] = struct{}{}

	d.ifds++
	if d.ifds > maxIFDs {
		return 0, parseErr(offset, ErrTooLarge)
	}

	end := uint64(len(d.data))
	if uint64(offset)+2 > end {
		return 0, parseErr(offset, ErrTruncated)
	}
	count := uint64(d.order.Uint16(d.data[offset:]))

	d.entries += int(count)
	if d.entries > maxEntries {
		return 0, parseErr(offset, ErrTooLarge)
	}

	tableEnd := uint64(offset) + 2 + count*entrySize + 4
	if tableEnd > end {
		return 0, parseErr(offset, ErrTruncated)
	}

	var exifOff, gpsOff, iopOff uint32
	for i := uint64(0); i < count; i++ {
		entry := d.data[uint64(offset)+2+i*entrySize:]
		tag := d.order.Uint16(entry)
		typ := exif.Type(d.order.Uint16(entry[2:]))
		cnt := d.order.Uint32(entry[4:])

		payload, err := d.payload(entry, typ, cnt, offset)
		if err != nil {
			return 0, err
		}

		// Sub-IFD pointers are followed, not stored.
		switch {
		case dir == exif.DirImage && tag == exif.TagExifIFD:
			exifOff = d.order.Uint32(entry[8:])
			continue
		case dir == exif.DirImage && tag == exif.TagGPSIFD:
			gpsOff = d.order.Uint32(entry[8:])
			continue
		case dir == exif.DirPhoto && tag == exif.TagInteroperabilityIFD:
			iopOff = d.order.Uint32(entry[8:])
			continue
		}

		d.md.Set(dir, tag, exif.Value{Type: typ, Count: cnt, Order: d.order, Data: payload})
	}

	if exifOff != 0 {
		if _, err := d.readIFD(exifOff, exif.DirPhoto); err != nil {
			return 0, err
		}
	}
	if gpsOff != 0 {
		if _, err := d.readIFD(gpsOff, exif.DirGPS); err != nil {
			return 0, err
		}
	}
	if iopOff != 0 {
		if _, err := d.readIFD(iopOff, exif.DirIop); err != nil {
			return 0, err
		}
	}

	return d.order.Uint32(d.data[uint64(offset)+2+count*entrySize:]), nil
}

// payload extracts an entry's value bytes, inline when they fit the 4-byte
// slot and via bounds-checked offset otherwise. Unknown types keep the raw
// inline slot so foreign fields survive a round-trip.
func (d *decoder) payload(entry []byte, typ exif.Type, cnt uint32, ifdOffset uint32) ([]byte, error) {
	size := typ.Size()
	if size == 0 {
		out := make([]byte, 4)
		copy(out, entry[8:12])
		return out, nil
	}

	total := uint64(size) * uint64(cnt)
	if total <= 4 {
		out := make([]byte, total)
		copy(out, entry[8:8+total])
		return out, nil
	}

	valOff := d.order.Uint32(entry[8:])
	if uint64(valOff)+total > uint64(len(d.data)) {
		return nil, parseErr(valOff, ErrTruncated)
	}
	out := make([]byte, total)
	copy(out, d.data[valOff:uint64(valOff)+total])
	return out, nil
}

// extractThumbnail lifts the embedded JPEG stream out of IFD1 and drops the
// locator tags, which are recomputed on encode.
func (d *decoder) extractThumbnail() error {
	offVal, okOff := d.md.Get(exif.DirThumbnail, exif.TagJPEGInterchangeFormat)
	lenVal, okLen := d.md.Get(exif.DirThumbnail, exif.TagJPEGInterchangeFormatLen)
	if !okOff || !okLen {
		return nil
	}

	start, err := offVal.Uint(0)
	if err != nil {
		return nil
	}
	length, err := lenVal.Uint(0)
	if err != nil {
		return nil
	}

	if uint64(start)+uint64(length) > uint64(len(d.data)) {
		return parseErr(start, ErrTruncated)
	}

	d.md.Thumbnail = make([]byte, length)
	copy(d.md.Thumbnail, d.data[start:start+length])
	d.md.Remove(exif.DirThumbnail, exif.TagJPEGInterchangeFormat)
	d.md.Remove(exif.DirThumbnail, exif.TagJPEGInterchangeFormatLen)
	return nil
}
