package tiff

import (
	"encoding/binary"
	"fmt"
	"sort"

	"exifio/internal/exif"
)

// Encode serializes a metadata set to a TIFF stream in the set's byte order.
// Layout is deterministic: header, IFD0, Exif IFD, Interoperability IFD, GPS
// IFD, IFD1, the shared value area (2-byte aligned), then the thumbnail
// stream. Pointer tags and thumbnail locators are materialized from structure,
// so Decode(Encode(md)) yields an equal set.
func Encode(md *exif.Metadata) ([]byte, error) {
	order := md.Order
	if order == nil {
		order = binary.BigEndian
	}

	w := &writer{order: order}

	ifd0 := w.planFields(exif.DirImage, md)
	photo := w.planFields(exif.DirPhoto, md)
	gps := w.planFields(exif.DirGPS, md)
	iop := w.planFields(exif.DirIop, md)
	ifd1 := w.planFields(exif.DirThumbnail, md)

	hasThumb := len(md.Thumbnail) > 0
	if hasThumb {
		// Locator payloads are patched once the layout is known.
		ifd1 = append(ifd1,
			&entryPlan{id: exif.TagJPEGInterchangeFormat, typ: exif.TypeLong, count: 1, payload: make([]byte, 4)},
			&entryPlan{id: exif.TagJPEGInterchangeFormatLen, typ: exif.TypeLong, count: 1, payload: make([]byte, 4)},
		)
	}

	// An Interoperability IFD is only reachable through the Exif IFD.
	if len(iop) > 0 || len(photo) > 0 {
		photoPointer := &entryPlan{id: exif.TagExifIFD, typ: exif.TypeLong, count: 1, payload: make([]byte, 4)}
		ifd0 = append(ifd0, photoPointer)
		if len(iop) > 0 {
			photo = append(photo, &entryPlan{id: exif.TagInteroperabilityIFD, typ: exif.TypeLong, count: 1, payload: make([]byte, 4)})
		}
	}
	if len(gps) > 0 {
		ifd0 = append(ifd0, &entryPlan{id: exif.TagGPSIFD, typ: exif.TypeLong, count: 1, payload: make([]byte, 4)})
	}

	ifds := []*ifdPlan{{dir: exif.DirImage, entries: ifd0}}
	var photoPlan, gpsPlan, iopPlan, thumbPlan *ifdPlan
	if len(photo) > 0 {
		photoPlan = &ifdPlan{dir: exif.DirPhoto, entries: photo}
		ifds = append(ifds, photoPlan)
	}
	if len(iop) > 0 {
		iopPlan = &ifdPlan{dir: exif.DirIop, entries: iop}
		ifds = append(ifds, iopPlan)
	}
	if len(gps) > 0 {
		gpsPlan = &ifdPlan{dir: exif.DirGPS, entries: gps}
		ifds = append(ifds, gpsPlan)
	}
	if len(ifd1) > 0 {
		thumbPlan = &ifdPlan{dir: exif.DirThumbnail, entries: ifd1}
		ifds = append(ifds, thumbPlan)
	}

	// Pass 1: directory offsets.
	offset := uint32(headerSize)
	for _, ifd := range ifds {
		sort.Slice(ifd.entries, func(i, j int) bool { return ifd.entries[i].id < ifd.entries[j].id })
		ifd.offset = offset
		offset += ifd.size()
	}

	// Pass 2: value-area offsets for payloads larger than the inline slot.
	for _, ifd := range ifds {
		for _, e := range ifd.entries {
			if len(e.payload) <= 4 {
				continue
			}
			offset = align2(offset)
			e.valueOffset = offset
			offset += uint32(len(e.payload))
		}
	}

	thumbOffset := align2(offset)
	total := thumbOffset + uint32(len(md.Thumbnail))

	// Patch structural pointers now that every offset is known.
	patch := func(entries []*entryPlan, id uint16, target uint32) {
		for _, e := range entries {
			if e.id == id {
				order.PutUint32(e.payload, target)
				return
			}
		}
	}
	if photoPlan != nil {
		patch(ifd0, exif.TagExifIFD, photoPlan.offset)
	}
	if gpsPlan != nil {
		patch(ifd0, exif.TagGPSIFD, gpsPlan.offset)
	}
	if iopPlan != nil {
		patch(photo, exif.TagInteroperabilityIFD, iopPlan.offset)
	}
	if hasThumb {
		patch(ifd1, exif.TagJPEGInterchangeFormat, thumbOffset)
		patch(ifd1, exif.TagJPEGInterchangeFormatLen, uint32(len(md.Thumbnail)))
	}

	// Pass 3: serialize.
	out := make([]byte, total)
	if order == binary.LittleEndian {
		out[0], out[1] = 'I', 'I'
	} else {
		out[0], out[1] = 'M', 'M'
	}
	order.PutUint16(out[2:], 42)
	order.PutUint32(out[4:], ifds[0].offset)

	for i, ifd := range ifds {
		next := uint32(0)
		if ifd.dir == exif.DirImage && thumbPlan != nil {
			next = thumbPlan.offset
		}
		if err := ifd.write(out, order, next); err != nil {
			return nil, fmt.Errorf("write %s IFD %d: %w", ifd.dir, i, err)
		}
	}

	copy(out[thumbOffset:], md.Thumbnail)
	return out, nil
}

type entryPlan struct {
	id          uint16
	typ         exif.Type
	count       uint32
	payload     []byte
	valueOffset uint32
}

type ifdPlan struct {
	dir     exif.Dir
	entries []*entryPlan
	offset  uint32
}

func (p *ifdPlan) size() uint32 {
	return 2 + uint32(len(p.entries))*entrySize + 4
}

func (p *ifdPlan) write(out []byte, order binary.ByteOrder, next uint32) error {
	order.PutUint16(out[p.offset:], uint16(len(p.entries)))
	pos := p.offset + 2
	for _, e := range p.entries {
		order.PutUint16(out[pos:], e.id)
		order.PutUint16(out[pos+2:], uint16(e.typ))
		order.PutUint32(out[pos+4:], e.count)
		if len(e.payload) <= 4 {
			copy(out[pos+8:pos+12], e.payload)
		} else {
			order.PutUint32(out[pos+8:], e.valueOffset)
			if int(e.valueOffset)+len(e.payload) > len(out) {
				return ErrTruncated
			}
			copy(out[e.valueOffset:], e.payload)
		}
		pos += entrySize
	}
	order.PutUint32(out[pos:], next)
	return nil
}

func (w *writer) planFields(dir exif.Dir, md *exif.Metadata) []*entryPlan {
	fields := md.Fields(dir)
	plans := make([]*entryPlan, 0, len(fields))
	for _, f := range fields {
		plans = append(plans, &entryPlan{
			id:      f.ID,
			typ:     f.Value.Type,
			count:   f.Value.Count,
			payload: f.Value.Encoded(w.order),
		})
	}
	return plans
}

type writer struct {
	order binary.ByteOrder
}

func align2(off uint32) uint32 {
	return off + off%2
}
