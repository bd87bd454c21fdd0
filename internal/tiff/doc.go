// Package tiff reads and writes the TIFF structure that carries EXIF data.
//
// The decoder walks the IFD offset chain defensively: every offset and length
// is bounds-checked before use, visited directories are tracked to refuse
// offset cycles, and directory counts are capped. The encoder lays out a
// deterministic stream and recomputes all structural offsets, so a decoded
// set re-encodes without drift.
package tiff
