// Package exif models EXIF metadata independent of any container format.
//
// It defines the TIFF value types and their wire sizes, the tag tables for the
// Image (IFD0), Photo, GPS Info, Interoperability, and Thumbnail directories,
// and the Metadata set that the tiff package decodes into and encodes from.
// Values keep their raw payload bytes and decode through accessors, so
// malformed files produce errors rather than panics.
package exif
