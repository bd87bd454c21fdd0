package tiff

import (
	"errors"
	"fmt"
)

const (
	headerSize = 8
	entrySize  = 12

	// Traversal caps. Real files hold a handful of IFDs and a few hundred
	// entries; anything past these limits is hostile or corrupt.
	maxIFDs    = 32
	maxEntries = 4096
)

var (
	// ErrBadHeader reports input that does not start with a TIFF header.
	ErrBadHeader = errors.New("tiff: not a TIFF stream")
	// ErrTruncated reports an offset or length that runs past the input.
	ErrTruncated = errors.New("tiff: truncated input")
	// ErrCycle reports an IFD offset chain that revisits a directory.
	ErrCycle = errors.New("tiff: IFD offset cycle")
	// ErrTooLarge reports a directory structure past the traversal caps.
	ErrTooLarge = errors.New("tiff: directory structure too large")
)

// ParseError wraps a decode failure with the byte offset it occurred at.
type ParseError struct {
	Offset uint32
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %#x", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(offset uint32, err error) error {
	return &ParseError{Offset: offset, Err: err}
}
