// Package exifio reads and writes EXIF metadata in JPEG, PNG, TIFF, and WEBP
// files. It sniffs the container, hands the embedded TIFF stream to the codec,
// and re-embeds edited metadata with atomic file replacement.
package exifio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"exifio/internal/container/jpeg"
	"exifio/internal/container/png"
	"exifio/internal/container/webp"
	"exifio/internal/exif"
	"exifio/internal/fileutil"
	"exifio/internal/tiff"
)

// Format is a supported image container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
	FormatTIFF
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatTIFF:
		return "TIFF"
	case FormatWebP:
		return "WEBP"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownFormat reports input that is none of the supported containers.
	ErrUnknownFormat = errors.New("exifio: unsupported image format")
	// ErrNoExif reports a well-formed image that carries no EXIF block.
	ErrNoExif = errors.New("exifio: no EXIF metadata")
	// ErrUnsupportedOperation reports a recognized format the requested
	// operation cannot handle, as opposed to unrecognized input.
	ErrUnsupportedOperation = errors.New("exifio: operation not supported for this format")
)

// DetectFormat sniffs the container format from the stream's magic bytes.
func DetectFormat(data []byte) Format {
	switch {
	case jpeg.IsJPEG(data):
		return FormatJPEG
	case png.IsPNG(data):
		return FormatPNG
	case webp.IsWebP(data):
		return FormatWebP
	case len(data) >= 4 && (data[0] == 'I' && data[1] == 'I' || data[0] == 'M' && data[1] == 'M'):
		return FormatTIFF
	default:
		return FormatUnknown
	}
}

// extractPayload pulls the raw TIFF stream out of a container.
func extractPayload(format Format, data []byte) ([]byte, error) {
	switch format {
	case FormatJPEG:
		payload, err := jpeg.Extract(data)
		if errors.Is(err, jpeg.ErrNoExif) {
			return nil, ErrNoExif
		}
		return payload, err
	case FormatPNG:
		payload, err := png.Extract(data)
		if errors.Is(err, png.ErrNoExif) {
			return nil, ErrNoExif
		}
		return payload, err
	case FormatWebP:
		payload, err := webp.Extract(data)
		if errors.Is(err, webp.ErrNoExif) {
			return nil, ErrNoExif
		}
		return payload, err
	case FormatTIFF:
		return data, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// DecodeBytes parses the EXIF metadata from an in-memory image.
func DecodeBytes(data []byte) (*exif.Metadata, Format, error) {
	format := DetectFormat(data)
	payload, err := extractPayload(format, data)
	if err != nil {
		return nil, format, err
	}
	md, err := tiff.Decode(payload)
	if err != nil {
		return nil, format, fmt.Errorf("decode %s metadata: %w", format, err)
	}
	return md, format, nil
}

// Decode reads an image stream and parses its EXIF metadata.
func Decode(r io.Reader) (*exif.Metadata, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("read image: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeFile parses the EXIF metadata of an image on disk.
func DecodeFile(path string) (*exif.Metadata, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatUnknown, err
	}
	return DecodeBytes(data)
}

// EncodeBytes returns the image with its EXIF block replaced by md.
func EncodeBytes(data []byte, md *exif.Metadata) ([]byte, error) {
	payload, err := tiff.Encode(md)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	switch DetectFormat(data) {
	case FormatJPEG:
		return jpeg.Insert(data, payload)
	case FormatPNG:
		return png.Insert(data, payload)
	case FormatWebP:
		return webp.Insert(data, payload)
	case FormatTIFF:
		// A bare TIFF file is itself the metadata stream. Re-encoding drops
		// pixel data, so editing full TIFF images in place is refused.
		return nil, fmt.Errorf("%w: in-place TIFF rewrite", ErrUnsupportedOperation)
	default:
		return nil, ErrUnknownFormat
	}
}

// WriteFile replaces the EXIF metadata of the image at path, atomically.
func WriteFile(path string, md *exif.Metadata) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := EncodeBytes(data, md)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, out)
}

// StripBytes returns the image with its EXIF block removed.
func StripBytes(data []byte) ([]byte, error) {
	mapErr := func(out []byte, err error, sentinel error) ([]byte, error) {
		if errors.Is(err, sentinel) {
			return nil, ErrNoExif
		}
		return out, err
	}
	switch DetectFormat(data) {
	case FormatJPEG:
		out, err := jpeg.Strip(data)
		return mapErr(out, err, jpeg.ErrNoExif)
	case FormatPNG:
		out, err := png.Strip(data)
		return mapErr(out, err, png.ErrNoExif)
	case FormatWebP:
		out, err := webp.Strip(data)
		return mapErr(out, err, webp.ErrNoExif)
	case FormatTIFF:
		return nil, fmt.Errorf("%w: stripping a bare TIFF stream", ErrUnsupportedOperation)
	default:
		return nil, ErrUnknownFormat
	}
}

// StripFile removes the EXIF metadata of the image at path, atomically.
func StripFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := StripBytes(data)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, out)
}

// Thumbnail returns the embedded thumbnail stream of the image at path.
func Thumbnail(path string) ([]byte, error) {
	md, _, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if len(md.Thumbnail) == 0 {
		return nil, fmt.Errorf("%w: no embedded thumbnail", ErrNoExif)
	}
	return md.Thumbnail, nil
}
