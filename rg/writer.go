package rg

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat means the requested output format cannot hold the
// two-channel raster.
var ErrUnsupportedFormat = errors.New("rg: unsupported output format")

// Block-compressed container tokens callers sometimes request by mistake.
// Compressing the raster is a downstream stage, not an encode format.
var blockFormats = map[string]struct{}{
	"astc": {},
	"bc5":  {},
	"dds":  {},
	"dxt1": {},
	"dxt5": {},
}

type encoder struct {
	w io.Writer
}

func (e *encoder) png(m *Image) error {
	return png.Encode(e.w, m)
}

func (e *encoder) tiff(m *Image) error {
	return tiff.Encode(e.w, m, &tiff.Options{Compression: tiff.Deflate})
}

// CheckFormat reports whether format names a raster format Encode can
// produce, letting callers refuse a bad token before doing any work.
func CheckFormat(format string) error {
	switch f := strings.ToLower(format); f {
	case "", "png", "tiff", "tif":
		return nil
	default:
		if _, ok := blockFormats[f]; ok {
			return fmt.Errorf("%w: %q is a block-compressed container, compress the raster downstream instead", ErrUnsupportedFormat, format)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode writes the Image m to w in the named raster format. Supported
// formats are "png" (the default for an empty token) and "tiff"; anything
// else fails with ErrUnsupportedFormat before any bytes are written.
func Encode(w io.Writer, m *Image, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	e := &encoder{w: w}
	switch strings.ToLower(format) {
	case "tiff", "tif":
		return e.tiff(m)
	default:
		return e.png(m)
	}
}
