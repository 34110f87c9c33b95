/*
Package rg implements the two-channel 8-bit image produced from a 16-bit
heightmap.

Each 16-bit sample is stored as its two big-endian bytes, red carrying the
high byte and green the low byte, so the original value is recoverable per
pixel as high*256+low. This keeps full 16-bit precision inside an
8-bit-per-channel container and is the channel layout a BC5 block encoder
consumes; the block compression itself is a later, separate stage.
*/
package rg

import (
	"image"
	"image/color"
)

// Image is an in-memory two-channel image. It implements image.Image with
// the high byte in red, the low byte in green, blue zero and full alpha.
type Image struct {
	// Pix holds the channel pairs in row-major order as high, low,
	// high, low, ...
	Pix []uint8
	// Stride is the Pix distance between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewImage returns a zeroed Image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, 2*width*height),
		Stride: 2 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (p *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.pixOffset(x, y)
	return color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: 0, A: 0xff}
}

// Opaque always reports true; the alpha channel is unused.
func (p *Image) Opaque() bool {
	return true
}

// PairAt returns the (high, low) channel pair at (x, y).
func (p *Image) PairAt(x, y int) (high, low uint8) {
	i := p.pixOffset(x, y)
	return p.Pix[i], p.Pix[i+1]
}

// SampleAt reconstructs the original 16-bit sample at (x, y).
func (p *Image) SampleAt(x, y int) uint16 {
	high, low := p.PairAt(x, y)
	return uint16(high)<<8 | uint16(low)
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
