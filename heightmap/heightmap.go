/*
Package heightmap implements loading and preparation of 16-bit grayscale
heightmaps.

A heightmap stores one elevation sample per pixel as an unsigned 16-bit
value. The grid is row-major with dimensions fixed at construction and is
not mutated after load; the normalize and resize helpers return new grids.
*/
package heightmap

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// MaxSample is the largest representable elevation sample.
const MaxSample = 1<<16 - 1

var (
	// ErrSampleRange means a source sample fell outside [0, MaxSample].
	ErrSampleRange = errors.New("heightmap: sample outside 16-bit range")

	errBadSize = errors.New("heightmap: dimensions must be positive")
)

// Grid is a width by height row-major grid of 16-bit elevation samples.
type Grid struct {
	width, height int
	samples       []uint16
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		samples: make([]uint16, width*height),
	}
}

// FromSamples builds a Grid from raw row-major samples as produced by
// decoders with a wider or signed output type. It fails with ErrSampleRange
// if any sample cannot be represented in 16 bits.
func FromSamples(width, height int, samples []int32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("heightmap: have %d samples, want %d", len(samples), width*height)
	}

	g := newGrid(width, height)
	for i, s := range samples {
		if s < 0 || s > MaxSample {
			return nil, fmt.Errorf("%w: %d at index %d", ErrSampleRange, s, i)
		}
		g.samples[i] = uint16(s)
	}
	return g, nil
}

// Width returns the number of samples per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the sample at (x, y).
func (g *Grid) At(x, y int) uint16 {
	return g.samples[y*g.width+x]
}

// Row returns the samples of row y.
func (g *Grid) Row(y int) []uint16 {
	return g.samples[y*g.width : (y+1)*g.width]
}

// MinMax returns the smallest and largest sample in the grid.
func (g *Grid) MinMax() (min, max uint16) {
	min = MaxSample
	for _, s := range g.samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return
}

// Normalize returns a copy of the grid with the sample range stretched so
// that the smallest sample maps to 0 and the largest to MaxSample. A flat
// grid maps to all zeroes. The receiver is left unchanged.
func (g *Grid) Normalize() *Grid {
	min, max := g.MinMax()

	out := newGrid(g.width, g.height)
	if min == max {
		return out
	}

	span := uint64(max - min)
	for i, s := range g.samples {
		out.samples[i] = uint16(uint64(s-min) * MaxSample / span)
	}
	return out
}

// Gray16 returns the grid as a 16-bit grayscale image.
func (g *Grid) Gray16() *image.Gray16 {
	m := image.NewGray16(image.Rect(0, 0, g.width, g.height))
	for i, s := range g.samples {
		m.Pix[i<<1] = uint8(s >> 8)
		m.Pix[i<<1+1] = uint8(s)
	}
	return m
}

// Resize resamples the grid to width by height using Catmull-Rom
// interpolation at full 16-bit precision.
func (g *Grid) Resize(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}
	if width == g.width && height == g.height {
		return g, nil
	}

	src := g.Gray16()
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	out := newGrid(width, height)
	for i := range out.samples {
		out.samples[i] = uint16(dst.Pix[i<<1])<<8 | uint16(dst.Pix[i<<1+1])
	}
	return out, nil
}
