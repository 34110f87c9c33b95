package rg

import (
	"runtime"
	"sync"

	"github.com/terrainops/splitmap/heightmap"
)

// Grids with at least this many samples are split across a pool of row-band
// workers. The transform has no cross-cell dependency so the result is
// identical to the serial path.
const parallelThreshold = 1 << 20

// Split converts a 16-bit grid into its two-channel byte representation.
// Every sample is stored big-endian as (sample/256, sample%256), which is
// lossless over the full 16-bit range. The output dimensions match the
// input and the input is not modified.
func Split(g *heightmap.Grid) *Image {
	m := NewImage(g.Width(), g.Height())

	if g.Width()*g.Height() >= parallelThreshold {
		splitParallel(g, m)
	} else {
		splitBand(g, m, 0, g.Height())
	}
	return m
}

func splitBand(g *heightmap.Grid, m *Image, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := g.Row(y)
		pix := m.Pix[y*m.Stride : y*m.Stride+m.Stride]
		for x, s := range row {
			pix[x<<1] = uint8(s >> 8)
			pix[x<<1+1] = uint8(s)
		}
	}
}

func splitParallel(g *heightmap.Grid, m *Image) {
	workers := runtime.NumCPU()
	if workers > g.Height() {
		workers = g.Height()
	}
	band := (g.Height() + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < g.Height(); y0 += band {
		y1 := y0 + band
		if y1 > g.Height() {
			y1 = g.Height()
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			splitBand(g, m, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
