package splitmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/terrainops/splitmap/heightmap"
)

const previewMaxEdge = 256

// Preview renders a small paletted GIF thumbnail of the heightmap at input
// for quick visual inspection. The 16-bit samples are scaled down so the
// longest edge is at most 256 pixels, then quantized to a 256 color
// palette.
func (m *SplitMap) Preview(input, output string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	defer f.Close()

	grid, err := heightmap.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	width, height := previewSize(grid.Width(), grid.Height())
	if grid, err = grid.Resize(width, height); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	gray := grid.Gray16()

	q := quantize.MedianCutQuantizer{}
	p := image.NewPaletted(gray.Bounds(), q.Quantize(make(color.Palette, 0, 256), gray))
	draw.Draw(p, p.Bounds(), gray, gray.Bounds().Min, draw.Src)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	defer out.Close()

	if err := gif.Encode(out, p, nil); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	m.logger.Printf("wrote %dx%d preview of \"%s\" to \"%s\"\n", width, height, input, output)

	return nil
}

func previewSize(width, height int) (int, int) {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= previewMaxEdge {
		return width, height
	}

	scale := func(n int) int {
		if n = n * previewMaxEdge / longest; n > 0 {
			return n
		}
		return 1
	}
	return scale(width), scale(height)
}
