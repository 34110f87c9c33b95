package heightmap

import (
	"errors"
	"image"
	"io"

	_ "golang.org/x/image/tiff"
	_ "image/png"
)

// ErrBitDepth means the decoded image does not carry 16 bits per sample.
var ErrBitDepth = errors.New("heightmap: image is not 16-bit grayscale")

// Decode reads a 16-bit grayscale image from r and returns it as a Grid.
// PNG and TIFF sources are supported; anything shallower than 16 bits per
// sample, or carrying color channels, fails with ErrBitDepth.
func Decode(r io.Reader) (*Grid, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromImage(m)
}

func fromImage(m image.Image) (*Grid, error) {
	gray, ok := m.(*image.Gray16)
	if !ok {
		return nil, ErrBitDepth
	}

	b := gray.Bounds()
	g := newGrid(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Row(y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = gray.Gray16At(x, y).Y
		}
	}
	return g, nil
}
