package rg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainops/splitmap/heightmap"
)

func mustGrid(t *testing.T, width, height int, samples []int32) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.FromSamples(width, height, samples)
	require.NoError(t, err)
	return g
}

func TestSplitScenarios(t *testing.T) {
	tables := []struct {
		sample    int32
		high, low uint8
	}{
		{0, 0, 0},
		{65535, 255, 255},
		{256, 1, 0},
		{255, 0, 255},
	}

	for _, table := range tables {
		g := mustGrid(t, 1, 1, []int32{table.sample})
		m := Split(g)

		high, low := m.PairAt(0, 0)
		assert.Equal(t, table.high, high, "high byte of %d", table.sample)
		assert.Equal(t, table.low, low, "low byte of %d", table.sample)
	}
}

func TestSplitGrid(t *testing.T) {
	g := mustGrid(t, 2, 2, []int32{
		0, 65535,
		256, 255,
	})
	m := Split(g)

	want := [2][2][2]uint8{
		{{0, 0}, {255, 255}},
		{{1, 0}, {0, 255}},
	}
	for y := range want {
		for x := range want[y] {
			high, low := m.PairAt(x, y)
			assert.Equal(t, want[y][x][0], high)
			assert.Equal(t, want[y][x][1], low)
		}
	}
}

func TestSplitShape(t *testing.T) {
	g := mustGrid(t, 5, 3, make([]int32, 15))
	m := Split(g)

	assert.Equal(t, 5, m.Bounds().Dx())
	assert.Equal(t, 3, m.Bounds().Dy())
}

func TestSplitRoundTrip(t *testing.T) {
	const width, height = 64, 48

	r := rand.New(rand.NewSource(1))
	samples := make([]int32, width*height)
	for i := range samples {
		samples[i] = r.Int31n(heightmap.MaxSample + 1)
	}
	g := mustGrid(t, width, height, samples)

	m := Split(g)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			require.Equal(t, g.At(x, y), m.SampleAt(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	g := mustGrid(t, 4, 4, []int32{
		1, 2, 3, 4,
		1000, 2000, 3000, 4000,
		65535, 32768, 256, 255,
		0, 1, 65534, 513,
	})

	assert.Equal(t, Split(g).Pix, Split(g).Pix)
}

func TestSplitParallelMatchesSerial(t *testing.T) {
	const width, height = 37, 53

	r := rand.New(rand.NewSource(2))
	samples := make([]int32, width*height)
	for i := range samples {
		samples[i] = r.Int31n(heightmap.MaxSample + 1)
	}
	g := mustGrid(t, width, height, samples)

	serial := NewImage(width, height)
	splitBand(g, serial, 0, height)

	parallel := NewImage(width, height)
	splitParallel(g, parallel)

	assert.Equal(t, serial.Pix, parallel.Pix)
}

func TestSplitNormalized(t *testing.T) {
	g := mustGrid(t, 2, 1, []int32{1000, 2000})
	m := Split(g.Normalize())

	high, low := m.PairAt(0, 0)
	assert.Equal(t, uint8(0), high)
	assert.Equal(t, uint8(0), low)

	high, low = m.PairAt(1, 0)
	assert.Equal(t, uint8(255), high)
	assert.Equal(t, uint8(255), low)
}
