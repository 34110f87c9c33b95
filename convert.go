package splitmap

import (
	"crypto/sha1"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/terrainops/splitmap/heightmap"
	"github.com/terrainops/splitmap/rg"
)

// Config carries the settings for a single conversion. Everything comes
// from the caller; nothing is read from process state.
type Config struct {
	Input     string
	Output    string
	Format    string // "png" or "tiff"; empty means "png"
	Normalize bool   // stretch the sample range to [0, 65535] before splitting
	Resize    string // "WIDTHxHEIGHT", empty to keep the source size
}

func parseResize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) == 2 {
		if width, err = strconv.Atoi(parts[0]); err == nil {
			if height, err = strconv.Atoi(parts[1]); err == nil && width > 0 && height > 0 {
				return width, height, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("invalid resize geometry %q, want WIDTHxHEIGHT", s)
}

// Convert decodes the configured input heightmap, splits it into high/low
// byte channels and writes the result. The output file is written via a
// temporary file in the destination directory and renamed on success, so a
// failed encode never leaves a truncated output behind.
func (m *SplitMap) Convert(cfg Config) error {
	if err := rg.CheckFormat(cfg.Format); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	grid, err := heightmap.Decode(io.TeeReader(f, h))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	if cfg.Resize != "" {
		width, height, err := parseResize(cfg.Resize)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		if grid, err = grid.Resize(width, height); err != nil {
			return fmt.Errorf("transform: %w", err)
		}
	}

	if cfg.Normalize {
		grid = grid.Normalize()
	}

	if m.db != nil {
		output, err := m.db.FindOutput(sha, cfg.Normalize, cfg.Format, grid.Width(), grid.Height())
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		if output == cfg.Output && output != "" {
			if _, err := os.Stat(output); err == nil {
				m.logger.Printf("\"%s\" already converted to \"%s\", skipping\n", cfg.Input, output)
				return nil
			}
		}
	}

	img := rg.Split(grid)

	if err := writeAtomic(cfg.Output, img, cfg.Format); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if m.db != nil {
		min, max := grid.MinMax()
		if err := m.db.Record(sha, cfg.Normalize, cfg.Format, grid.Width(), grid.Height(), min, max, cfg.Output); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}

	m.logger.Printf("converted \"%s\" (%dx%d) to \"%s\"\n", cfg.Input, grid.Width(), grid.Height(), cfg.Output)

	return nil
}

func writeAtomic(path string, img *rg.Image, format string) error {
	f, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}

	if err := rg.Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}

	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return err
	}

	return nil
}
