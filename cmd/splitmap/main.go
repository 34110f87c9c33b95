package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/terrainops/splitmap"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newSplitMap(c *cli.Context) (*splitmap.SplitMap, *splitmap.ConvertDB, error) {
	var db *splitmap.ConvertDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = splitmap.NewConvertDB(file); err != nil {
			return nil, nil, err
		}
	}
	return splitmap.New(db, newLogger(c)), db, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "splitmap"
	app.Usage = "16-bit heightmap to BC5-ready RG image converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPLITMAP_DB"},
			Usage:   "path to conversion manifest database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Split a 16-bit heightmap into high/low byte channels",
			Description: "Red carries the high byte, green the low byte; blue is unused.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Usage:    "path to the 16-bit grayscale heightmap",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Usage:    "path to write the two-channel image to",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "output raster format (png, tiff)",
				},
				&cli.BoolFlag{
					Name:  "normalize",
					Usage: "stretch the sample range to [0, 65535] before splitting",
				},
				&cli.StringFlag{
					Name:  "resize",
					Usage: "resample to WIDTHxHEIGHT before converting",
				},
			},
			Action: func(c *cli.Context) error {
				m, db, err := newSplitMap(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if db != nil {
					defer db.Close()
				}

				if err := m.Convert(splitmap.Config{
					Input:     c.String("input"),
					Output:    c.String("output"),
					Format:    c.String("format"),
					Normalize: c.Bool("normalize"),
					Resize:    c.String("resize"),
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Write a small paletted GIF preview of a heightmap",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, db, err := newSplitMap(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if db != nil {
					defer db.Close()
				}

				if err := m.Preview(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
