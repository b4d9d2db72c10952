// Package main is the entry point for the text-to-cw command, which
// converts text into a morse code audio file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tcort/text-to-cw/internal/apperrors"
	"github.com/tcort/text-to-cw/internal/audio"
	"github.com/tcort/text-to-cw/internal/config"
	"github.com/tcort/text-to-cw/internal/morse"
	"github.com/tcort/text-to-cw/pkg/logger"
	"github.com/tcort/text-to-cw/pkg/version"
)

func main() {
	cmd := &cli.Command{
		Name:      "text-to-cw",
		Usage:     "convert text into a morse code audio file",
		ArgsUsage: "INPUT OUTPUT",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "wpm",
				Aliases: []string{"w"},
				Value:   config.DefaultWPM,
				Usage:   "words per minute",
			},
			&cli.IntFlag{
				Name:    "fwpm",
				Aliases: []string{"f"},
				Usage:   "Farnsworth spacing words per minute",
			},
			&cli.IntFlag{
				Name:    "tone",
				Aliases: []string{"t"},
				Value:   config.DefaultToneFrequency,
				Usage:   "frequency of the generated tone in Hertz",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML settings file",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "display version information and exit",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("%v", err)
	}
}

func run(_ context.Context, c *cli.Command) error {
	if c.Bool("version") {
		fmt.Printf("text-to-cw v%s\n", version.Version)
		return nil
	}

	cfg := config.Load()
	if path := c.String("config"); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return apperrors.InputUnavailable("could not load settings").Wrap(err)
		}
	}
	if c.IsSet("wpm") {
		cfg.WPM = int(c.Int("wpm"))
	}
	if c.IsSet("fwpm") {
		cfg.FWPM = int(c.Int("fwpm"))
	}
	if c.IsSet("tone") {
		cfg.ToneFrequency = int(c.Int("tone"))
	}
	cfg.Normalize()

	logger.Initialize(cfg.Debug)
	logger.Debug("wpm=%d fwpm=%d tone=%dHz", cfg.WPM, cfg.FWPM, cfg.ToneFrequency)

	if c.Args().Len() != 2 {
		return apperrors.InvalidInput("expected INPUT and OUTPUT arguments (see --help)")
	}
	inputPath := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	input, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := input.Close(); err != nil {
			logger.Error("could not close input: %v", err)
		}
	}()

	gen := morse.NewGenerator(cfg)
	if err := gen.Run(input); err != nil {
		return err
	}
	logger.Debug("synthesized %d samples", gen.Len())

	if err := audio.Encode(outputPath, gen.Samples(), audio.FormatCW); err != nil {
		return apperrors.Encoding("could not encode %s", outputPath).Wrap(err)
	}
	logger.Info("encoding: succeeded")
	return nil
}

// openInput opens the input byte stream. The path "-" reads stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputUnavailable("could not open input file '%s'", path).Wrap(err)
	}
	return f, nil
}
