// Command qoi2pnm converts a QOI image to a binary PPM (P6) on stdout or a
// file. Because the payload is raw bytes, it refuses to write to a terminal
// unless forced.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	qoi "github.com/ajroetker/go-qoi"
)

var (
	force      bool
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:          "qoi2pnm [flags] file.qoi",
	Short:        "Convert a QOI image to a binary PPM (P6)",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&force, "force", "f", false,
		"write binary output even if stdout is a terminal")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write output to a file instead of stdout")
}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "qoi2pnm").Logger()
	log.Logger = logger
	return logger
}

func main() {
	initLogger()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	} else if isatty.IsTerminal(os.Stdout.Fd()) && !force {
		return fmt.Errorf("refusing to write binary PPM to a terminal, pass -f to override")
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	grid, header, err := qoi.DecodeGrid(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	log.Debug().
		Uint32("width", header.Width).
		Uint32("height", header.Height).
		Uint8("channels", header.Channels).
		Msg("decoded image")

	if err := writePPM(out, grid); err != nil {
		return fmt.Errorf("write PPM: %w", err)
	}
	return nil
}
