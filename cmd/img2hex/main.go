package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ironsheep/img2hex/internal/convert"
	"github.com/ironsheep/img2hex/internal/hexfile"
	"github.com/ironsheep/img2hex/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

// run executes the command with args and returns the process exit code.
// Diagnostics go to stderr; the tool itself prints nothing on success.
func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)

	var debug *log.Logger
	if os.Getenv("IMG2HEX_LOG_LEVEL") == "debug" {
		debug = logger
		debug.Printf("img2hex v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cmd := newCommand(debug)
	cmd.ErrWriter = stderr
	if err := cmd.Run(context.Background(), args); err != nil {
		logger.Printf("Conversion error: %v", err)
		return 1
	}
	return 0
}

// newCommand builds the CLI. Debug messages from the pipeline go to logger,
// which may be nil.
func newCommand(logger *log.Logger) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		w := cmd.Root().Writer
		fmt.Fprintf(w, "img2hex %s\n", cmd.Root().Version)
		fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	}

	return &cli.Command{
		Name:      "img2hex",
		Usage:     "convert an image into a hex memory-initialization file of grayscale intensities",
		ArgsUsage: "<image_path> <width> <height>",
		Description: "Resizes the image to exactly width x height, converts it to grayscale " +
			"(BT.601 luma) and writes one lowercase hex token per pixel, row by row. " +
			"Each token is the pixel intensity multiplied by 16.\n\n" +
			"Set IMG2HEX_LOG_LEVEL=debug to enable debug logging on stderr.",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   hexfile.DefaultPath,
				Usage:   "hex file to write (truncated if it exists)",
				Sources: cli.EnvVars("IMG2HEX_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Value:   imaging.DefaultFilter,
				Usage:   "resample filter: " + strings.Join(imaging.FilterNames(), ", "),
				Sources: cli.EnvVars("IMG2HEX_FILTER"),
			},
			&cli.StringFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   "also write the encoded grayscale raster to this PNG path",
				Sources: cli.EnvVars("IMG2HEX_PREVIEW"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 3 {
				return fmt.Errorf("%w: expected <image_path> <width> <height>, got %d arguments",
					convert.ErrInvalidArgument, cmd.Args().Len())
			}

			width, height, err := convert.ParseSize(cmd.Args().Get(1), cmd.Args().Get(2))
			if err != nil {
				return err
			}

			return convert.Run(&convert.Config{
				Input:   cmd.Args().Get(0),
				Width:   width,
				Height:  height,
				Output:  cmd.String("output"),
				Filter:  cmd.String("filter"),
				Preview: cmd.String("preview"),
				Logger:  logger,
			})
		},
	}
}
