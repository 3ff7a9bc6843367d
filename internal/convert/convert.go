// Package convert runs the image-to-hex pipeline: decode, resize, grayscale,
// then write one scaled hex token per pixel.
package convert

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	resample "github.com/disintegration/imaging"

	"github.com/ironsheep/img2hex/internal/hexfile"
	"github.com/ironsheep/img2hex/internal/imaging"
)

// ErrInvalidArgument marks errors caused by malformed command-line input.
var ErrInvalidArgument = errors.New("invalid argument")

// Config describes one conversion.
type Config struct {
	// Input is the path of the source image.
	Input string

	// Width and Height are the target raster dimensions in pixels.
	Width  int
	Height int

	// Output is the hex file to write. Empty means hexfile.DefaultPath.
	Output string

	// Filter names the resample filter. Empty means imaging.DefaultFilter.
	Filter string

	// Preview, when set, is a PNG path that receives the grayscale raster
	// that was encoded.
	Preview string

	// Logger receives debug messages. Nil disables logging.
	Logger *log.Logger
}

// ParseSize converts width and height arguments to integers.
func ParseSize(width, height string) (int, int, error) {
	w, err := strconv.Atoi(width)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q is not an integer", ErrInvalidArgument, width)
	}
	h, err := strconv.Atoi(height)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q is not an integer", ErrInvalidArgument, height)
	}
	return w, h, nil
}

// Validate checks the configuration before any file is touched.
func (c *Config) Validate() error {
	_, err := c.resampleFilter()
	return err
}

// resampleFilter validates the configuration and returns the filter it names.
func (c *Config) resampleFilter() (resample.ResampleFilter, error) {
	if c.Input == "" {
		return resample.ResampleFilter{}, fmt.Errorf("%w: image path is required", ErrInvalidArgument)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return resample.ResampleFilter{}, fmt.Errorf("%w: target size %dx%d must be positive", ErrInvalidArgument, c.Width, c.Height)
	}
	filter, err := imaging.ParseFilter(c.Filter)
	if err != nil {
		return resample.ResampleFilter{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return filter, nil
}

func (c *Config) outputPath() string {
	if c.Output == "" {
		return hexfile.DefaultPath
	}
	return c.Output
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// Prepare decodes the input and produces the grayscale raster that will be
// encoded, resized to exactly Width x Height.
func Prepare(cfg *Config) (*image.Gray, error) {
	filter, err := cfg.resampleFilter()
	if err != nil {
		return nil, err
	}

	src, info, err := imaging.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	cfg.logf("Loaded %s: %dx%d %s (alpha: %v)", cfg.Input, info.Width, info.Height, info.Format, info.HasAlpha)

	resized, err := imaging.Resize(src, cfg.Width, cfg.Height, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	return imaging.Grayscale(resized), nil
}

// Convert runs the pipeline and writes the tokens to w instead of a file.
// Preview and Output are ignored.
func Convert(cfg *Config, w io.Writer) error {
	gray, err := Prepare(cfg)
	if err != nil {
		return err
	}
	return hexfile.Encode(w, gray)
}

// Run runs the pipeline and writes the output file, plus the preview PNG when
// one is configured. The output file is only created once the input has been
// decoded and resized successfully.
func Run(cfg *Config) error {
	gray, err := Prepare(cfg)
	if err != nil {
		return err
	}

	out := cfg.outputPath()
	if err := hexfile.WriteFile(out, gray); err != nil {
		return err
	}
	cfg.logf("Wrote %d tokens to %s", len(gray.Pix), out)

	if cfg.Preview != "" {
		if err := imgio.Save(cfg.Preview, gray, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		cfg.logf("Wrote preview to %s", cfg.Preview)
	}
	return nil
}
