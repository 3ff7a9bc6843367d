package imaging

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/sergeymakinen/go-bmp"
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// bmpMagic is the two-byte signature at the start of every BMP file.
const bmpMagic = "BM"

// DecodeError reports that a file was readable but its contents could not be
// decoded as an image.
//
// Callers can detect it with errors.As; Unwrap returns the decoder's error.
type DecodeError struct {
	// Path is the file that failed to decode.
	Path string

	// Err is the error returned by the underlying decoder.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SourceInfo contains metadata about a decoded source image.
type SourceInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the detected format name, e.g. "png", "jpeg", "bmp".
	// Detection is based on file contents.
	Format string

	// HasAlpha indicates whether the decoded raster carries an alpha channel.
	HasAlpha bool
}

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path to the image.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format
//     and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - *SourceInfo: Dimensions and detected format of the image.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - Returns a wrapped *os.PathError if the file does not exist or cannot be read
//   - Returns *DecodeError if the contents are not a supported image
func Load(path string) (image.Image, *SourceInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var (
		img    image.Image
		format string
	)
	if magic, _ := r.Peek(len(bmpMagic)); string(magic) == bmpMagic {
		img, err = bmp.Decode(r)
		format = "bmp"
	} else {
		img, format, err = image.Decode(r)
	}
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	return img, &SourceInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha(img),
	}, nil
}

// hasAlpha reports whether the concrete raster type stores an alpha channel.
func hasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	case *image.Paletted:
		// Only palettes with a translucent entry carry alpha
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
