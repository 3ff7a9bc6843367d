package hexfile

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
)

// Scale is the factor applied to every intensity before formatting.
const Scale = 16

// DefaultPath is the output file written when no path is configured.
const DefaultPath = "img.hex"

// Token formats a single intensity as its scaled hex token.
func Token(intensity uint8) string {
	return strconv.FormatInt(int64(intensity)*Scale, 16)
}

// Encode writes one token per pixel of img to w, row-major, each followed by
// a newline. It returns the first write error encountered.
func Encode(w io.Writer, img *image.Gray) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, err := bw.WriteString(Token(img.GrayAt(x, y).Y) + "\n"); err != nil {
				return fmt.Errorf("failed to write token for pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush tokens: %w", err)
	}
	return nil
}

// WriteFile encodes img into the file at path, creating it if absent and
// truncating it otherwise. The file is closed on every return path; a close
// failure is reported when encoding itself succeeded.
func WriteFile(path string, img *image.Gray) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return Encode(f, img)
}
