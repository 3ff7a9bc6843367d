package imaging

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultFilter is the resample filter used when none is requested.
const DefaultFilter = "linear"

// filters maps the accepted filter names to their resampling kernels.
var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"hermite":    imaging.Hermite,
	"mitchell":   imaging.MitchellNetravali,
	"catmullrom": imaging.CatmullRom,
	"bspline":    imaging.BSpline,
	"gaussian":   imaging.Gaussian,
	"lanczos":    imaging.Lanczos,
}

// FilterNames returns the accepted resample filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseFilter returns the resample filter registered under name.
// Matching is case-insensitive; an empty name selects DefaultFilter.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q (valid: %s)",
			name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// Resize scales img to exactly width x height pixels.
//
// Parameters:
//   - img: Source image of any size.
//   - width, height: Target dimensions. Both must be positive; the aspect ratio
//     of the source is not preserved.
//   - filter: Resampling kernel, usually obtained from ParseFilter.
//
// Returns:
//   - *image.NRGBA: The resized, fully opaque raster with bounds (0,0)-(width,height).
//     When the source already has the target size the result is an exact copy of
//     its color channels.
//   - error: Non-nil if a dimension is not positive or the source is empty.
func Resize(img image.Image, width, height int, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d: dimensions must be positive", width, height)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("cannot resize empty image")
	}
	return imaging.Resize(Flatten(img), width, height, filter), nil
}

// Flatten copies img into an opaque raster. Each pixel keeps its stored
// unpremultiplied color and gets alpha 255, so resampling never weights
// colors by transparency.
func Flatten(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Grayscale reduces img to one 8-bit intensity per pixel.
//
// Intensities use ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B) rounded to
// the nearest integer. Alpha is ignored; color channels are read unpremultiplied,
// so a transparent pixel contributes its stored color.
// The result has bounds (0,0)-(w,h) regardless of the source origin.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Grayscale(img)
	bounds := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride:]
		dstRow := gray.Pix[y*gray.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			// R, G and B are equal after imaging.Grayscale
			dstRow[x] = srcRow[x*4]
		}
	}
	return gray
}
