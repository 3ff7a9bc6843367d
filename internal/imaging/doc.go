// Package imaging provides the raster stages of the image-to-hex pipeline.
//
// The package decodes source images, resizes them to an exact target size and
// reduces them to a single 8-bit intensity channel. All rasters returned by this
// package use a coordinate system where (0,0) is the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Supported Formats
//
// Load recognizes formats by content, not by file extension:
//   - PNG, JPEG, GIF (standard library decoders)
//   - BMP (github.com/sergeymakinen/go-bmp)
//   - TIFF, WebP (golang.org/x/image)
//
// # Resampling
//
// Resize delegates to github.com/disintegration/imaging. The default filter is
// bilinear ("linear"). Other filters are selected by name through ParseFilter.
// Aspect ratio is never preserved: the output is exactly the requested size.
//
// # Grayscale Conversion
//
// Grayscale uses ITU-R BT.601 luma weights, rounded to the nearest integer:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - File I/O errors during image loading
//   - Unrecognized or corrupt image data (*DecodeError)
//   - Non-positive target dimensions
package imaging
