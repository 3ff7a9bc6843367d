// Package hexfile writes grayscale rasters as memory-initialization text.
//
// Each pixel becomes one line holding its intensity multiplied by 16, in
// lowercase hexadecimal without a "0x" prefix. Pixels are emitted in row-major
// order: line (y*width + x) holds pixel (x, y).
//
// The scaling is not clamped or masked to a byte, so tokens are one to three
// digits wide:
//
//	intensity   0 -> "0"
//	intensity  15 -> "f0"
//	intensity  16 -> "100"
//	intensity 255 -> "ff0"
package hexfile
