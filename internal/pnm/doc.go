// Package pnm reads and writes the Netpbm grayscale and color formats.
//
// Four sub-formats are supported:
//   - P2: grayscale, ASCII samples
//   - P3: RGB, ASCII samples
//   - P5: grayscale, binary samples
//   - P6: RGB, binary samples
//
// Decoded samples are always rescaled to the 0-255 range, so a buffer read
// from a file with maxval 100 and written back out has maxval 255.
package pnm
