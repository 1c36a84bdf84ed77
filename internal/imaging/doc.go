// Package imaging provides the pixel buffer, selection and transform engine
// behind the PNM editor.
//
// A Buffer holds one image (grayscale or RGB, 8 bits per channel) and a
// Selection names the rectangular region that operations act on. Transform
// functions are stateless: they take a buffer and selection and return a new
// buffer, leaving the input untouched, so a caller can commit or discard the
// result as a unit.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - Row: vertical position (0 = topmost row)
//   - Column: horizontal position (0 = leftmost column)
//   - Regions are half-open: start inclusive, end exclusive
//
// Where a function takes an image.Rectangle, X is the column and Y the row.
//
// # Operations
//
//   - Crop: keep only the selected region
//   - Rotate: quarter turns of the whole image or a square selection
//   - ApplyFilter: 3x3 convolution (EDGE, SHARPEN, BLUR, GAUSSIAN_BLUR) on
//     color images
//   - Histogram, Equalize: intensity distribution and CDF remapping on
//     grayscale images
//
// Geometry is delegated to github.com/disintegration/imaging and
// convolution and histograms to github.com/anthonynsimon/bild.
//
// # Error Handling
//
// Functions return errors wrapping the sentinel values in this package
// (ErrInvalidCoordinates, ErrUnsupportedAngle, ...). Use errors.Is to
// classify them.
//
// # Thread Safety
//
// Transform functions only read their input buffer and may be called
// concurrently on the same buffer. Buffer.Set is not synchronized.
package imaging
