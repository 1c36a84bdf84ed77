package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Allocation limits for a single buffer. MaxSide is the largest width or
// height accepted; MaxPixels bounds width*height so a hostile header cannot
// request an arbitrarily large allocation.
const (
	MaxSide   = 65535
	MaxPixels = 1 << 28
)

var (
	// ErrAllocation is returned when a buffer of the requested size cannot be created.
	ErrAllocation = errors.New("cannot allocate image buffer")

	// ErrOutOfBounds is returned by At and Set for coordinates outside the buffer.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

// Pixel is a single RGB sample. Grayscale buffers store R == G == B.
type Pixel struct {
	R, G, B uint8
}

// Gray returns the grayscale pixel with intensity v.
func Gray(v uint8) Pixel {
	return Pixel{R: v, G: v, B: v}
}

// Buffer is a height x width grid of pixels plus a color flag.
//
// Pixels live in a single contiguous *image.NRGBA with opaque alpha, which
// lets the geometric and convolution routines hand the buffer straight to
// github.com/disintegration/imaging and github.com/anthonynsimon/bild.
// The bounds of the backing image always start at (0,0).
//
// # Coordinates
//
// All accessors take (row, col), 0-based, with row 0 at the top. Regions are
// half-open: start inclusive, end exclusive.
//
// # Invariants
//
//   - Height and width are both >= 1.
//   - When the buffer is grayscale every stored pixel has R == G == B. Set
//     enforces this by replicating R into G and B.
type Buffer struct {
	img   *image.NRGBA
	color bool
}

// NewBuffer allocates a black buffer of the given size.
//
// Parameters:
//   - height, width: Dimensions in pixels, each in [1, MaxSide].
//   - color: True for an RGB image, false for grayscale.
//
// Returns:
//   - *Buffer: The zero-filled (black) buffer.
//   - error: ErrAllocation if either side is out of range or the pixel count
//     exceeds MaxPixels.
func NewBuffer(height, width int, color bool) (*Buffer, error) {
	if height < 1 || width < 1 || height > MaxSide || width > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocation, width, height)
	}
	if height*width > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, MaxPixels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &Buffer{img: img, color: color}, nil
}

// FromRows builds a buffer from a rectangular slice of rows.
// Grayscale buffers keep only the R channel of each pixel.
func FromRows(rows [][]Pixel, color bool) (*Buffer, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrAllocation)
	}
	b, err := NewBuffer(len(rows), len(rows[0]), color)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.Width() {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrAllocation, r, len(row), b.Width())
		}
		for c, p := range row {
			b.put(r, c, p)
		}
	}
	return b, nil
}

// wrap adopts an image produced by the imaging or bild packages.
func wrap(img *image.NRGBA, color bool) *Buffer {
	return &Buffer{img: img, color: color}
}

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Dimensions returns (height, width).
func (b *Buffer) Dimensions() (int, int) { return b.Height(), b.Width() }

// IsColor reports whether the buffer holds RGB data.
func (b *Buffer) IsColor() bool { return b.color }

func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Height() && col < b.Width()
}

func (b *Buffer) offset(row, col int) int {
	return row*b.img.Stride + col*4
}

// At returns the pixel at (row, col).
func (b *Buffer) At(row, col int) (Pixel, error) {
	if !b.inBounds(row, col) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, b.Height(), b.Width())
	}
	i := b.offset(row, col)
	s := b.img.Pix[i : i+3 : i+3]
	return Pixel{R: s[0], G: s[1], B: s[2]}, nil
}

// Set stores p at (row, col). On a grayscale buffer only p.R is used.
func (b *Buffer) Set(row, col int, p Pixel) error {
	if !b.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, b.Height(), b.Width())
	}
	b.put(row, col, p)
	return nil
}

func (b *Buffer) put(row, col int, p Pixel) {
	if !b.color {
		p = Gray(p.R)
	}
	i := b.offset(row, col)
	s := b.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, 0xff
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return wrap(imaging.Clone(b.img), b.color)
}

// Image exposes the buffer as a read-only image.Image.
// Callers must not modify the returned value.
func (b *Buffer) Image() image.Image { return b.img }

// Equal reports whether both buffers have the same size, color flag and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.color != o.color || b.Height() != o.Height() || b.Width() != o.Width() {
		return false
	}
	rowLen := b.Width() * 4
	for r := 0; r < b.Height(); r++ {
		if !bytes.Equal(b.img.Pix[b.offset(r, 0):b.offset(r, 0)+rowLen], o.img.Pix[o.offset(r, 0):o.offset(r, 0)+rowLen]) {
			return false
		}
	}
	return true
}
