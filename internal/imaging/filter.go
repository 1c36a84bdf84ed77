package imaging

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/convolution"
)

// Filter names a 3x3 convolution kernel applied by APPLY.
type Filter int

const (
	// Edge is the Laplacian-style outline kernel (8 in the center, -1 around).
	Edge Filter = iota + 1
	// Sharpen boosts the center against its 4-neighbors.
	Sharpen
	// Blur is the 3x3 box blur.
	Blur
	// GaussianBlur is the 1-2-1 binomial blur.
	GaussianBlur
)

var filterNames = map[Filter]string{
	Edge:         "EDGE",
	Sharpen:      "SHARPEN",
	Blur:         "BLUR",
	GaussianBlur: "GAUSSIAN_BLUR",
}

// roundingBias turns bild's truncating float-to-byte conversion into
// round-half-up. The kernels below produce sums whose fractional part is
// never exactly one half, so this matches rounding to nearest.
const roundingBias = 0.5

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter maps a filter name (EDGE, SHARPEN, BLUR, GAUSSIAN_BLUR) to its
// Filter. Names are case-sensitive.
func ParseFilter(name string) (Filter, error) {
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFilter, name, strings.Join(FilterNames(), ", "))
}

// FilterNames lists the accepted filter names in declaration order.
func FilterNames() []string {
	return []string{Edge.String(), Sharpen.String(), Blur.String(), GaussianBlur.String()}
}

func (f Filter) kernel() (convolution.Matrix, error) {
	k := convolution.NewKernel(3, 3)
	switch f {
	case Edge:
		copy(k.Matrix, []float64{
			-1, -1, -1,
			-1, 8, -1,
			-1, -1, -1,
		})
		return k, nil
	case Sharpen:
		copy(k.Matrix, []float64{
			0, -1, 0,
			-1, 5, -1,
			0, -1, 0,
		})
		return k, nil
	case Blur:
		for i := range k.Matrix {
			k.Matrix[i] = 1
		}
		return k.Normalized(), nil
	case GaussianBlur:
		copy(k.Matrix, []float64{
			1, 2, 1,
			2, 4, 2,
			1, 2, 1,
		})
		return k.Normalized(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, f)
}

// ApplyFilter convolves the selected region of a color image with a 3x3
// kernel.
//
// Parameters:
//   - b: Source buffer; must be color. It is not modified.
//   - sel: Region to filter.
//   - f: Kernel to apply.
//
// Returns:
//   - *Buffer: A filtered copy of b.
//   - error: ErrGrayscaleNotSupported for grayscale input, ErrUnknownFilter,
//     or ErrInvalidCoordinates.
//
// # Edges
//
// Every output pixel reads its neighborhood from the source image, never
// from partially filtered output. Pixels on the outer border of the image
// (row 0, last row, col 0, last col) have an incomplete neighborhood and are
// copied through unchanged, as is everything outside sel. Each channel is
// computed independently, rounded to nearest and clamped to [0, 255].
func ApplyFilter(b *Buffer, sel Selection, f Filter) (*Buffer, error) {
	if !b.color {
		return nil, ErrGrayscaleNotSupported
	}
	k, err := f.kernel()
	if err != nil {
		return nil, err
	}
	if err := sel.check(b); err != nil {
		return nil, err
	}

	out := b.Clone()
	interior := sel.Rect().Intersect(image.Rect(1, 1, b.Width()-1, b.Height()-1))
	if interior.Empty() {
		return out, nil
	}

	conv := convolution.Convolve(b.img, k, &convolution.Options{
		Bias:      roundingBias,
		KeepAlpha: true,
	})

	rowLen := interior.Dx() * 4
	for y := interior.Min.Y; y < interior.Max.Y; y++ {
		src := conv.PixOffset(interior.Min.X, y)
		dst := out.offset(y, interior.Min.X)
		copy(out.img.Pix[dst:dst+rowLen], conv.Pix[src:src+rowLen])
	}
	return out, nil
}

// clamp constrains val to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// roundDivByte rounds v/d half-up (v >= 0, d > 0) and clamps it to a byte.
func roundDivByte(v, d int) uint8 {
	return uint8(clamp((2*v+d)/(2*d), 0, 255))
}
