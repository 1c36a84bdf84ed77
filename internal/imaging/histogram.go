package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/histogram"
)

// levels is the number of distinct 8-bit intensities.
const levels = 256

// HistogramResult holds the bucketed intensity distribution of a grayscale
// image, ready for rendering as rows of stars.
type HistogramResult struct {
	// Step is the width of each bin in intensity levels (256 / bins).
	Step int

	// Counts[i] is the number of pixels with intensity in [i*Step, (i+1)*Step).
	Counts []int

	// Stars[i] is Counts[i] scaled to [0, maxStars] against the largest bin,
	// rounded down.
	Stars []int
}

// Histogram buckets the intensities of a grayscale image.
//
// Parameters:
//   - b: Grayscale buffer. It is not modified.
//   - bins: Number of buckets, in [1, 256]. When bins does not divide 256
//     the top intensities beyond bins*step fall outside every bucket.
//   - stars: Length of the longest row of stars, >= 0.
//
// Returns:
//   - *HistogramResult: Per-bin counts and star lengths.
//   - error: ErrColorNotSupported for color input, ErrInvalidHistogram for
//     out-of-range parameters.
func Histogram(b *Buffer, bins, stars int) (*HistogramResult, error) {
	if b.color {
		return nil, ErrColorNotSupported
	}
	if bins < 1 || bins > levels || stars < 0 {
		return nil, fmt.Errorf("%w: bins=%d stars=%d", ErrInvalidHistogram, bins, stars)
	}

	freq := histogram.NewRGBAHistogram(b.img).R.Bins
	step := levels / bins

	res := &HistogramResult{
		Step:   step,
		Counts: make([]int, bins),
		Stars:  make([]int, bins),
	}
	maxCount := 0
	for i := range res.Counts {
		for v := i * step; v < (i+1)*step; v++ {
			res.Counts[i] += freq[v]
		}
		if res.Counts[i] > maxCount {
			maxCount = res.Counts[i]
		}
	}
	if maxCount == 0 {
		return res, nil
	}
	for i, n := range res.Counts {
		res.Stars[i] = n * stars / maxCount
	}
	return res, nil
}

// Equalize spreads the intensities of a grayscale image across the full
// range using its cumulative distribution.
//
// Each level v maps to round(255 * cdf(v)), where cdf(v) is the fraction of
// pixels with intensity <= v. The computation is done in integers, so ties
// round up exactly.
//
// Returns a new buffer, or ErrColorNotSupported for color input.
func Equalize(b *Buffer) (*Buffer, error) {
	if b.color {
		return nil, ErrColorNotSupported
	}

	cum := histogram.NewRGBAHistogram(b.img).R.Cumulative().Bins
	total := b.Height() * b.Width()

	var lut [levels]uint8
	for v := range lut {
		lut[v] = roundDivByte(cum[v]*255, total)
	}

	out := b.Clone()
	for r := 0; r < out.Height(); r++ {
		for c := 0; c < out.Width(); c++ {
			i := out.offset(r, c)
			out.put(r, c, Gray(lut[out.img.Pix[i]]))
		}
	}
	return out, nil
}
