package pnm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/pnmedit/internal/imaging"
)

// Encode writes b in the requested variant.
//
// The header is "<magic>\n<width> <height>\n255\n". Grayscale buffers are
// written as P2 (ASCII) or P5 (binary), color buffers as P3 or P6. ASCII
// rasters put one image row per line with samples separated by single
// spaces; binary rasters are the raw sample bytes in row-major order.
func Encode(w io.Writer, b *imaging.Buffer, v Variant) error {
	if v != Binary && v != ASCII {
		return fmt.Errorf("%w: %d", ErrUnsupportedVariant, int(v))
	}
	bw := bufio.NewWriter(w)
	format := FormatFor(b.IsColor(), v)
	height, width := b.Dimensions()

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", format, width, height, MaxValue); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	channels := format.Channels()
	line := make([]byte, 0, width*channels*4)
	for r := 0; r < height; r++ {
		line = line[:0]
		for c := 0; c < width; c++ {
			p, err := b.At(r, c)
			if err != nil {
				return err
			}
			samples := [3]uint8{p.R, p.G, p.B}
			for _, s := range samples[:channels] {
				if format.Binary() {
					line = append(line, s)
					continue
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = strconv.AppendUint(line, uint64(s), 10)
			}
		}
		if !format.Binary() {
			line = append(line, '\n')
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing image: %w", err)
	}
	return nil
}
