package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// NormalizeAngle validates a rotation angle in degrees and returns the number
// of clockwise quarter turns it amounts to, in [0, 3].
//
// Accepted angles are the multiples of 90 in [-360, 360]. Negative angles are
// counter-clockwise: -90 is three clockwise quarter turns.
func NormalizeAngle(angle int) (int, error) {
	if angle%90 != 0 || angle < -360 || angle > 360 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAngle, angle)
	}
	return (angle/90%4 + 4) % 4, nil
}

// Rotate turns the whole image, or a square selection in place, by angle
// degrees clockwise.
//
// Parameters:
//   - b: Source buffer. It is not modified.
//   - sel: Current selection. With sel.All the image itself turns and its
//     dimensions swap on odd quarter turns. Otherwise the selection must be
//     square and only its contents move; pixels outside it are untouched.
//   - angle: Multiple of 90 in [-360, 360].
//
// Returns:
//   - *Buffer: The rotated copy.
//   - error: ErrUnsupportedAngle, ErrSelectionNotSquare or
//     ErrInvalidCoordinates.
//
// # Algorithm
//
// Each quarter turn maps destination (row l, col c) to source
// (row n-1-c, col l), where n is the source height. This is
// imaging.Rotate270 (counter-clockwise 270 == clockwise 90), applied once
// per quarter turn. Angles that reduce to zero turns return an unchanged
// copy.
func Rotate(b *Buffer, sel Selection, angle int) (*Buffer, error) {
	turns, err := NormalizeAngle(angle)
	if err != nil {
		return nil, err
	}
	if err := sel.check(b); err != nil {
		return nil, err
	}

	if sel.All {
		if turns == 0 {
			return b.Clone(), nil
		}
		return wrap(quarterTurns(b.img, turns), b.color), nil
	}

	if !sel.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrSelectionNotSquare, sel.Width(), sel.Height())
	}
	if turns == 0 {
		return b.Clone(), nil
	}

	region := quarterTurns(imaging.Crop(b.img, sel.Rect()), turns)
	return wrap(imaging.Paste(b.img, region, image.Pt(sel.ColStart, sel.RowStart)), b.color), nil
}

func quarterTurns(img image.Image, turns int) *image.NRGBA {
	out := imaging.Rotate270(img)
	for i := 1; i < turns; i++ {
		out = imaging.Rotate270(out)
	}
	return out
}
