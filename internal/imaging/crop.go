package imaging

import (
	"github.com/disintegration/imaging"
)

// Crop extracts the selected region of an image.
//
// Parameters:
//   - b: Source buffer. It is not modified.
//   - sel: Region to keep. Must lie inside b.
//
// Returns:
//   - *Buffer: A new buffer of sel.Height() x sel.Width() pixels with the
//     same color flag as b. When sel.All is set this is a copy of b.
//   - Selection: The full-extent selection of the new buffer.
//   - error: ErrInvalidCoordinates if sel does not fit b.
func Crop(b *Buffer, sel Selection) (*Buffer, Selection, error) {
	if err := sel.check(b); err != nil {
		return nil, Selection{}, err
	}

	var out *Buffer
	if sel.All {
		out = b.Clone()
	} else {
		out = wrap(imaging.Crop(b.img, sel.Rect()), b.color)
	}
	return out, SelectAll(out), nil
}
