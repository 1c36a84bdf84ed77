package imaging

import (
	"fmt"
	"image"
)

// Selection is the active rectangular region of an image.
//
// Rows and columns are half-open ranges: RowStart is inclusive and RowEnd is
// exclusive, likewise for columns. When All is set the rectangle always
// covers the full image.
type Selection struct {
	All      bool
	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int
}

// SelectAll returns the selection covering the whole of b.
func SelectAll(b *Buffer) Selection {
	return Selection{
		All:    true,
		RowEnd: b.Height(),
		ColEnd: b.Width(),
	}
}

// SelectRect selects columns [min(c1,c2), max(c1,c2)) and rows
// [min(r1,r2), max(r1,r2)) of b. Corners may be given in either order.
//
// Returns ErrInvalidCoordinates when any coordinate is negative, a column
// exceeds the width, a row exceeds the height, or the region is empty.
// All is set when the rectangle spans the whole image.
func SelectRect(b *Buffer, c1, r1, c2, r2 int) (Selection, error) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 < 0 || r1 < 0 || c2 > b.Width() || r2 > b.Height() || c1 == c2 || r1 == r2 {
		return Selection{}, fmt.Errorf("%w: %d %d %d %d", ErrInvalidCoordinates, c1, r1, c2, r2)
	}
	return Selection{
		All:      c1 == 0 && r1 == 0 && c2 == b.Width() && r2 == b.Height(),
		RowStart: r1,
		RowEnd:   r2,
		ColStart: c1,
		ColEnd:   c2,
	}, nil
}

// Height is the number of selected rows.
func (s Selection) Height() int { return s.RowEnd - s.RowStart }

// Width is the number of selected columns.
func (s Selection) Width() int { return s.ColEnd - s.ColStart }

// IsSquare reports whether the selection has as many rows as columns.
func (s Selection) IsSquare() bool { return s.Height() == s.Width() }

// Contains reports whether (row, col) lies inside the selection.
func (s Selection) Contains(row, col int) bool {
	return row >= s.RowStart && row < s.RowEnd && col >= s.ColStart && col < s.ColEnd
}

// Rect converts the selection to an image.Rectangle (X = column, Y = row).
func (s Selection) Rect() image.Rectangle {
	return image.Rect(s.ColStart, s.RowStart, s.ColEnd, s.RowEnd)
}

// String formats the selection the way SELECT reports it:
// "ALL" or "colStart rowStart colEnd rowEnd".
func (s Selection) String() string {
	if s.All {
		return "ALL"
	}
	return fmt.Sprintf("%d %d %d %d", s.ColStart, s.RowStart, s.ColEnd, s.RowEnd)
}

// check verifies that s describes a non-empty region inside b.
func (s Selection) check(b *Buffer) error {
	if s.All {
		if s.RowStart != 0 || s.ColStart != 0 || s.RowEnd != b.Height() || s.ColEnd != b.Width() {
			return fmt.Errorf("%w: stale full selection %s", ErrInvalidCoordinates, s.Rect())
		}
		return nil
	}
	if s.RowStart < 0 || s.ColStart < 0 || s.RowEnd > b.Height() || s.ColEnd > b.Width() ||
		s.RowStart >= s.RowEnd || s.ColStart >= s.ColEnd {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, s)
	}
	return nil
}
