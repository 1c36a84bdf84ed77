package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAll(t *testing.T) {
	b := createPatternBuffer(t, 4, 6, false)
	sel := SelectAll(b)

	assert.True(t, sel.All)
	assert.Equal(t, 4, sel.Height())
	assert.Equal(t, 6, sel.Width())
	assert.Equal(t, "ALL", sel.String())
}

func TestSelectRect(t *testing.T) {
	b := createPatternBuffer(t, 5, 5, false)

	tests := []struct {
		name           string
		c1, r1, c2, r2 int
		want           Selection
	}{
		{"ordered", 1, 1, 3, 4, Selection{RowStart: 1, RowEnd: 4, ColStart: 1, ColEnd: 3}},
		{"swapped corners", 3, 4, 1, 1, Selection{RowStart: 1, RowEnd: 4, ColStart: 1, ColEnd: 3}},
		{"full extent", 5, 5, 0, 0, Selection{All: true, RowStart: 0, RowEnd: 5, ColStart: 0, ColEnd: 5}},
		{"full width only", 0, 1, 5, 5, Selection{RowStart: 1, RowEnd: 5, ColStart: 0, ColEnd: 5}},
		{"single pixel", 4, 4, 5, 5, Selection{RowStart: 4, RowEnd: 5, ColStart: 4, ColEnd: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := SelectRect(b, tt.c1, tt.r1, tt.c2, tt.r2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel)
		})
	}
}

func TestSelectRect_Invalid(t *testing.T) {
	b := createPatternBuffer(t, 5, 5, false)

	tests := []struct {
		name           string
		c1, r1, c2, r2 int
	}{
		{"empty region", 1, 1, 1, 1},
		{"empty columns", 2, 0, 2, 3},
		{"negative column", -1, 0, 2, 2},
		{"negative row", 0, -1, 2, 2},
		{"column past width", 0, 0, 6, 2},
		{"row past height", 0, 0, 2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectRect(b, tt.c1, tt.r1, tt.c2, tt.r2)
			assert.ErrorIs(t, err, ErrInvalidCoordinates)
		})
	}
}

func TestSelection_Geometry(t *testing.T) {
	sel := Selection{RowStart: 1, RowEnd: 3, ColStart: 2, ColEnd: 4}

	assert.True(t, sel.IsSquare())
	assert.True(t, sel.Contains(1, 2))
	assert.False(t, sel.Contains(3, 2), "end row is exclusive")
	assert.False(t, sel.Contains(1, 4), "end column is exclusive")
	assert.Equal(t, "2 1 4 3", sel.String())
	assert.Equal(t, 2, sel.Rect().Min.X)
	assert.Equal(t, 1, sel.Rect().Min.Y)
}

func TestSelection_CheckRejectsStaleSelection(t *testing.T) {
	small := createPatternBuffer(t, 2, 2, false)
	big := createPatternBuffer(t, 4, 4, false)

	assert.ErrorIs(t, SelectAll(big).check(small), ErrInvalidCoordinates)

	sel, err := SelectRect(big, 0, 0, 4, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, sel.check(small), ErrInvalidCoordinates)
}
