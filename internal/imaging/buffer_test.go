package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPatternBuffer returns a buffer where every pixel is distinct enough
// to detect misplaced pixels after geometric transforms.
func createPatternBuffer(t *testing.T, height, width int, color bool) *Buffer {
	t.Helper()

	b, err := NewBuffer(height, width, color)
	require.NoError(t, err)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			v := uint8(r*width + c)
			require.NoError(t, b.Set(r, c, Pixel{R: v, G: v + 100, B: v + 200}))
		}
	}
	return b
}

// createUniformBuffer returns a buffer filled with p.
func createUniformBuffer(t *testing.T, height, width int, color bool, p Pixel) *Buffer {
	t.Helper()

	b, err := NewBuffer(height, width, color)
	require.NoError(t, err)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			require.NoError(t, b.Set(r, c, p))
		}
	}
	return b
}

func mustAt(t *testing.T, b *Buffer, row, col int) Pixel {
	t.Helper()

	p, err := b.At(row, col)
	require.NoError(t, err)
	return p
}

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(3, 5, true)
	require.NoError(t, err)

	h, w := b.Dimensions()
	assert.Equal(t, 3, h)
	assert.Equal(t, 5, w)
	assert.True(t, b.IsColor())
	assert.Equal(t, Pixel{}, mustAt(t, b, 2, 4))
}

func TestNewBuffer_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 4},
		{"zero width", 4, 0},
		{"negative", -1, 4},
		{"side too large", MaxSide + 1, 1},
		{"too many pixels", MaxSide, MaxSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuffer(tt.height, tt.width, false)
			assert.ErrorIs(t, err, ErrAllocation)
		})
	}
}

func TestBuffer_SetGrayscaleMirrorsRed(t *testing.T) {
	b, err := NewBuffer(1, 1, false)
	require.NoError(t, err)

	require.NoError(t, b.Set(0, 0, Pixel{R: 42, G: 7, B: 9}))
	assert.Equal(t, Gray(42), mustAt(t, b, 0, 0))
}

func TestBuffer_OutOfBounds(t *testing.T) {
	b, err := NewBuffer(2, 3, true)
	require.NoError(t, err)

	points := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}}
	for _, p := range points {
		_, err := b.At(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds, "At(%d,%d)", p[0], p[1])
		assert.ErrorIs(t, b.Set(p[0], p[1], Pixel{}), ErrOutOfBounds, "Set(%d,%d)", p[0], p[1])
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := createPatternBuffer(t, 3, 3, true)
	c := b.Clone()
	require.True(t, b.Equal(c))

	require.NoError(t, c.Set(1, 1, Pixel{R: 255}))
	assert.False(t, b.Equal(c))
	assert.NotEqual(t, Pixel{R: 255}, mustAt(t, b, 1, 1))
}

func TestBuffer_Equal(t *testing.T) {
	a := createUniformBuffer(t, 2, 2, true, Pixel{1, 2, 3})

	assert.True(t, a.Equal(createUniformBuffer(t, 2, 2, true, Pixel{1, 2, 3})))
	assert.False(t, a.Equal(createUniformBuffer(t, 2, 2, false, Pixel{1, 2, 3})), "color flag differs")
	assert.False(t, a.Equal(createUniformBuffer(t, 2, 3, true, Pixel{1, 2, 3})), "size differs")
	assert.False(t, a.Equal(nil))
}

func TestFromRows(t *testing.T) {
	b, err := FromRows([][]Pixel{
		{Gray(1), Gray(2)},
		{Gray(3), Gray(4)},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, Gray(3), mustAt(t, b, 1, 0))

	_, err = FromRows([][]Pixel{{Gray(1), Gray(2)}, {Gray(3)}}, false)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = FromRows(nil, false)
	assert.ErrorIs(t, err, ErrAllocation)
}
