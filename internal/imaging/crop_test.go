package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrop(t *testing.T) {
	b := createPatternBuffer(t, 6, 8, true)
	sel, err := SelectRect(b, 2, 1, 5, 4)
	require.NoError(t, err)

	out, newSel, err := Crop(b, sel)
	require.NoError(t, err)

	h, w := out.Dimensions()
	assert.Equal(t, 3, h)
	assert.Equal(t, 3, w)
	assert.True(t, out.IsColor())
	assert.Equal(t, SelectAll(out), newSel)
}

func TestCrop_VerifyContent(t *testing.T) {
	b := createPatternBuffer(t, 6, 8, false)
	sel, err := SelectRect(b, 1, 2, 7, 5)
	require.NoError(t, err)

	out, _, err := Crop(b, sel)
	require.NoError(t, err)

	for r := 0; r < out.Height(); r++ {
		for c := 0; c < out.Width(); c++ {
			assert.Equal(t, mustAt(t, b, r+2, c+1), mustAt(t, out, r, c), "pixel (%d,%d)", r, c)
		}
	}
}

func TestCrop_Idempotent(t *testing.T) {
	b := createPatternBuffer(t, 6, 8, true)
	sel, err := SelectRect(b, 1, 1, 6, 4)
	require.NoError(t, err)

	out, outSel, err := Crop(b, sel)
	require.NoError(t, err)

	again, againSel, err := Crop(out, outSel)
	require.NoError(t, err)
	assert.True(t, again.Equal(out))
	assert.Equal(t, outSel, againSel)
}

func TestCrop_FullImage(t *testing.T) {
	b := createPatternBuffer(t, 4, 4, true)

	out, sel, err := Crop(b, SelectAll(b))
	require.NoError(t, err)
	assert.True(t, out.Equal(b))
	assert.True(t, sel.All)

	// The result must not alias the source.
	require.NoError(t, out.Set(0, 0, Pixel{R: 99}))
	assert.NotEqual(t, Pixel{R: 99}, mustAt(t, b, 0, 0))
}

func TestCrop_SourceUnchanged(t *testing.T) {
	b := createPatternBuffer(t, 5, 5, true)
	orig := b.Clone()
	sel, err := SelectRect(b, 0, 0, 2, 2)
	require.NoError(t, err)

	_, _, err = Crop(b, sel)
	require.NoError(t, err)
	assert.True(t, b.Equal(orig))
}

func TestCrop_OutOfBounds(t *testing.T) {
	b := createPatternBuffer(t, 4, 4, true)

	_, _, err := Crop(b, Selection{RowStart: 0, RowEnd: 5, ColStart: 0, ColEnd: 2})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}
