package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		angle int
		turns int
	}{
		{0, 0},
		{90, 1},
		{180, 2},
		{270, 3},
		{360, 0},
		{-90, 3},
		{-180, 2},
		{-270, 1},
		{-360, 0},
	}

	for _, tt := range tests {
		turns, err := NormalizeAngle(tt.angle)
		require.NoError(t, err, "angle %d", tt.angle)
		assert.Equal(t, tt.turns, turns, "angle %d", tt.angle)
	}
}

func TestNormalizeAngle_Unsupported(t *testing.T) {
	for _, angle := range []int{45, 100, -45, 450, -450, 720} {
		_, err := NormalizeAngle(angle)
		assert.ErrorIs(t, err, ErrUnsupportedAngle, "angle %d", angle)
	}
}

func TestRotate_WholeImageClockwise(t *testing.T) {
	// 1 2 3        4 1
	// 4 5 6   ->   5 2
	//              6 3
	b, err := FromRows([][]Pixel{
		{Gray(1), Gray(2), Gray(3)},
		{Gray(4), Gray(5), Gray(6)},
	}, false)
	require.NoError(t, err)

	out, err := Rotate(b, SelectAll(b), 90)
	require.NoError(t, err)

	want, err := FromRows([][]Pixel{
		{Gray(4), Gray(1)},
		{Gray(5), Gray(2)},
		{Gray(6), Gray(3)},
	}, false)
	require.NoError(t, err)
	assert.True(t, out.Equal(want))
}

func TestRotate_NinetyThenMinusNinety(t *testing.T) {
	b, err := FromRows([][]Pixel{
		{Gray(1), Gray(2), Gray(3)},
		{Gray(4), Gray(5), Gray(6)},
	}, false)
	require.NoError(t, err)

	turned, err := Rotate(b, SelectAll(b), 90)
	require.NoError(t, err)
	h, w := turned.Dimensions()
	assert.Equal(t, 3, h)
	assert.Equal(t, 2, w)

	back, err := Rotate(turned, SelectAll(turned), -90)
	require.NoError(t, err)
	assert.True(t, back.Equal(b))
}

func TestRotate_EquivalentAngles(t *testing.T) {
	b := createPatternBuffer(t, 3, 5, true)
	sel := SelectAll(b)

	pairs := [][2]int{{90, -270}, {180, -180}, {270, -90}, {0, 360}, {0, -360}}
	for _, p := range pairs {
		a, err := Rotate(b, sel, p[0])
		require.NoError(t, err)
		c, err := Rotate(b, sel, p[1])
		require.NoError(t, err)
		assert.True(t, a.Equal(c), "%d vs %d", p[0], p[1])
	}

	full, err := Rotate(b, sel, 360)
	require.NoError(t, err)
	assert.True(t, full.Equal(b))
}

func TestRotate_FourQuarterTurnsIsIdentity(t *testing.T) {
	b := createPatternBuffer(t, 4, 7, true)
	out := b
	for i := 0; i < 4; i++ {
		var err error
		out, err = Rotate(out, SelectAll(out), 90)
		require.NoError(t, err)
	}
	assert.True(t, out.Equal(b))
}

func TestRotate_SquareSelection(t *testing.T) {
	b := createPatternBuffer(t, 4, 5, false)
	orig := b.Clone()
	sel, err := SelectRect(b, 1, 1, 3, 3)
	require.NoError(t, err)

	out, err := Rotate(b, sel, 90)
	require.NoError(t, err)

	assert.True(t, b.Equal(orig), "source must not change")
	h, w := out.Dimensions()
	assert.Equal(t, 4, h)
	assert.Equal(t, 5, w)

	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			if sel.Contains(r, c) {
				continue
			}
			assert.Equal(t, mustAt(t, b, r, c), mustAt(t, out, r, c), "outside pixel (%d,%d)", r, c)
		}
	}

	// Inside: out[1+l][1+c] = in[1+(n-1-c)][1+l] with n = 2.
	for l := 0; l < 2; l++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, mustAt(t, b, 1+(1-c), 1+l), mustAt(t, out, 1+l, 1+c), "inside pixel (%d,%d)", l, c)
		}
	}
}

func TestRotate_NonSquareSelection(t *testing.T) {
	b := createPatternBuffer(t, 4, 5, true)
	sel, err := SelectRect(b, 0, 0, 3, 2)
	require.NoError(t, err)

	for _, angle := range []int{0, 90, -180} {
		_, err = Rotate(b, sel, angle)
		assert.ErrorIs(t, err, ErrSelectionNotSquare, "angle %d", angle)
	}
}

func TestRotate_FullExtentRectangle(t *testing.T) {
	b := createPatternBuffer(t, 2, 3, false)
	sel, err := SelectRect(b, 0, 0, 3, 2)
	require.NoError(t, err)
	require.True(t, sel.All)

	out, err := Rotate(b, sel, 90)
	require.NoError(t, err)

	want, err := Rotate(b, SelectAll(b), 90)
	require.NoError(t, err)
	assert.True(t, out.Equal(want))
}

func TestRotate_UnsupportedAngleChecksFirst(t *testing.T) {
	b := createPatternBuffer(t, 4, 5, true)
	sel, err := SelectRect(b, 0, 0, 3, 2)
	require.NoError(t, err)

	_, err = Rotate(b, sel, 45)
	assert.ErrorIs(t, err, ErrUnsupportedAngle)
}
