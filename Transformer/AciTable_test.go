package Transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAciToRGBKnownEntries(t *testing.T) {
	cases := map[int]ColorSpec{
		1:   {R: 255},
		2:   {R: 255, G: 255},
		3:   {G: 255},
		5:   {B: 255},
		7:   {R: 255, G: 255, B: 255},
		255: {R: 255, G: 255, B: 255},
	}
	for index, want := range cases {
		got, ok := AciToRGB(index)
		require.True(t, ok, "index %d", index)
		assert.Equal(t, want, got, "index %d", index)
	}
}

func TestAciToRGBSentinelsAndRange(t *testing.T) {
	// 0 (ByBlock) and 256 (ByLayer) are not colors and must never
	// resolve; same for anything outside the table.
	for _, index := range []int{0, 256, -1, 257, 1000} {
		_, ok := AciToRGB(index)
		assert.False(t, ok, "index %d", index)
	}
}

func TestNearestACIExactMatches(t *testing.T) {
	assert.Equal(t, 1, NearestACI(ColorSpec{R: 255}))
	assert.Equal(t, 5, NearestACI(ColorSpec{B: 255}))
	assert.Equal(t, 3, NearestACI(ColorSpec{G: 255}))
}

func TestNearestACITiesPickLowestIndex(t *testing.T) {
	// Pure red appears at indexes 1 and 10; white at 7 and 255.
	assert.Equal(t, 1, NearestACI(ColorSpec{R: 255}))
	assert.Equal(t, 7, NearestACI(ColorSpec{R: 255, G: 255, B: 255}))
}

func TestNearestACIApproximation(t *testing.T) {
	// Off-palette colors land on the closest entry, never a sentinel.
	got := NearestACI(ColorSpec{R: 254, G: 1, B: 0})
	assert.Equal(t, 1, got)

	// Black is off palette; the closest entry is the dark red at
	// index 18 (0x4F0000), nearer than the gray ramp.
	got = NearestACI(ColorSpec{})
	assert.Equal(t, 18, got)
	c, ok := AciToRGB(got)
	require.True(t, ok)
	assert.Equal(t, ColorSpec{R: 0x4F}, c)
}
