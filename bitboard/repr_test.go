package bitboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRepr(t *testing.T) {
	got, err := FromRepr("8/0303/8/8/8/8/8/8")
	assert.NoError(t, err)
	assert.Equal(t, uint64(4352), got)

	got, err = FromRepr("8/8/8/8/8/8/8/8")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), got)

	full := strings.Repeat("00000000/", 7) + "00000000"
	got, err = FromRepr(full)
	assert.NoError(t, err)
	assert.Equal(t, FullBoard, got)

	// Single set square agrees with the coordinate mapping: c7.
	got, err = FromRepr("8/205/8/8/8/8/8/8")
	assert.NoError(t, err)
	assert.Equal(t, SquareMask(7, 3), got)
}

func TestFromReprErrors(t *testing.T) {
	cases := []string{
		"8/8/8/8/8/8/8",     // not enough ranks
		"8/8/8/8/8/8/8/8/8", // too many ranks
		"070/8/8/8/8/8/8/8", // overfull rank
		"8/8/8/8/8/8/8/7p",  // invalid character
	}
	for _, repr := range cases {
		_, err := FromRepr(repr)
		assert.Error(t, err, "repr %q", repr)
	}
}

func TestAlgebraicRoundTrip(t *testing.T) {
	for index := 0; index < NumSquares; index++ {
		name, err := IndexToAlgebraic(index)
		assert.NoError(t, err)
		back, err := AlgebraicToIndex(name)
		assert.NoError(t, err)
		assert.Equal(t, index, back, "square %s", name)
	}

	a8, err := AlgebraicToIndex("a8")
	assert.NoError(t, err)
	assert.Equal(t, 0, a8)
	h1, err := AlgebraicToIndex("h1")
	assert.NoError(t, err)
	assert.Equal(t, 63, h1)
	e4, err := AlgebraicToIndex("e4")
	assert.NoError(t, err)
	assert.Equal(t, 36, e4)

	for _, bad := range []string{"", "e", "i4", "e9", "e44", "4e"} {
		_, err := AlgebraicToIndex(bad)
		assert.Error(t, err, "square name %q", bad)
	}
	_, err = IndexToAlgebraic(-1)
	assert.Error(t, err)
	_, err = IndexToAlgebraic(64)
	assert.Error(t, err)
}

func TestNorthSouthShifts(t *testing.T) {
	ranks := RankMasks()

	assert.Equal(t, ranks[2], North(ranks[1], 1), "rank 2 shifted north is rank 3")
	assert.Equal(t, ranks[7], North(ranks[0], 7))
	assert.Equal(t, ranks[0], South(ranks[7], 7))
	assert.Equal(t, uint64(0), North(ranks[7], 1), "rank 8 falls off the top edge")
	assert.Equal(t, uint64(0), South(ranks[0], 1), "rank 1 falls off the bottom edge")
}
