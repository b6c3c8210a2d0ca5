// Package bitboard maps chess coordinates onto 64-bit boards and builds
// the lookup tables the downstream engine bakes in as constants.
//
// Bit 0 is a8; bits grow file-first toward h8 (bit 7), then down one rank
// per group of eight, ending at h1 (bit 63). A square's linear index equals
// its bit position.
package bitboard

const (
	NumSquares = 64
	NumFiles   = 8
	NumRanks   = 8
)

// FullBoard has every square set.
const FullBoard = ^uint64(0)

// Knight move offsets as (rank delta, file delta) pairs.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
}

// SquareMask returns a bitboard with the single bit for (rank, file) set.
// Coordinates outside [1,8] yield 0 rather than an error; the mask builders
// below rely on that instead of bounds-checking every offset themselves.
func SquareMask(rank, file int) uint64 {
	if rank < 1 || rank > 8 {
		return 0
	}
	if file < 1 || file > 8 {
		return 0
	}
	y := 8 - rank
	x := file - 1
	return 1 << uint(y*8+x)
}

// SquareCoords converts a linear square index (a8 = 0 .. h1 = 63) into
// (rank, file) coordinates.
func SquareCoords(index int) (rank, file int) {
	y := index / 8
	x := index % 8
	return 8 - y, x + 1
}

// RankMasks returns one mask per rank, ordered rank 1 through rank 8,
// each covering the full eight squares of that rank.
func RankMasks() [NumRanks]uint64 {
	var ranks [NumRanks]uint64
	for rank := 1; rank <= 8; rank++ {
		var mask uint64
		for file := 1; file <= 8; file++ {
			mask |= SquareMask(rank, file)
		}
		ranks[rank-1] = mask
	}
	return ranks
}

// FileMasks returns one mask per file, ordered file a through file h.
func FileMasks() [NumFiles]uint64 {
	var files [NumFiles]uint64
	for file := 1; file <= 8; file++ {
		var mask uint64
		for rank := 1; rank <= 8; rank++ {
			mask |= SquareMask(rank, file)
		}
		files[file-1] = mask
	}
	return files
}

// RookRays returns, for every square, the union of its full rank line and
// full file line. The origin bit is included and no blocker logic applies;
// the engine intersects these crosses with occupancy itself.
func RookRays() [NumSquares]uint64 {
	var rays [NumSquares]uint64
	for index := 0; index < NumSquares; index++ {
		rank, file := SquareCoords(index)
		var ray uint64
		for slide := 1; slide <= 8; slide++ {
			ray |= SquareMask(rank, slide)
			ray |= SquareMask(slide, file)
		}
		rays[index] = ray
	}
	return rays
}

// BishopRays returns, for every square, both full diagonals through it,
// excluding the origin square. Off-board extensions fall out via
// SquareMask's zero policy.
func BishopRays() [NumSquares]uint64 {
	var rays [NumSquares]uint64
	for index := 0; index < NumSquares; index++ {
		rank, file := SquareCoords(index)
		var ray uint64
		for slide := 1; slide <= 8; slide++ {
			ray |= SquareMask(rank+slide, file+slide)
			ray |= SquareMask(rank-slide, file-slide)
			ray |= SquareMask(rank-slide, file+slide)
			ray |= SquareMask(rank+slide, file-slide)
		}
		rays[index] = ray
	}
	return rays
}

// KnightMasks returns the knight attack set for every square.
func KnightMasks() [NumSquares]uint64 {
	var masks [NumSquares]uint64
	for index := 0; index < NumSquares; index++ {
		rank, file := SquareCoords(index)
		var mask uint64
		for _, off := range knightOffsets {
			mask |= SquareMask(rank+off[0], file+off[1])
		}
		masks[index] = mask
	}
	return masks
}

// North shifts every set bit n ranks toward rank 8. Bits pushed past the
// top edge drop off.
func North(bb uint64, n int) uint64 {
	return bb >> uint(8*n)
}

// South shifts every set bit n ranks toward rank 1.
func South(bb uint64, n int) uint64 {
	return bb << uint(8*n)
}
