package bitboard

import (
	"strings"

	"github.com/pkg/errors"
)

// FromRepr parses a fen-like bitboard literal: eight '/'-separated rank
// groups from rank 8 down to rank 1, where '0' marks a set square and a
// digit 1..8 skips that many empty squares. Underfull rank groups are
// allowed; the remaining squares stay empty.
//
//	FromRepr("8/0303/8/8/8/8/8/8") == 1<<8 | 1<<12
func FromRepr(repr string) (uint64, error) {
	ranks := strings.Split(repr, "/")
	if len(ranks) != 8 {
		return 0, errors.Errorf("bitboard repr needs 8 rank groups, got %d", len(ranks))
	}
	var bb uint64
	for rankIdx, rank := range ranks {
		file := 0
		for _, c := range rank {
			if file > 7 {
				return 0, errors.Errorf("rank group %d is overfull in %q", rankIdx+1, repr)
			}
			switch {
			case c == '0':
				bb |= 1 << uint(rankIdx*8+file)
				file++
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				return 0, errors.Errorf("invalid character %q in bitboard repr", c)
			}
		}
	}
	return bb, nil
}

// AlgebraicToIndex converts a square name like "e4" into its linear index.
func AlgebraicToIndex(s string) (int, error) {
	if len(s) != 2 {
		return 0, errors.Errorf("square name %q must be two characters", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' {
		return 0, errors.Errorf("invalid file in square name %q", s)
	}
	if rank < '1' || rank > '8' {
		return 0, errors.Errorf("invalid rank in square name %q", s)
	}
	y := 8 - int(rank-'0')
	x := int(file - 'a')
	return y*8 + x, nil
}

// IndexToAlgebraic converts a linear square index into its "e4"-style name.
func IndexToAlgebraic(index int) (string, error) {
	if index < 0 || index >= NumSquares {
		return "", errors.Errorf("square index %d out of range", index)
	}
	rank, file := SquareCoords(index)
	return string([]byte{byte('a' + file - 1), byte('0' + rank)}), nil
}
