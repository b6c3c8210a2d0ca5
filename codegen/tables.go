// Package codegen turns the bitboard lookup tables into the constant
// declarations the downstream engine source expects, one line per table.
package codegen

import (
	"github.com/pkg/errors"

	"chess-tables/bitboard"
)

// Set selects which tables the generator produces.
type Set int

const (
	// SetFull emits ranks, files, rook rays, bishop rays and knight masks.
	SetFull Set = iota
	// SetReduced emits only the rank and file masks.
	SetReduced
)

// Qualifier selects the declaration keyword on emitted lines.
type Qualifier int

const (
	QualifierConst Qualifier = iota
	QualifierStatic
)

func (q Qualifier) String() string {
	if q == QualifierStatic {
		return "static"
	}
	return "const"
}

// ParseSet maps a -set flag value onto a Set.
func ParseSet(s string) (Set, error) {
	switch s {
	case "full":
		return SetFull, nil
	case "reduced":
		return SetReduced, nil
	}
	return 0, errors.Errorf("unknown table set %q (want full or reduced)", s)
}

// ParseQualifier maps a -qualifier flag value onto a Qualifier.
func ParseQualifier(s string) (Qualifier, error) {
	switch s {
	case "const":
		return QualifierConst, nil
	case "static":
		return QualifierStatic, nil
	}
	return 0, errors.Errorf("unknown qualifier %q (want const or static)", s)
}

// Table is one named constant array of bitboards.
type Table struct {
	Name   string
	Values []uint64
}

// BuildTables computes the requested table set from scratch, in emission
// order: ranks, files, rook rays, bishop rays, knight masks. Downstream
// concatenation depends on that order staying fixed.
func BuildTables(set Set) []Table {
	ranks := bitboard.RankMasks()
	files := bitboard.FileMasks()
	tables := []Table{
		{Name: "RANKS", Values: ranks[:]},
		{Name: "FILES", Values: files[:]},
	}
	if set == SetReduced {
		return tables
	}
	rookRays := bitboard.RookRays()
	bishopRays := bitboard.BishopRays()
	knightMasks := bitboard.KnightMasks()
	return append(tables,
		Table{Name: "ROOK_RAYS", Values: rookRays[:]},
		Table{Name: "BISHOP_RAYS", Values: bishopRays[:]},
		Table{Name: "KNIGHT_MASKS", Values: knightMasks[:]},
	)
}
