package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// formatValues renders a comma-separated unsigned decimal list. Values
// above 1<<63 are common here (full-board fills), so everything goes
// through unsigned formatting.
func formatValues[T constraints.Unsigned](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ", ")
}

// RenderTable formats a single declaration line in the engine's constant
// syntax, e.g. `const RANKS: [u64; 8] = [255, 65280, ...];`.
func RenderTable(q Qualifier, t Table) string {
	return fmt.Sprintf("%s %s: [u64; %d] = [%s];", q, t.Name, len(t.Values), formatValues(t.Values))
}

// Emit writes the declaration block for the chosen set to w, one line per
// table. Output is a pure function of set and qualifier, byte for byte.
func Emit(w io.Writer, set Set, q Qualifier) error {
	for _, t := range BuildTables(set) {
		if _, err := fmt.Fprintln(w, RenderTable(q, t)); err != nil {
			return errors.Wrapf(err, "emitting %s", t.Name)
		}
	}
	return nil
}
