// Package grid describes the fixed 9×9 board addressed by flat cell indices.
//
// Neighbour addressing is linear: offsets are added to the flat index with no
// row correction, so cell 9's "-1" neighbour is cell 8 on the previous row.
// Only the [0, MaxIndex] bound is enforced.
package grid

const (
	Width    = 9
	Cells    = Width * Width
	MaxIndex = Cells - 1
)

// Offsets lists the eight Moore-neighbourhood deltas in emission order.
var Offsets = [8]int{
	+1,
	-1,
	+Width,
	-Width,
	+1 + Width,
	+1 - Width,
	-1 + Width,
	-1 - Width,
}

// InRange reports whether x names an existing cell.
func InRange(x int) bool {
	return x >= 0 && x <= MaxIndex
}

// Check is the validity predicate for a computed index. It returns (x, true)
// when x is a cell and (0, false) otherwise. Index 0 is a real cell, so callers
// must test the boolean rather than compare the index with 0.
func Check(x int) (int, bool) {
	if !InRange(x) {
		return 0, false
	}
	return x, true
}

// Neighbors returns c's neighbour indices that pass Check, in Offsets order.
func Neighbors(c int) []int {
	out := make([]int, 0, len(Offsets))
	for _, off := range Offsets {
		if n, ok := Check(c + off); ok {
			out = append(out, n)
		}
	}
	return out
}

// GetGridCoords converts a flat index into column and row for a board cols wide.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}
