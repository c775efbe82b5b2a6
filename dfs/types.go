package dfs

// CellState represents the DFS coloring of a cell.
type CellState uint8

const (
	White CellState = iota // White: not on the stack yet.
	Gray                   // Gray: suspended below a child.
	Black                  // Black: scanned, nothing left to try.
)

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	}
	return "unknown"
}
