package domain

// Board is a 9x9 grid of digits; 0 marks an empty cell.
// It enforces nothing beyond cell range — semantic checks are the
// validator's job.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a read-only view of a 9x9 grid. Both Board and the solver's
// overlay satisfy it, so the validator never needs to know which one it
// is looking at.
type Grid interface {
	Cell(row, col int) uint8
}

// Cell returns the value at (row, col). Indices outside [0,8] panic:
// out-of-range access is a caller bug, not a recoverable condition.
func (b *Board) Cell(row, col int) uint8 { return b.Values[row][col] }

// Get is an alias of Cell kept for symmetry with Set.
func (b *Board) Get(row, col int) uint8 { return b.Values[row][col] }

// Set writes value at (row, col). Same bounds contract as Cell.
func (b *Board) Set(row, col int, value uint8) { b.Values[row][col] = value }

// Clone returns a deep copy. Boards are never shared by aliasing; the
// solver overlay is the one sanctioned read-only exception.
func (b *Board) Clone() *Board {
	return &Board{Values: b.Values}
}

// EmptyCells returns the coordinates of all zero cells in row-major order.
func (b *Board) EmptyCells() []CellCoord {
	var out []CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// CountEmpty returns the number of zero cells.
func (b *Board) CountEmpty() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Placement records one digit the solver put on the board.
type Placement struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Solution is the full set of placements for one solve call.
type Solution []Placement

// Duplicate reports a repeated value inside one unit. Locations are
// unit-local indices (column for a row unit, row for a column unit,
// localRow*3+localCol for a box) and always hold at least two entries.
type Duplicate struct {
	Kind      UnitKind `json:"kind"`
	Unit      int      `json:"unit"`
	Value     uint8    `json:"value"`
	Locations []int    `json:"locations"`
}

// Result is the immutable outcome of one verification pass.
type Result struct {
	Status     Status      `json:"status"`
	Duplicates []Duplicate `json:"duplicates,omitempty"`
	HasEmpty   bool        `json:"hasEmpty"`
}

// CellInConflict reports whether (row, col) participates in any duplicate,
// so a presentation layer can mark every offending cell.
func (r *Result) CellInConflict(row, col int) bool {
	box := (row/3)*3 + col/3
	local := (row%3)*3 + col%3
	for _, d := range r.Duplicates {
		switch d.Kind {
		case UnitRow:
			if d.Unit == row && containsInt(d.Locations, col) {
				return true
			}
		case UnitCol:
			if d.Unit == col && containsInt(d.Locations, row) {
				return true
			}
		case UnitBox:
			if d.Unit == box && containsInt(d.Locations, local) {
				return true
			}
		}
	}
	return false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Puzzle is a generated Sudoku plus the solved board it was carved from.
type Puzzle struct {
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Board      Board      `json:"board"`
	Solved     Board      `json:"solved"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Catalog reports which saved games exist on disk.
type Catalog struct {
	Easy    bool `json:"easy"`
	Medium  bool `json:"medium"`
	Hard    bool `json:"hard"`
	Current bool `json:"current"`
}

// AnyAvailable reports whether any saved game exists.
func (c Catalog) AnyAvailable() bool {
	return c.Easy || c.Medium || c.Hard || c.Current
}

// Action is one recorded cell edit, kept so the last edit can be undone.
type Action struct {
	Row  int   `json:"row"`
	Col  int   `json:"col"`
	New  uint8 `json:"new"`
	Prev uint8 `json:"prev"`
}
