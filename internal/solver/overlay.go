package solver

import "svw.info/sudokugame/internal/domain"

// overlay is a read-only view that reports candidate values at the empty
// coordinates and the base board's values everywhere else. Workers share
// the base board concurrently, so it must never be written; each worker
// builds its own overlay per candidate tuple instead of copying the board
// 59,049 times.
type overlay struct {
	base   *domain.Board
	cells  []domain.CellCoord
	values []uint8
}

func (o overlay) Cell(row, col int) uint8 {
	for i, cc := range o.cells {
		if cc.Row == row && cc.Col == col {
			return o.values[i]
		}
	}
	return o.base.Values[row][col]
}
