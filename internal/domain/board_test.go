package domain

import "testing"

func TestBoardGetSetClone(t *testing.T) {
	b := &Board{}
	b.Set(3, 4, 7)
	if got := b.Get(3, 4); got != 7 {
		t.Fatalf("Get(3,4) = %d, want 7", got)
	}

	clone := b.Clone()
	clone.Set(3, 4, 2)
	if b.Get(3, 4) != 7 {
		t.Fatalf("mutating a clone changed the original board")
	}
	if clone.Get(3, 4) != 2 {
		t.Fatalf("clone did not keep its own write")
	}
}

func TestBoardOutOfRangePanics(t *testing.T) {
	b := &Board{}
	defer func() {
		if recover() == nil {
			t.Fatalf("Get(9,0) did not panic")
		}
	}()
	_ = b.Get(9, 0)
}

func TestEmptyCellsRowMajor(t *testing.T) {
	b := &Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = 1
		}
	}
	b.Values[2][7] = 0
	b.Values[0][5] = 0
	b.Values[2][1] = 0

	got := b.EmptyCells()
	want := []CellCoord{{Row: 0, Col: 5}, {Row: 2, Col: 1}, {Row: 2, Col: 7}}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EmptyCells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if b.CountEmpty() != 3 {
		t.Fatalf("CountEmpty = %d, want 3", b.CountEmpty())
	}
}

func TestCellInConflict(t *testing.T) {
	res := Result{
		Status: StatusInvalid,
		Duplicates: []Duplicate{
			{Kind: UnitRow, Unit: 0, Value: 7, Locations: []int{2, 5}},
			{Kind: UnitBox, Unit: 4, Value: 3, Locations: []int{0, 8}},
		},
	}
	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"row dup first cell", 0, 2, true},
		{"row dup second cell", 0, 5, true},
		{"same row clean cell", 0, 3, false},
		{"box dup local 0", 3, 3, true},
		{"box dup local 8", 5, 5, true},
		{"box clean cell", 4, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := res.CellInConflict(tc.row, tc.col); got != tc.want {
				t.Fatalf("CellInConflict(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}
