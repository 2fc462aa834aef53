package validator

import (
	"context"

	"svw.info/sudokugame/internal/domain"
)

// Verifier classifies a grid as VALID, INVALID, or INCOMPLETE and collects
// every duplicate with the full list of offending positions. It never
// fails: any well-formed grid maps to a Result.
type Verifier struct{}

func New() *Verifier { return &Verifier{} }

// Verify scans rows, then columns, then boxes, in that fixed order so the
// duplicate list comes out deterministic. Nothing short-circuits: a
// consumer coloring conflicts needs every offending cell, not the first
// one per unit.
func (v *Verifier) Verify(ctx context.Context, g domain.Grid) domain.Result {
	var dups []domain.Duplicate
	for unit := 0; unit < 9; unit++ {
		dups = appendUnitDuplicates(dups, domain.UnitRow, unit, func(i int) uint8 {
			return g.Cell(unit, i)
		})
	}
	for unit := 0; unit < 9; unit++ {
		dups = appendUnitDuplicates(dups, domain.UnitCol, unit, func(i int) uint8 {
			return g.Cell(i, unit)
		})
	}
	for unit := 0; unit < 9; unit++ {
		br, bc := (unit/3)*3, (unit%3)*3
		dups = appendUnitDuplicates(dups, domain.UnitBox, unit, func(i int) uint8 {
			return g.Cell(br+i/3, bc+i%3)
		})
	}

	hasEmpty := false
	for r := 0; r < 9 && !hasEmpty; r++ {
		for c := 0; c < 9; c++ {
			if g.Cell(r, c) == 0 {
				hasEmpty = true
				break
			}
		}
	}

	res := domain.Result{Duplicates: dups, HasEmpty: hasEmpty}
	switch {
	case len(dups) > 0:
		res.Status = domain.StatusInvalid
	case hasEmpty:
		res.Status = domain.StatusIncomplete
	default:
		res.Status = domain.StatusValid
	}
	return res
}

// appendUnitDuplicates records one Duplicate per repeated value in a single
// unit. cell maps a unit-local index 0..8 to its digit. Zeros and anything
// outside 1..9 are skipped rather than reported.
func appendUnitDuplicates(dups []domain.Duplicate, kind domain.UnitKind, unit int, cell func(int) uint8) []domain.Duplicate {
	var locations [10][]int
	for i := 0; i < 9; i++ {
		v := cell(i)
		if v < 1 || v > 9 {
			continue
		}
		locations[v] = append(locations[v], i)
	}
	for v := uint8(1); v <= 9; v++ {
		if len(locations[v]) >= 2 {
			dups = append(dups, domain.Duplicate{
				Kind:      kind,
				Unit:      unit,
				Value:     v,
				Locations: locations[v],
			})
		}
	}
	return dups
}
