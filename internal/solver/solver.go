// Package solver completes a board with exactly five empty cells by
// testing every digit tuple against the verifier, spread across a fixed
// pool of workers. If a puzzle happens to admit more than one completion,
// which one is returned depends on scheduling; the design does not
// adjudicate between valid completions.
package solver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/permute"
	"svw.info/sudokugame/internal/ports"
)

const (
	// RequiredEmptyCells is the exact number of unknowns the solver
	// handles. Anything else is rejected before any search starts.
	RequiredEmptyCells = 5

	defaultWorkers = 4
)

var (
	ErrShapeMismatch = errors.New("solver requires exactly 5 empty cells")
	ErrUnsolvable    = errors.New("no valid completion exists")
)

// PermutationSolver drives worker goroutines over a shared permutation
// cursor. The only shared mutable state is the cursor (mutex inside) and
// the winner-take-all result slot (compare-and-swap); verification itself
// runs lock-free.
type PermutationSolver struct {
	Verifier ports.Verifier
	Workers  int
}

func New(v ports.Verifier) *PermutationSolver {
	return &PermutationSolver{Verifier: v, Workers: defaultWorkers}
}

// Solve finds values for the board's five empty cells that make the
// whole board VALID. The board itself is never mutated.
func (s *PermutationSolver) Solve(ctx context.Context, b *domain.Board) (domain.Solution, ports.Stats, error) {
	start := time.Now()

	empty := b.EmptyCells()
	if len(empty) != RequiredEmptyCells {
		return nil, ports.Stats{}, fmt.Errorf("%w, found %d", ErrShapeMismatch, len(empty))
	}

	cursor, err := permute.New(RequiredEmptyCells)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var (
		won      atomic.Bool
		solution domain.Solution
		checks   atomic.Int64
		wg       sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !won.Load() && ctx.Err() == nil {
				tuple, err := cursor.Next()
				if err != nil {
					return // exhausted
				}
				res := s.Verifier.Verify(ctx, overlay{base: b, cells: empty, values: tuple})
				checks.Add(1)
				if res.Status != domain.StatusValid {
					continue
				}
				// First finder wins; losers drop their result and stop.
				if won.CompareAndSwap(false, true) {
					solution = makeSolution(empty, tuple)
				}
				return
			}
		}()
	}
	wg.Wait()

	stats := ports.Stats{Nodes: int(checks.Load()), Duration: time.Since(start)}
	if won.Load() {
		return solution, stats, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	return nil, stats, ErrUnsolvable
}

func makeSolution(cells []domain.CellCoord, values []uint8) domain.Solution {
	out := make(domain.Solution, len(cells))
	for i, cc := range cells {
		out[i] = domain.Placement{Row: cc.Row, Col: cc.Col, Value: values[i]}
	}
	return out
}
