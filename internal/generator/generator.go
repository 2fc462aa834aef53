// Package generator builds puzzles in two phases: fill a full board by
// randomized backtracking, then carve out a difficulty-determined number
// of cells. The carved puzzle is not checked for solution uniqueness;
// downstream consumers rely on the current (possibly multi-solution)
// behavior.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// ErrFillFailed signals that the backtracking fill could not complete.
// From an empty board this cannot happen; seeing it means an algorithmic
// defect, not bad input.
var ErrFillFailed = errors.New("failed to fill a complete board")

// BoardGenerator produces puzzles from a seeded random source.
type BoardGenerator struct{}

func New() *BoardGenerator { return &BoardGenerator{} }

// removalCount maps a difficulty to the number of cells carved out of the
// 81-cell solved board. Current is a storage slot only and has no count.
func removalCount(d domain.Difficulty) (int, error) {
	switch d {
	case domain.Easy:
		return 10, nil
	case domain.Medium:
		return 20, nil
	case domain.Hard:
		return 25, nil
	}
	return 0, fmt.Errorf("no removal count for difficulty %s", d)
}

// Generate fills a solved board, then removes cells per difficulty.
func (g *BoardGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	remove, err := removalCount(diff)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	solved := &domain.Board{}
	nodes := 0
	if !fill(ctx, rng, solved, 0, 0, &nodes) {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrFillFailed
	}

	puzzle := carve(rng, solved, remove)

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      *puzzle,
		Solved:     *solved,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fill walks cells in row-major order, trying digits 1-9 in a fresh
// random order at each empty cell and backtracking on dead ends.
func fill(ctx context.Context, rng *rand.Rand, b *domain.Board, row, col int, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	if col == 9 {
		row, col = row+1, 0
		if row == 9 {
			return true
		}
	}
	if b.Values[row][col] != 0 {
		return fill(ctx, rng, b, row, col+1, nodes)
	}

	var digits [9]uint8
	for i := range digits {
		digits[i] = uint8(i + 1)
	}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	for _, v := range digits {
		*nodes++
		if allowed(b, row, col, v) {
			b.Values[row][col] = v
			if fill(ctx, rng, b, row, col+1, nodes) {
				return true
			}
			b.Values[row][col] = 0
		}
	}
	return false
}

// allowed checks row, column, and box directly against the partial board.
// The full verifier is overkill mid-fill.
func allowed(b *domain.Board, row, col int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b.Values[row][i] == v || b.Values[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// carve deep-copies the solved board and zeroes n distinct random cells.
func carve(rng *rand.Rand, solved *domain.Board, n int) *domain.Board {
	puzzle := solved.Clone()
	for _, pos := range rng.Perm(81)[:n] {
		puzzle.Values[pos/9][pos%9] = 0
	}
	return puzzle
}
