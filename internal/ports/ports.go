package ports

import (
	"context"
	"time"

	"svw.info/sudokugame/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Verifier classifies a grid. It is total: there is no error to return.
type Verifier interface {
	Verify(ctx context.Context, g domain.Grid) domain.Result
}

// Solver finds values for a board's empty cells without mutating it.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (domain.Solution, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Storage persists one board per difficulty slot.
type Storage interface {
	Save(ctx context.Context, b *domain.Board, d domain.Difficulty) error
	Load(ctx context.Context, d domain.Difficulty) (*domain.Board, error)
	Delete(ctx context.Context, d domain.Difficulty) error
	Catalog(ctx context.Context) (domain.Catalog, error)
}

// ActionLog records cell edits for the in-progress game and undoes the
// most recent one.
type ActionLog interface {
	Record(ctx context.Context, a domain.Action) error
	Undo(ctx context.Context) (domain.Action, error)
	Clear(ctx context.Context) error
}
