package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// Service wires the core components behind one facade for the outer
// adapters. Any dependency may be left nil; calls through it fail with
// errNotConfigured instead of panicking.
type Service struct {
	Verifier  ports.Verifier
	Generator ports.Generator
	Solver    ports.Solver
	Storage   ports.Storage
	Actions   ports.ActionLog
}

func NewService(v ports.Verifier, g ports.Generator, s ports.Solver, st ports.Storage, a ports.ActionLog) *Service {
	return &Service{Verifier: v, Generator: g, Solver: s, Storage: st, Actions: a}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrSourceInvalid rejects deriving games from a board that is not
	// fully VALID.
	ErrSourceInvalid = errors.New("source solution is not valid")
)

func (u *Service) Verify(ctx context.Context, b *domain.Board) (domain.Result, error) {
	if u.Verifier == nil {
		return domain.Result{}, errNotConfigured
	}
	return u.Verifier.Verify(ctx, b), nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) (domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

// DeriveGames checks that the source board is a complete valid solution,
// then generates and persists one puzzle per playable difficulty.
func (u *Service) DeriveGames(ctx context.Context, seed int64, source *domain.Board) error {
	if u.Verifier == nil || u.Generator == nil || u.Storage == nil {
		return errNotConfigured
	}
	res := u.Verifier.Verify(ctx, source)
	if res.Status != domain.StatusValid {
		return fmt.Errorf("%w: status %s", ErrSourceInvalid, res.Status)
	}
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		p, _, err := u.Generator.Generate(ctx, seed+int64(d), d)
		if err != nil {
			return fmt.Errorf("generate %s: %w", d, err)
		}
		if err := u.Storage.Save(ctx, &p.Board, d); err != nil {
			return fmt.Errorf("save %s: %w", d, err)
		}
	}
	return nil
}

// Persistence

func (u *Service) SaveBoard(ctx context.Context, b *domain.Board, d domain.Difficulty) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, b, d)
}

func (u *Service) LoadBoard(ctx context.Context, d domain.Difficulty) (*domain.Board, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, d)
}

func (u *Service) DeleteBoard(ctx context.Context, d domain.Difficulty) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Delete(ctx, d)
}

func (u *Service) Catalog(ctx context.Context) (domain.Catalog, error) {
	if u.Storage == nil {
		return domain.Catalog{}, errNotConfigured
	}
	return u.Storage.Catalog(ctx)
}

// Action log

func (u *Service) RecordAction(ctx context.Context, a domain.Action) error {
	if u.Actions == nil {
		return errNotConfigured
	}
	return u.Actions.Record(ctx, a)
}

func (u *Service) UndoAction(ctx context.Context) (domain.Action, error) {
	if u.Actions == nil {
		return domain.Action{}, errNotConfigured
	}
	return u.Actions.Undo(ctx)
}

func (u *Service) ClearActions(ctx context.Context) error {
	if u.Actions == nil {
		return errNotConfigured
	}
	return u.Actions.Clear(ctx)
}
