package usecase

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudokugame/internal/actionlog"
	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/generator"
	"svw.info/sudokugame/internal/infrastructure/storage"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/validator"
)

// A complete board with no constraint violations.
var solved = [9][9]uint8{
	{2, 4, 3, 1, 5, 6, 7, 9, 8},
	{1, 5, 8, 7, 3, 9, 2, 4, 6},
	{6, 7, 9, 2, 8, 4, 3, 5, 1},
	{4, 2, 6, 5, 7, 1, 8, 3, 9},
	{9, 8, 1, 3, 6, 2, 4, 7, 5},
	{5, 3, 7, 4, 9, 8, 1, 6, 2},
	{3, 1, 5, 6, 2, 7, 9, 8, 4},
	{8, 6, 4, 9, 1, 3, 5, 2, 7},
	{7, 9, 2, 8, 4, 5, 6, 1, 3},
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	v := validator.New()
	return NewService(v, generator.New(), solver.New(v), storage.NewFS(dir), actionlog.NewFile(dir))
}

func TestDeriveGamesPersistsAllDifficulties(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	source := &domain.Board{Values: solved}
	if err := svc.DeriveGames(ctx, 4242, source); err != nil {
		t.Fatalf("DeriveGames: %v", err)
	}

	cat, err := svc.Catalog(ctx)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !cat.Easy || !cat.Medium || !cat.Hard {
		t.Fatalf("catalog = %+v, want all three playable slots", cat)
	}

	// Each saved board must be an incomplete puzzle at its expected size.
	wantEmpty := map[domain.Difficulty]int{domain.Easy: 10, domain.Medium: 20, domain.Hard: 25}
	for d, n := range wantEmpty {
		b, err := svc.LoadBoard(ctx, d)
		if err != nil {
			t.Fatalf("LoadBoard(%s): %v", d, err)
		}
		if got := b.CountEmpty(); got != n {
			t.Fatalf("%s board has %d empty cells, want %d", d, got, n)
		}
	}
}

func TestDeriveGamesRejectsIncompleteSource(t *testing.T) {
	svc := newTestService(t)
	source := &domain.Board{Values: solved}
	source.Values[0][0] = 0

	err := svc.DeriveGames(context.Background(), 1, source)
	if !errors.Is(err, ErrSourceInvalid) {
		t.Fatalf("DeriveGames = %v, want ErrSourceInvalid", err)
	}

	cat, _ := svc.Catalog(context.Background())
	if cat.AnyAvailable() {
		t.Fatalf("games were saved from a rejected source: %+v", cat)
	}
}

func TestDeriveGamesRejectsInvalidSource(t *testing.T) {
	svc := newTestService(t)
	source := &domain.Board{Values: solved}
	source.Values[0][0] = source.Values[0][1] // row duplicate

	if err := svc.DeriveGames(context.Background(), 1, source); !errors.Is(err, ErrSourceInvalid) {
		t.Fatalf("DeriveGames = %v, want ErrSourceInvalid", err)
	}
}

func TestServiceEndToEndSolve(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Blank five cells that share no row, column, or box.
	b := &domain.Board{Values: solved}
	gaps := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 1, Col: 3}, {Row: 2, Col: 6}, {Row: 3, Col: 1}, {Row: 4, Col: 4}}
	for _, cc := range gaps {
		b.Values[cc.Row][cc.Col] = 0
	}

	res, err := svc.Verify(ctx, b)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.Status != domain.StatusIncomplete {
		t.Fatalf("puzzle status = %s, want INCOMPLETE", res.Status)
	}

	sol, _, err := svc.Solve(ctx, b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, p := range sol {
		if solved[p.Row][p.Col] != p.Value {
			t.Fatalf("placement %+v disagrees with the source solution", p)
		}
	}
}

func TestServiceNilDependencies(t *testing.T) {
	svc := &Service{}
	ctx := context.Background()
	b := &domain.Board{}

	if _, err := svc.Verify(ctx, b); err == nil {
		t.Fatalf("Verify with nil verifier did not fail")
	}
	if _, _, err := svc.Solve(ctx, b); err == nil {
		t.Fatalf("Solve with nil solver did not fail")
	}
	if _, _, err := svc.Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatalf("Generate with nil generator did not fail")
	}
	if err := svc.DeriveGames(ctx, 1, b); err == nil {
		t.Fatalf("DeriveGames with nil deps did not fail")
	}
	if _, err := svc.UndoAction(ctx); err == nil {
		t.Fatalf("UndoAction with nil log did not fail")
	}
}
