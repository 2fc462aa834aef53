package generator

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/validator"
)

func TestGenerateRemovalCounts(t *testing.T) {
	cases := []struct {
		name  string
		diff  domain.Difficulty
		empty int
	}{
		{"easy", domain.Easy, 10},
		{"medium", domain.Medium, 20},
		{"hard", domain.Hard, 25},
	}

	g := New()
	v := validator.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, st, err := g.Generate(context.Background(), 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s): %v", tc.name, err)
			}
			if st.Nodes == 0 {
				t.Fatalf("stats reported zero placement attempts")
			}

			if got := p.Board.CountEmpty(); got != tc.empty {
				t.Fatalf("carved puzzle has %d empty cells, want %d", got, tc.empty)
			}
			res := v.Verify(context.Background(), &p.Board)
			if res.Status != domain.StatusIncomplete {
				t.Fatalf("carved puzzle status = %s, want INCOMPLETE", res.Status)
			}

			// The solved intermediate board must itself be fully valid.
			if p.Solved.CountEmpty() != 0 {
				t.Fatalf("solved board has empty cells")
			}
			if res := v.Verify(context.Background(), &p.Solved); res.Status != domain.StatusValid {
				t.Fatalf("solved board status = %s, want VALID (dups %v)", res.Status, res.Duplicates)
			}

			// Every non-zero puzzle cell matches the solved board.
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if pv := p.Board.Values[r][c]; pv != 0 && pv != p.Solved.Values[r][c] {
						t.Fatalf("puzzle cell (%d,%d)=%d disagrees with solution %d", r, c, pv, p.Solved.Values[r][c])
					}
				}
			}
		})
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	g := New()
	a, _, err := g.Generate(context.Background(), 777, domain.Medium)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	b, _, err := g.Generate(context.Background(), 777, domain.Medium)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if a.Board.Values != b.Board.Values || a.Solved.Values != b.Solved.Values {
		t.Fatalf("same seed produced different puzzles")
	}

	c, _, err := g.Generate(context.Background(), 778, domain.Medium)
	if err != nil {
		t.Fatalf("third Generate: %v", err)
	}
	if a.Solved.Values == c.Solved.Values {
		t.Fatalf("different seeds produced the same solved board")
	}
}

func TestGenerateRejectsCurrent(t *testing.T) {
	if _, _, err := New().Generate(context.Background(), 1, domain.Current); err == nil {
		t.Fatalf("Generate(current) did not fail")
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New().Generate(ctx, 1, domain.Easy)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate with canceled ctx = %v, want context.Canceled", err)
	}
}
