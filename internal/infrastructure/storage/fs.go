// Package storage persists one board per difficulty slot as a 9x9 CSV of
// digits under <dir>/{easy,medium,hard,current}/board.csv. The core
// assumes well-formed digits 0-9; anything else is rejected at load.
package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"svw.info/sudokugame/internal/domain"
)

const boardFile = "board.csv"

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), boardFile)
}

func (s *FS) Save(ctx context.Context, b *domain.Board, d domain.Difficulty) error {
	target := s.pathFor(d)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := make([]string, 9)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			row[c] = strconv.Itoa(int(b.Values[r][c]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *FS) Load(ctx context.Context, d domain.Difficulty) (*domain.Board, error) {
	f, err := os.Open(s.pathFor(d))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s board: %w", d, err)
	}
	if len(records) != 9 {
		return nil, fmt.Errorf("%s board: expected 9 rows, got %d", d, len(records))
	}
	b := &domain.Board{}
	for r, rec := range records {
		if len(rec) != 9 {
			return nil, fmt.Errorf("%s board row %d: expected 9 cells, got %d", d, r, len(rec))
		}
		for c, field := range rec {
			v, err := strconv.Atoi(field)
			if err != nil || v < 0 || v > 9 {
				return nil, fmt.Errorf("%s board cell (%d,%d): bad digit %q", d, r, c, field)
			}
			b.Values[r][c] = uint8(v)
		}
	}
	return b, nil
}

func (s *FS) Delete(ctx context.Context, d domain.Difficulty) error {
	err := os.Remove(s.pathFor(d))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FS) Catalog(ctx context.Context) (domain.Catalog, error) {
	exists := func(d domain.Difficulty) bool {
		_, err := os.Stat(s.pathFor(d))
		return err == nil
	}
	return domain.Catalog{
		Easy:    exists(domain.Easy),
		Medium:  exists(domain.Medium),
		Hard:    exists(domain.Hard),
		Current: exists(domain.Current),
	}, nil
}
