// Package actionlog keeps an append-only record of cell edits for the
// in-progress game, one "(row, col, new, prev)" line per edit, so the
// most recent edit can be undone.
package actionlog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudokugame/internal/domain"
)

const logFile = "game.log"

var ErrEmpty = errors.New("action log is empty")

type File struct{ path string }

// NewFile stores the log under dir/current, next to the saved
// in-progress board.
func NewFile(dir string) *File {
	return &File{path: filepath.Join(dir, domain.Current.String(), logFile)}
}

func (l *File) Record(ctx context.Context, a domain.Action) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "(%d, %d, %d, %d)\n", a.Row, a.Col, a.New, a.Prev)
	return err
}

// Undo removes the last recorded action and returns it.
func (l *File) Undo(ctx context.Context) (domain.Action, error) {
	actions, err := l.readAll()
	if err != nil {
		return domain.Action{}, err
	}
	if len(actions) == 0 {
		return domain.Action{}, ErrEmpty
	}
	last := actions[len(actions)-1]
	if err := l.rewrite(actions[:len(actions)-1]); err != nil {
		return domain.Action{}, err
	}
	return last, nil
}

func (l *File) Clear(ctx context.Context) error {
	err := os.Remove(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *File) readAll() ([]domain.Action, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []domain.Action
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		a, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, sc.Err()
}

func parseLine(line string) (domain.Action, error) {
	var a domain.Action
	n, err := fmt.Sscanf(line, "(%d, %d, %d, %d)", &a.Row, &a.Col, &a.New, &a.Prev)
	if err != nil || n != 4 {
		return domain.Action{}, fmt.Errorf("malformed log line %q", line)
	}
	return a, nil
}

func (l *File) rewrite(actions []domain.Action) error {
	f, err := os.Create(l.path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, a := range actions {
		if _, err := fmt.Fprintf(f, "(%d, %d, %d, %d)\n", a.Row, a.Col, a.New, a.Prev); err != nil {
			return err
		}
	}
	return nil
}
