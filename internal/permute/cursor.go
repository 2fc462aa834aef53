// Package permute enumerates digit tuples for a fixed set of unknown
// cells, in counting order: (1,1,...,1) first, (9,9,...,9) last.
package permute

import (
	"errors"
	"fmt"
	"sync"
)

var ErrExhausted = errors.New("permutation cursor exhausted")

// Cursor walks every tuple in {1,...,9}^arity exactly once. It is safe
// for concurrent use: the read-current-then-advance step is a single
// critical section, so no tuple is skipped or handed out twice.
type Cursor struct {
	mu      sync.Mutex
	arity   int
	current []uint8
	done    bool
}

// New returns a cursor positioned at the all-ones tuple.
func New(arity int) (*Cursor, error) {
	if arity < 1 || arity > 9 {
		return nil, fmt.Errorf("cursor arity must be in [1,9], got %d", arity)
	}
	current := make([]uint8, arity)
	for i := range current {
		current[i] = 1
	}
	return &Cursor{arity: arity, current: current}, nil
}

// HasNext reports whether a tuple remains to be issued.
func (c *Cursor) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.done
}

// Next returns the current tuple and advances. After the last tuple has
// been issued it returns ErrExhausted.
func (c *Cursor) Next() ([]uint8, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return nil, ErrExhausted
	}
	out := make([]uint8, c.arity)
	copy(out, c.current)
	c.advance()
	return out, nil
}

// advance increments the rightmost digit, carrying left on overflow like
// an odometer in base 9 over digits 1-9. Carrying past the leftmost
// digit marks the cursor exhausted. Caller holds c.mu.
func (c *Cursor) advance() {
	for i := c.arity - 1; i >= 0; i-- {
		if c.current[i] < 9 {
			c.current[i]++
			return
		}
		c.current[i] = 1
	}
	c.done = true
}

// Total returns 9^arity, the number of tuples the cursor issues overall.
func (c *Cursor) Total() int {
	n := 1
	for i := 0; i < c.arity; i++ {
		n *= 9
	}
	return n
}
