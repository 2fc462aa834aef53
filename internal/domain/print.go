package domain

import (
	"fmt"
	"strings"
)

// String renders the board for terminal output, with dots for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			if b.Values[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", b.Values[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
