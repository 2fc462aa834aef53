package domain

import "strings"

// Difficulty selects how many cells the generator carves out.
// Current is a storage slot for the in-progress game and is never
// handed to the generator.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Current
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Current:
		return "current"
	}
	return "unknown"
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "current":
		return Current, true
	}
	return 0, false
}

// UnitKind names one of the three constraint groups.
type UnitKind string

const (
	UnitRow UnitKind = "ROW"
	UnitCol UnitKind = "COL"
	UnitBox UnitKind = "BOX"
)

// Status classifies a verification pass. Invalid dominates Incomplete,
// which dominates Valid.
type Status string

const (
	StatusValid      Status = "VALID"
	StatusInvalid    Status = "INVALID"
	StatusIncomplete Status = "INCOMPLETE"
)
