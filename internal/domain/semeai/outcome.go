package semeai

import (
	"fmt"

	"semeai_engine/internal/domain/board"
)

// Margin is the liberty advantage of the winning side, or Seki when neither
// side can capture the other.
type Margin struct {
	value int
	seki  bool
}

var Seki = Margin{seki: true}

func Liberties(n int) Margin { return Margin{value: n} }

func (m Margin) IsSeki() bool { return m.seki }

// Value returns the numeric margin; ok is false for seki.
func (m Margin) Value() (n int, ok bool) { return m.value, !m.seki }

// Is reports whether the margin is exactly n liberties. Seki never matches.
func (m Margin) Is(n int) bool { return !m.seki && m.value == n }

func (m Margin) String() string {
	if m.seki {
		return "seki"
	}
	return fmt.Sprintf("%d", m.value)
}

// LibertyCount holds the race quantities: M and Y exclude shared liberties,
// C counts them.
type LibertyCount struct {
	Mine   int
	Yours  int
	Common int
}

func (c LibertyCount) String() string {
	return fmt.Sprintf("M=%d Y=%d C=%d", c.Mine, c.Yours, c.Common)
}

type Verdict struct {
	Mine   board.Status
	Yours  board.Status
	Margin Margin
}

// Resolved is false when the classification table had no matching rule.
func (v Verdict) Resolved() bool {
	return v.Mine != board.Unknown && v.Yours != board.Unknown
}

func (v Verdict) Critical() bool {
	return v.Mine == board.Critical || v.Yours == board.Critical
}

// Resolution tells which step of the analysis produced the result.
type Resolution int

const (
	Unresolved Resolution = iota
	OwlResolved
	OwlVacuous
	TacticallyExcluded
	Classified
)

func (r Resolution) String() string {
	switch r {
	case OwlResolved:
		return "owl-resolved"
	case OwlVacuous:
		return "owl-vacuous"
	case TacticallyExcluded:
		return "tactically-excluded"
	case Classified:
		return "classified"
	}
	return "unresolved"
}

// Report describes the analysis of one dragon pair.
type Report struct {
	Mine       board.Pos
	Yours      board.Pos
	Resolution Resolution
	Counts     LibertyCount
	Verdict    Verdict
	Moves      []MoveReason
}
