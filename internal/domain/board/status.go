package board

import (
	"fmt"
	"strings"

	"semeai_engine/internal/errors"
)

type Color int

const (
	Empty Color = iota
	White
	Black
	Gray // off board
)

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return c
}

func (c Color) IsStone() bool { return c == White || c == Black }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Gray:
		return "gray"
	}
	return "empty"
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return Empty, fmt.Errorf("%w: color %q", errors.ErrAnnotation, s)
}

// Status is a life-and-death verdict. The zero value is Unknown.
type Status int

const (
	Unknown Status = iota
	Alive
	Dead
	Critical
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Critical:
		return "critical"
	}
	return "unknown"
}

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return Unknown, nil
	case "alive":
		return Alive, nil
	case "dead":
		return Dead, nil
	case "critical":
		return Critical, nil
	}
	return Unknown, fmt.Errorf("%w: status %q", errors.ErrAnnotation, s)
}

// Safety is the finer-grained dragon classification used by move valuation.
type Safety int

const (
	SafetyUnknown Safety = iota
	SafetyDead
	SafetyAlive
	SafetyCritical
	SafetyInessential
	SafetyTacticallyDead
	SafetyWeaklyAlive
	SafetyAliveInSeki
	SafetyStronglyAlive
	SafetyInvincible
	SafetyInsubstantial
)

var safetyNames = [...]string{
	SafetyUnknown:        "unknown",
	SafetyDead:           "dead",
	SafetyAlive:          "alive",
	SafetyCritical:       "critical",
	SafetyInessential:    "inessential",
	SafetyTacticallyDead: "tactically_dead",
	SafetyWeaklyAlive:    "weakly_alive",
	SafetyAliveInSeki:    "alive_in_seki",
	SafetyStronglyAlive:  "strongly_alive",
	SafetyInvincible:     "invincible",
	SafetyInsubstantial:  "insubstantial",
}

func (s Safety) String() string {
	if s < 0 || int(s) >= len(safetyNames) {
		return "unknown"
	}
	return safetyNames[s]
}

func ParseSafety(s string) (Safety, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return SafetyUnknown, nil
	}
	for i, n := range safetyNames {
		if n == name {
			return Safety(i), nil
		}
	}
	return SafetyUnknown, fmt.Errorf("%w: safety %q", errors.ErrAnnotation, s)
}

// Code is a tactical reading result. Zero means the operation fails.
type Code int

const (
	CodeNone Code = iota
	KoB
	KoA
	Win
)

func (c Code) String() string {
	switch c {
	case KoB:
		return "ko_b"
	case KoA:
		return "ko_a"
	case Win:
		return "win"
	}
	return "none"
}
