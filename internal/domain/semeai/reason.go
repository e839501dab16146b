package semeai

import "semeai_engine/internal/domain/board"

type ReasonKind int

const (
	OwlAttack ReasonKind = iota + 1
	OwlDefense
	SemeaiMove
	SemeaiThreat
)

func (k ReasonKind) String() string {
	switch k {
	case OwlAttack:
		return "owl-attack"
	case OwlDefense:
		return "owl-defense"
	case SemeaiMove:
		return "semeai-move"
	case SemeaiThreat:
		return "semeai-threat"
	}
	return "none"
}

// MoveReason records why Move is worth considering with respect to Dragon.
type MoveReason struct {
	Kind   ReasonKind
	Move   board.Pos
	Dragon board.Pos
	Code   board.Code
}
