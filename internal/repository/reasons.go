package repo

import (
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
)

// MoveReasonRepository collects move reasons in the order they are added.
// Nothing is ever removed.
type MoveReasonRepository struct {
	reasons []semeai.MoveReason
}

func NewMoveReasonRepository() *MoveReasonRepository {
	return &MoveReasonRepository{}
}

func (r *MoveReasonRepository) AddOwlAttackMove(move, dragon board.Pos, code board.Code) {
	r.reasons = append(r.reasons, semeai.MoveReason{Kind: semeai.OwlAttack, Move: move, Dragon: dragon, Code: code})
}

func (r *MoveReasonRepository) AddOwlDefenseMove(move, dragon board.Pos, code board.Code) {
	r.reasons = append(r.reasons, semeai.MoveReason{Kind: semeai.OwlDefense, Move: move, Dragon: dragon, Code: code})
}

func (r *MoveReasonRepository) AddSemeaiMove(move, dragon board.Pos) {
	r.reasons = append(r.reasons, semeai.MoveReason{Kind: semeai.SemeaiMove, Move: move, Dragon: dragon})
}

func (r *MoveReasonRepository) AddSemeaiThreat(move, dragon board.Pos) {
	r.reasons = append(r.reasons, semeai.MoveReason{Kind: semeai.SemeaiThreat, Move: move, Dragon: dragon})
}

func (r *MoveReasonRepository) Reasons() []semeai.MoveReason {
	out := make([]semeai.MoveReason, len(r.reasons))
	copy(out, r.reasons)
	return out
}

func (r *MoveReasonRepository) For(dragon board.Pos) []semeai.MoveReason {
	var out []semeai.MoveReason
	for _, reason := range r.reasons {
		if reason.Dragon == dragon {
			out = append(out, reason)
		}
	}
	return out
}
