package semeai

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
)

// PositionStore gives access to the stones, worms and dragons of the position
// under analysis. Dragon and Worm records are mutated in place.
type PositionStore interface {
	BoardSize() int
	Color(pos board.Pos) board.Color
	Dragons() []*board.Dragon
	Dragon(pos board.Pos) *board.Dragon
	Worms() []*board.Worm
	Worm(pos board.Pos) *board.Worm
}

// OwlOracle answers life-and-death questions from deep search.
type OwlOracle interface {
	DoesDefend(move, dragon board.Pos) bool
	DoesAttack(move, dragon board.Pos) bool
	Substantial(worm board.Pos) bool
}

// TacticalOracle reads captures of single strings. TryMove and PopMove form a
// strictly LIFO pair.
type TacticalOracle interface {
	Attack(str board.Pos) (board.Code, board.Pos)
	TryMove(move board.Pos, color board.Color) bool
	PopMove()
	StackDepth() int
	IsSafeMove(move board.Pos, color board.Color) bool
	AdjacentStrings(str board.Pos) []board.Pos
	ChangeAttack(str, move board.Pos, code board.Code)
	ChangeDefense(str, move board.Pos, code board.Code)
}

// MoveReasonStore is the append-only collection read later by move selection.
type MoveReasonStore interface {
	AddOwlAttackMove(move, dragon board.Pos, code board.Code)
	AddOwlDefenseMove(move, dragon board.Pos, code board.Code)
	AddSemeaiMove(move, dragon board.Pos)
	AddSemeaiThreat(move, dragon board.Pos)
}

type SemeaiUseCase struct {
	position PositionStore
	owl      OwlOracle
	tactics  TacticalOracle
	reasons  MoveReasonStore
	log      *zap.SugaredLogger
}

func NewSemeaiUseCase(position PositionStore, owl OwlOracle, tactics TacticalOracle, reasons MoveReasonStore, log *zap.SugaredLogger) *SemeaiUseCase {
	return &SemeaiUseCase{
		position: position,
		owl:      owl,
		tactics:  tactics,
		reasons:  reasons,
		log:      log,
	}
}

// Semeai looks for adjacent pairs of opposite-coloured dragons that are both
// DEAD or CRITICAL, with the first one of the given colour, and analyzes each
// pair. Dragon statuses are revised and move reasons are added where a move
// now changes the outcome.
func (uc *SemeaiUseCase) Semeai(color board.Color) []semeai.Report {
	other := color.Other()
	log := uc.log.With("pass_id", uuid.New().String())
	log.Debugf("semeai player is thinking for %s", color)

	var reports []semeai.Report
	for _, d1 := range uc.position.Dragons() {
		if d1.Color != color || !inRace(d1.MatcherStatus) {
			continue
		}
		for _, origin := range d1.Neighbors {
			d2 := uc.position.Dragon(origin)
			if d2 == nil || d2.Color != other || !inRace(d2.MatcherStatus) {
				continue
			}
			if uc.inessential(d1) || uc.inessential(d2) {
				continue
			}
			reports = append(reports, uc.analyze(log, d1, d2))
		}
	}
	return reports
}

func inRace(s board.Status) bool {
	return s == board.Dead || s == board.Critical
}

func (uc *SemeaiUseCase) inessential(d *board.Dragon) bool {
	if d.Safety == board.SafetyInessential {
		return true
	}
	w := uc.position.Worm(d.Origin)
	return w != nil && w.Inessential
}

// ReviseSemeai changes the matcher status of every DEAD dragon of the other
// colour that took part in a semeai to UNKNOWN. It reports whether any
// dragon changed.
func (uc *SemeaiUseCase) ReviseSemeai(color board.Color) bool {
	other := color.Other()
	size := uc.position.BoardSize()
	found := false
	for _, d := range uc.position.Dragons() {
		if !d.Semeai || d.MatcherStatus != board.Dead || d.Color != other {
			continue
		}
		found = true
		d.MatcherStatus = board.Unknown
		uc.log.Infow("revise semeai: changed status from dead to unknown", "dragon", d.Origin.Format(size))
	}
	return found
}
