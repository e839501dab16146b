package semeai

import (
	"fmt"

	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/errors"
)

// SmallSemeai fixes a blind spot of the tactical reading of strings with
// three or four liberties: a defense may consist of attacking an adjacent
// opponent string. For every such capturable string next to a capturable
// opponent string it tries the attacks directly and revises the attack and
// defense points of both.
func (uc *SemeaiUseCase) SmallSemeai() {
	uc.assertStackDepth(0)
	for _, w := range uc.position.Worms() {
		if (w.Liberties != 3 && w.Liberties != 4) || w.AttackCode == board.CodeNone {
			continue
		}
		for _, adj := range uc.tactics.AdjacentStrings(w.Origin) {
			other := uc.position.Worm(adj)
			if other == nil || other.Color != w.Color.Other() {
				continue
			}
			uc.smallSemeai(w, other)
		}
	}
}

func (uc *SemeaiUseCase) smallSemeai(str1, str2 *board.Worm) {
	if str2.AttackCode == board.CodeNone || str2.Liberties < 3 {
		return
	}
	if str1.AttackCode == board.CodeNone || str1.Liberties < 3 {
		return
	}

	// TODO: only the direct attack and one counter-attack are tried; approach
	// moves and ko are not considered.
	uc.smallSemeaiOneWay(str1, str2)
	uc.assertStackDepth(0)
	uc.smallSemeaiOneWay(str2, str1)
	uc.assertStackDepth(0)
}

// smallSemeaiOneWay lets the opponent play the attack on str1. If str2 then
// becomes safe, that point defends str2 as well. If instead str1's owner can
// attack str2 in turn and str1 survives, the attack on str1 is void.
func (uc *SemeaiUseCase) smallSemeaiOneWay(str1, str2 *board.Worm) {
	size := uc.position.BoardSize()
	color, other := str1.Color, str2.Color
	attack := str1.AttackPoint

	defends, refuted := false, false
	tried := uc.withTrial(attack, other, func() {
		code, counter := uc.tactics.Attack(str2.Origin)
		if code == board.CodeNone {
			defends = true
			return
		}
		countered := uc.withTrial(counter, color, func() {
			if code, _ := uc.tactics.Attack(str1.Origin); code == board.CodeNone {
				refuted = true
			}
		})
		if !countered {
			uc.log.Debugw("small semeai: counter-attack refused", "string", str2.Origin.Format(size), "move", counter.Format(size))
		}
	})
	if !tried {
		uc.log.Debugw("small semeai: attack refused", "string", str1.Origin.Format(size), "move", attack.Format(size))
		return
	}

	switch {
	case defends:
		uc.log.Debugw("small semeai: attack also defends", "string", str2.Origin.Format(size), "move", attack.Format(size))
		uc.tactics.ChangeDefense(str2.Origin, attack, board.Win)
	case refuted:
		uc.log.Debugw("small semeai: attack refuted by counter-attack", "string", str1.Origin.Format(size))
		uc.tactics.ChangeAttack(str1.Origin, board.NoMove, board.CodeNone)
	}
}

// withTrial plays move as a trial, runs body and takes the move back on every
// way out of body. It reports whether the move was legal.
func (uc *SemeaiUseCase) withTrial(move board.Pos, color board.Color, body func()) bool {
	if !uc.tactics.TryMove(move, color) {
		return false
	}
	defer uc.tactics.PopMove()
	body()
	return true
}

func (uc *SemeaiUseCase) assertStackDepth(want int) {
	if got := uc.tactics.StackDepth(); got != want {
		panic(fmt.Errorf("%w: depth %d, want %d", errors.ErrUnbalancedTrial, got, want))
	}
}
