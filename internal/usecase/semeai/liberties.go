package semeai

import (
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
)

// libertyOf reports whether pos is an empty point next to a stone of d.
func (uc *SemeaiUseCase) libertyOf(pos board.Pos, d *board.Dragon) bool {
	size := uc.position.BoardSize()
	if !pos.OnBoard(size) || uc.position.Color(pos) != board.Empty {
		return false
	}
	for _, n := range pos.Neighbors() {
		if !n.OnBoard(size) {
			continue
		}
		if nd := uc.position.Dragon(n); nd != nil && nd.Origin == d.Origin {
			return true
		}
	}
	return false
}

// countLiberties computes M, Y and C for the pair. Each side starts at one
// and loses one per worm, since joining several worms may cost moves. An
// owl-critical dragon whose attack point is not a liberty gets one extra
// liberty, as the attacker must spend a move there.
func (uc *SemeaiUseCase) countLiberties(my, your *board.Dragon) semeai.LibertyCount {
	counts := semeai.LibertyCount{Mine: 1, Yours: 1}
	for _, w := range uc.position.Worms() {
		d := uc.position.Dragon(w.Origin)
		if d == nil {
			continue
		}
		switch d.Origin {
		case my.Origin:
			counts.Mine--
		case your.Origin:
			counts.Yours--
		}
	}

	size := uc.position.BoardSize()
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			pos := board.NewPos(i, j)
			if uc.position.Color(pos) != board.Empty {
				continue
			}
			mine, yours := uc.libertyOf(pos, my), uc.libertyOf(pos, your)
			switch {
			case mine && yours:
				counts.Common++
			case mine:
				counts.Mine++
			case yours:
				counts.Yours++
			}
		}
	}

	if my.OwlStatus == board.Critical && !uc.libertyOf(my.OwlAttackPoint, my) {
		counts.Mine++
	}
	if your.OwlStatus == board.Critical && !uc.libertyOf(your.OwlAttackPoint, your) {
		counts.Yours++
	}
	return counts
}
