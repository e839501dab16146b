package semeai

import (
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
)

// recommendMoves adds move reasons for a critical race. In order of priority:
// defend our dragon, attack yours, make or kill a half eye when more than one
// liberty is shared, fill an outside liberty of yours, fill a shared liberty.
// The first candidate group that yields a move wins.
func (uc *SemeaiUseCase) recommendMoves(my, your *board.Dragon, report *semeai.Report) {
	if my.OwlStatus == board.Critical && my.OwlDefensePoint != board.NoMove {
		uc.addSemeaiMoves(report, my.OwlDefensePoint)
		return
	}
	if your.OwlStatus == board.Critical && your.OwlAttackPoint != board.NoMove {
		uc.addSemeaiMoves(report, your.OwlAttackPoint)
		return
	}

	if report.Counts.Common > 1 {
		found := false
		for _, d := range []*board.Dragon{my, your} {
			if d.Heyes > 0 && d.Heye != board.NoMove {
				uc.addSemeaiMoves(report, d.Heye)
				found = true
			}
		}
		if found {
			return
		}
	}

	// Every outside liberty we can play safely gets a reason. A winning move
	// inside the opponent's eyespace may not be safe; the reading code is
	// expected to handle the race once those are all filled.
	if uc.fillLiberties(my, your, report, false) {
		return
	}
	// Filling a shared liberty is usually bad, but we only get here when the
	// count says we have liberties to spare. Safety is still required.
	uc.fillLiberties(my, your, report, true)
}

func (uc *SemeaiUseCase) fillLiberties(my, your *board.Dragon, report *semeai.Report, shared bool) bool {
	size := uc.position.BoardSize()
	found := false
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			pos := board.NewPos(i, j)
			if !uc.libertyOf(pos, your) || uc.libertyOf(pos, my) != shared {
				continue
			}
			if !uc.tactics.IsSafeMove(pos, my.Color) {
				continue
			}
			uc.addSemeaiMoves(report, pos)
			found = true
		}
	}
	return found
}

// addSemeaiMoves registers move against each dragon that is critical, or as a
// threat when the race is won or lost by exactly one liberty.
func (uc *SemeaiUseCase) addSemeaiMoves(report *semeai.Report, move board.Pos) {
	v := report.Verdict
	for _, side := range []struct {
		dragon board.Pos
		status board.Status
	}{
		{report.Mine, v.Mine},
		{report.Yours, v.Yours},
	} {
		switch {
		case side.status == board.Critical:
			uc.addReason(report, semeai.MoveReason{Kind: semeai.SemeaiMove, Move: move, Dragon: side.dragon})
		case v.Margin.Is(1):
			uc.addReason(report, semeai.MoveReason{Kind: semeai.SemeaiThreat, Move: move, Dragon: side.dragon})
		}
	}
}
