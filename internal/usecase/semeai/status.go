package semeai

import (
	"go.uber.org/zap"

	"semeai_engine/internal/domain/board"
)

// updateStatus sets the matcher status of the whole dragon. A dragon that
// went through a resolved race is no longer judged on its own, so its safety
// becomes ALIVE_IN_SEKI whatever the new status is.
func (uc *SemeaiUseCase) updateStatus(log *zap.SugaredLogger, d *board.Dragon, status board.Status) {
	size := uc.position.BoardSize()
	log.Debugw("changing matcher status", "dragon", d.Origin.Format(size),
		"from", d.MatcherStatus.String(), "to", status.String())
	log.Debugw("changing safety", "dragon", d.Origin.Format(size),
		"from", d.Safety.String(), "to", board.SafetyAliveInSeki.String())

	d.MatcherStatus = status
	d.Safety = board.SafetyAliveInSeki
}

func (uc *SemeaiUseCase) setOwlCritical(d *board.Dragon) {
	d.OwlStatus = board.Critical
	d.MatcherStatus = board.Critical
}
