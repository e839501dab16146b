package semeai

import (
	"fmt"

	"go.uber.org/zap"

	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
	"semeai_engine/internal/errors"
)

// AnalyzeSemeai runs the race analysis for the dragons at mine and yours.
// The caller is responsible for the pair being adjacent, of opposite colours
// and both DEAD or CRITICAL; Semeai only calls it for such pairs.
func (uc *SemeaiUseCase) AnalyzeSemeai(mine, yours board.Pos) (semeai.Report, error) {
	my := uc.position.Dragon(mine)
	if my == nil {
		return semeai.Report{}, fmt.Errorf("%w: %d", errors.ErrUnknownDragon, mine)
	}
	your := uc.position.Dragon(yours)
	if your == nil {
		return semeai.Report{}, fmt.Errorf("%w: %d", errors.ErrUnknownDragon, yours)
	}
	return uc.analyze(uc.log, my, your), nil
}

func (uc *SemeaiUseCase) analyze(log *zap.SugaredLogger, my, your *board.Dragon) semeai.Report {
	size := uc.position.BoardSize()
	log = log.With("mine", my.Origin.Format(size), "yours", your.Origin.Format(size))
	log.Debug("semeai analyzer")

	report := semeai.Report{Mine: my.Origin, Yours: your.Origin}

	switch uc.owlCrossCheck(log, my, your, &report) {
	case semeai.OwlVacuous:
		log.Debug("owl attack and defense points coincide, nothing to add")
		report.Resolution = semeai.OwlVacuous
		return report
	case semeai.OwlResolved:
		log.Debug("owl code sufficient to resolve semeai, exiting")
		report.Resolution = semeai.OwlResolved
		return report
	}

	if uc.tacticalSituation(my, your) {
		log.Debug("tactical situation detected, exiting")
		report.Resolution = semeai.TacticallyExcluded
		return report
	}

	my.Semeai = true
	your.Semeai = true

	report.Counts = uc.countLiberties(my, your)
	report.Verdict = Classify(my.Genus, your.Genus, report.Counts)
	if !report.Verdict.Resolved() {
		log.Warnw("no semeai rule matches, statuses left unknown",
			"counts", report.Counts.String(), "my_genus", my.Genus, "your_genus", your.Genus)
		return report
	}
	report.Resolution = semeai.Classified
	log.Debugw("semeai classified", "counts", report.Counts.String(),
		"my_status", report.Verdict.Mine.String(), "your_status", report.Verdict.Yours.String(),
		"margin", report.Verdict.Margin.String())

	// An owl-critical verdict on our own dragon outranks the static count in
	// both directions, so its matcher status is left alone.
	if my.OwlStatus != board.Critical {
		uc.updateStatus(log, my, report.Verdict.Mine)
	}
	uc.updateStatus(log, your, report.Verdict.Yours)

	if report.Verdict.Critical() {
		uc.recommendMoves(my, your, &report)
	}
	return report
}

// owlCrossCheck lets the owl verdicts settle the race when they can. It
// returns OwlVacuous when an attack point of one dragon is also the defense
// point of the other, OwlResolved when an owl move decides the race and
// Unresolved otherwise.
func (uc *SemeaiUseCase) owlCrossCheck(log *zap.SugaredLogger, my, your *board.Dragon, report *semeai.Report) semeai.Resolution {
	size := uc.position.BoardSize()
	sufficient := false

	// Our owl attack point may also save the opponent. We cannot add an owl
	// defense reason for an opponent dragon, but a dead opponent becomes
	// critical.
	if my.OwlStatus == board.Critical && (your.OwlStatus == board.Critical || your.OwlStatus == board.Dead) {
		if your.OwlDefensePoint == my.OwlAttackPoint {
			return semeai.OwlVacuous
		}
		if my.OwlAttackPoint != board.NoMove && uc.owl.DoesDefend(my.OwlAttackPoint, your.Origin) {
			if your.OwlStatus == board.Dead {
				uc.setOwlCritical(your)
				log.Debugw("changed owl and matcher status to critical", "dragon", your.Origin.Format(size))
			}
			sufficient = true
		}
	}

	if my.OwlStatus == board.Critical && your.OwlStatus == board.Critical {
		if your.OwlAttackPoint == my.OwlDefensePoint {
			return semeai.OwlVacuous
		}
		if my.OwlDefensePoint != board.NoMove && uc.owl.DoesAttack(my.OwlDefensePoint, your.Origin) {
			uc.addReason(report, semeai.MoveReason{Kind: semeai.OwlAttack, Move: my.OwlDefensePoint, Dragon: your.Origin, Code: board.Win})
			log.Debugw("added owl attack", "dragon", your.Origin.Format(size), "move", my.OwlDefensePoint.Format(size))
			sufficient = true
		}
	}

	if (my.OwlStatus == board.Critical || my.OwlStatus == board.Dead) && your.OwlStatus == board.Critical {
		if your.OwlAttackPoint == my.OwlDefensePoint {
			return semeai.OwlVacuous
		}
		if your.OwlAttackPoint != board.NoMove && uc.owl.DoesDefend(your.OwlAttackPoint, my.Origin) {
			uc.addReason(report, semeai.MoveReason{Kind: semeai.OwlDefense, Move: your.OwlAttackPoint, Dragon: my.Origin, Code: board.Win})
			log.Debugw("added owl defense", "dragon", my.Origin.Format(size), "move", your.OwlAttackPoint.Format(size))
			if my.OwlStatus == board.Dead {
				uc.setOwlCritical(my)
				log.Debugw("changed owl and matcher status to critical", "dragon", my.Origin.Format(size))
			}
			sufficient = true
		}
	}

	// The opponent's defense may kill us; an owl attack reason against our
	// own dragon makes no sense, but the race is still settled.
	if my.OwlStatus == board.Critical && your.OwlStatus == board.Critical {
		if your.OwlDefensePoint == my.OwlAttackPoint {
			return semeai.OwlVacuous
		}
		if your.OwlDefensePoint != board.NoMove && uc.owl.DoesAttack(your.OwlDefensePoint, my.Origin) {
			sufficient = true
		}
	}

	if sufficient {
		return semeai.OwlResolved
	}
	return semeai.Unresolved
}

// tacticalSituation reports whether either dragon has a tactically capturable
// string, owl substantial, in contact with the other dragon. Such tight races
// are left to the reading code.
func (uc *SemeaiUseCase) tacticalSituation(my, your *board.Dragon) bool {
	for _, w := range uc.position.Worms() {
		if w.AttackCode != board.Win || !uc.inPair(w.Origin, my, your) {
			continue
		}
		for _, adj := range uc.tactics.AdjacentStrings(w.Origin) {
			if uc.inPair(adj, my, your) && uc.owl.Substantial(w.Origin) {
				return true
			}
		}
	}
	return false
}

func (uc *SemeaiUseCase) inPair(pos board.Pos, my, your *board.Dragon) bool {
	d := uc.position.Dragon(pos)
	return d != nil && (d.Origin == my.Origin || d.Origin == your.Origin)
}

func (uc *SemeaiUseCase) addReason(report *semeai.Report, r semeai.MoveReason) {
	switch r.Kind {
	case semeai.OwlAttack:
		uc.reasons.AddOwlAttackMove(r.Move, r.Dragon, r.Code)
	case semeai.OwlDefense:
		uc.reasons.AddOwlDefenseMove(r.Move, r.Dragon, r.Code)
	case semeai.SemeaiMove:
		uc.reasons.AddSemeaiMove(r.Move, r.Dragon)
	case semeai.SemeaiThreat:
		uc.reasons.AddSemeaiThreat(r.Move, r.Dragon)
	}
	report.Moves = append(report.Moves, r)
}
