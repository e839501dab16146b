package repo

import (
	"fmt"
	"sort"

	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/errors"
)

// Examine computes worms and then one dragon per worm for the current
// position. It must be called at the root, outside any trial sequence.
func (b *BoardRepository) Examine() error {
	if err := b.MakeWorms(); err != nil {
		return err
	}
	b.MakeDragons()
	return nil
}

// MakeWorms builds the worm records, including tactical attack and defense.
func (b *BoardRepository) MakeWorms() error {
	if len(b.stack) != 0 {
		return fmt.Errorf("%w: depth %d", errors.ErrUnbalancedTrial, len(b.stack))
	}
	b.wormOf = [board.BoardMax]board.Pos{}
	b.worms = make(map[board.Pos]*board.Worm)

	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			pos := board.NewPos(i, j)
			if !b.stones[pos].IsStone() || b.wormOf[pos] != board.NoMove {
				continue
			}
			stones := b.StringStones(pos)
			origin := stones[0]
			for _, s := range stones {
				b.wormOf[s] = origin
			}
			w := &board.Worm{
				Origin:    origin,
				Color:     b.stones[origin],
				Size:      len(stones),
				Liberties: len(b.StringLiberties(origin)),
			}
			w.AttackCode, w.AttackPoint = b.Attack(origin)
			if w.AttackCode != board.CodeNone {
				w.DefenseCode, w.DefensePoint = b.FindDefense(origin)
			}
			b.worms[origin] = w
		}
	}
	b.log.Debugw("worms computed", "count", len(b.worms))
	return nil
}

// MakeDragons starts with every worm as its own dragon. MergeDragons joins
// them afterwards.
func (b *BoardRepository) MakeDragons() {
	b.dragonOf = make(map[board.Pos]board.Pos, len(b.worms))
	b.dragons = make(map[board.Pos]*board.Dragon, len(b.worms))
	for origin, w := range b.worms {
		b.dragonOf[origin] = origin
		b.dragons[origin] = &board.Dragon{
			Origin:          origin,
			Color:           w.Color,
			OwlAttackPoint:  board.NoMove,
			OwlDefensePoint: board.NoMove,
			Heye:            board.NoMove,
		}
	}
	b.linkDragons()
}

// MergeDragons joins the dragons of the stones at a and b. The dragon with
// the smaller origin absorbs the other; its record is kept.
func (b *BoardRepository) MergeDragons(a, c board.Pos) error {
	da, dc := b.Dragon(a), b.Dragon(c)
	if da == nil || dc == nil {
		return fmt.Errorf("%w: merge %s and %s", errors.ErrUnknownDragon, a.Format(b.size), c.Format(b.size))
	}
	if da.Color != dc.Color {
		return fmt.Errorf("%w: merge of %s and %s dragons", errors.ErrAnnotation, da.Color, dc.Color)
	}
	if da.Origin == dc.Origin {
		return nil
	}
	keep, drop := da, dc
	if drop.Origin < keep.Origin {
		keep, drop = drop, keep
	}
	for worm, dragon := range b.dragonOf {
		if dragon == drop.Origin {
			b.dragonOf[worm] = keep.Origin
		}
	}
	delete(b.dragons, drop.Origin)
	b.linkDragons()
	return nil
}

func (b *BoardRepository) linkDragons() {
	adjacent := make(map[board.Pos]map[board.Pos]bool, len(b.dragons))
	for i := 0; i < b.size; i++ {
		for j := 0; j < b.size; j++ {
			pos := board.NewPos(i, j)
			d := b.Dragon(pos)
			if d == nil {
				continue
			}
			for _, n := range pos.Neighbors() {
				nd := b.Dragon(n)
				if nd == nil || nd.Color == d.Color {
					continue
				}
				if adjacent[d.Origin] == nil {
					adjacent[d.Origin] = make(map[board.Pos]bool)
				}
				adjacent[d.Origin][nd.Origin] = true
			}
		}
	}
	for origin, d := range b.dragons {
		d.Neighbors = d.Neighbors[:0]
		for n := range adjacent[origin] {
			d.Neighbors = append(d.Neighbors, n)
		}
		sort.Slice(d.Neighbors, func(i, j int) bool { return d.Neighbors[i] < d.Neighbors[j] })
	}
}

// Worm returns the root-position worm containing pos, or nil.
func (b *BoardRepository) Worm(pos board.Pos) *board.Worm {
	if pos <= board.NoMove || int(pos) >= board.BoardMax {
		return nil
	}
	origin := b.wormOf[pos]
	if origin == board.NoMove {
		return nil
	}
	return b.worms[origin]
}

// Dragon returns the root-position dragon containing pos, or nil.
func (b *BoardRepository) Dragon(pos board.Pos) *board.Dragon {
	w := b.Worm(pos)
	if w == nil {
		return nil
	}
	origin, ok := b.dragonOf[w.Origin]
	if !ok {
		return nil
	}
	return b.dragons[origin]
}

func (b *BoardRepository) Worms() []*board.Worm {
	worms := make([]*board.Worm, 0, len(b.worms))
	for _, w := range b.worms {
		worms = append(worms, w)
	}
	sort.Slice(worms, func(i, j int) bool { return worms[i].Origin < worms[j].Origin })
	return worms
}

func (b *BoardRepository) Dragons() []*board.Dragon {
	dragons := make([]*board.Dragon, 0, len(b.dragons))
	for _, d := range b.dragons {
		dragons = append(dragons, d)
	}
	sort.Slice(dragons, func(i, j int) bool { return dragons[i].Origin < dragons[j].Origin })
	return dragons
}

func (b *BoardRepository) ChangeAttack(str, move board.Pos, code board.Code) {
	w := b.Worm(str)
	if w == nil {
		return
	}
	b.log.Debugw("changing attack", "string", str.Format(b.size),
		"from", w.AttackPoint.Format(b.size), "to", move.Format(b.size), "code", code.String())
	w.AttackCode, w.AttackPoint = code, move
}

func (b *BoardRepository) ChangeDefense(str, move board.Pos, code board.Code) {
	w := b.Worm(str)
	if w == nil {
		return
	}
	b.log.Debugw("changing defense", "string", str.Format(b.size),
		"from", w.DefensePoint.Format(b.size), "to", move.Format(b.size), "code", code.String())
	w.DefenseCode, w.DefensePoint = code, move
}
