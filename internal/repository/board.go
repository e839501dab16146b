package repo

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/errors"
)

type ply struct {
	move     board.Pos
	color    board.Color
	captured []board.Pos
	ko       board.Pos
}

// BoardRepository holds the stones of one position together with the worm
// and dragon records computed for it. Trial moves are kept on an explicit
// LIFO stack; worm and dragon records always describe the root position.
type BoardRepository struct {
	size      int
	readDepth int
	log       *zap.SugaredLogger

	stones [board.BoardMax]board.Color
	ko     board.Pos
	stack  []ply

	wormOf   [board.BoardMax]board.Pos
	worms    map[board.Pos]*board.Worm
	dragonOf map[board.Pos]board.Pos
	dragons  map[board.Pos]*board.Dragon
}

func NewBoardRepository(size int, cfg bootstrap.Config, log *zap.SugaredLogger) (*BoardRepository, error) {
	if size < 1 || size > board.MaxBoard {
		return nil, fmt.Errorf("%w: %d", errors.ErrBoardSize, size)
	}
	b := &BoardRepository{
		size:      size,
		readDepth: cfg.ReadDepth,
		log:       log,
		worms:     make(map[board.Pos]*board.Worm),
		dragonOf:  make(map[board.Pos]board.Pos),
		dragons:   make(map[board.Pos]*board.Dragon),
	}
	for pos := range b.stones {
		if board.Pos(pos).OnBoard(size) {
			b.stones[pos] = board.Empty
		} else {
			b.stones[pos] = board.Gray
		}
	}
	return b, nil
}

func (b *BoardRepository) BoardSize() int { return b.size }

func (b *BoardRepository) Color(pos board.Pos) board.Color {
	if pos < 0 || int(pos) >= board.BoardMax {
		return board.Gray
	}
	return b.stones[pos]
}

// Setup puts a stone on the board without capturing, as SGF AB/AW do.
func (b *BoardRepository) Setup(pos board.Pos, color board.Color) error {
	if !pos.OnBoard(b.size) || !color.IsStone() {
		return fmt.Errorf("%w: setup %s at %s", errors.ErrIllegalMove, color, pos.Format(b.size))
	}
	b.stones[pos] = color
	return nil
}

// Clear removes whatever stands at pos, as SGF AE does.
func (b *BoardRepository) Clear(pos board.Pos) error {
	if !pos.OnBoard(b.size) {
		return fmt.Errorf("%w: %d", errors.ErrInvalidCoordinate, pos)
	}
	b.stones[pos] = board.Empty
	return nil
}

// Play makes a permanent move with captures.
func (b *BoardRepository) Play(pos board.Pos, color board.Color) error {
	if len(b.stack) != 0 {
		return fmt.Errorf("%w: play during reading at depth %d", errors.ErrIllegalMove, len(b.stack))
	}
	if pos == board.NoMove {
		b.ko = board.NoMove
		return nil
	}
	if _, ok := b.place(pos, color); !ok {
		return fmt.Errorf("%w: %s at %s", errors.ErrIllegalMove, color, pos.Format(b.size))
	}
	return nil
}

// TryMove plays a trial move and pushes it on the stack. Occupied points,
// suicide and simple ko recaptures are refused without pushing anything.
func (b *BoardRepository) TryMove(pos board.Pos, color board.Color) bool {
	ko := b.ko
	captured, ok := b.place(pos, color)
	if !ok {
		return false
	}
	b.stack = append(b.stack, ply{move: pos, color: color, captured: captured, ko: ko})
	return true
}

// PopMove takes back the last trial move.
func (b *BoardRepository) PopMove() {
	if len(b.stack) == 0 {
		panic(fmt.Errorf("%w: pop on empty stack", errors.ErrUnbalancedTrial))
	}
	last := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	b.stones[last.move] = board.Empty
	for _, pos := range last.captured {
		b.stones[pos] = last.color.Other()
	}
	b.ko = last.ko
}

func (b *BoardRepository) StackDepth() int { return len(b.stack) }

func (b *BoardRepository) place(pos board.Pos, color board.Color) ([]board.Pos, bool) {
	if !pos.OnBoard(b.size) || !color.IsStone() || b.stones[pos] != board.Empty || pos == b.ko {
		return nil, false
	}
	b.stones[pos] = color
	other := color.Other()

	var captured []board.Pos
	for _, n := range pos.Neighbors() {
		if b.stones[n] != other || b.hasLiberty(n) {
			continue
		}
		stones := b.StringStones(n)
		for _, s := range stones {
			b.stones[s] = board.Empty
		}
		captured = append(captured, stones...)
	}

	libs := b.StringLiberties(pos)
	if len(libs) == 0 {
		b.stones[pos] = board.Empty
		return nil, false
	}

	b.ko = board.NoMove
	if len(captured) == 1 && len(libs) == 1 && len(b.StringStones(pos)) == 1 {
		b.ko = captured[0]
	}
	return captured, true
}

func (b *BoardRepository) hasLiberty(pos board.Pos) bool {
	for _, s := range b.StringStones(pos) {
		for _, n := range s.Neighbors() {
			if b.stones[n] == board.Empty {
				return true
			}
		}
	}
	return false
}

// StringStones returns the stones of the string at pos in ascending order.
func (b *BoardRepository) StringStones(pos board.Pos) []board.Pos {
	color := b.Color(pos)
	if !color.IsStone() {
		return nil
	}
	var seen [board.BoardMax]bool
	seen[pos] = true
	stones := []board.Pos{pos}
	for fringe := []board.Pos{pos}; len(fringe) > 0; {
		c := fringe[len(fringe)-1]
		fringe = fringe[:len(fringe)-1]
		for _, n := range c.Neighbors() {
			if !seen[n] && b.stones[n] == color {
				seen[n] = true
				stones = append(stones, n)
				fringe = append(fringe, n)
			}
		}
	}
	sort.Slice(stones, func(i, j int) bool { return stones[i] < stones[j] })
	return stones
}

// StringLiberties returns the liberties of the string at pos in ascending order.
func (b *BoardRepository) StringLiberties(pos board.Pos) []board.Pos {
	var seen [board.BoardMax]bool
	var libs []board.Pos
	for _, s := range b.StringStones(pos) {
		for _, n := range s.Neighbors() {
			if !seen[n] && b.stones[n] == board.Empty {
				seen[n] = true
				libs = append(libs, n)
			}
		}
	}
	sort.Slice(libs, func(i, j int) bool { return libs[i] < libs[j] })
	return libs
}

// AdjacentStrings returns the origins of the opponent strings touching the
// string at str, in the current position.
func (b *BoardRepository) AdjacentStrings(str board.Pos) []board.Pos {
	color := b.Color(str)
	if !color.IsStone() {
		return nil
	}
	other := color.Other()
	var seen [board.BoardMax]bool
	var origins []board.Pos
	for _, s := range b.StringStones(str) {
		for _, n := range s.Neighbors() {
			if b.stones[n] != other || seen[n] {
				continue
			}
			stones := b.StringStones(n)
			for _, t := range stones {
				seen[t] = true
			}
			origins = append(origins, stones[0])
		}
	}
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })
	return origins
}
