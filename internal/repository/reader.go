package repo

import "semeai_engine/internal/domain/board"

// closePlies is how many plies from the reading root strings with three or
// four liberties are read, and defenses may counter-attack an adjacent
// string with two liberties. Deeper down only ataris and ladders are read.
const closePlies = 2

// Attack reads whether the string at str can be captured, returning the code
// and the attacking move. Atari and two-liberty chases (ladders) are read
// down to the configured depth. Strings with three or four liberties are read
// near the root only; longer strings count as safe.
func (b *BoardRepository) Attack(str board.Pos) (board.Code, board.Pos) {
	if !b.Color(str).IsStone() {
		return board.CodeNone, board.NoMove
	}
	return b.attack(str, b.readDepth)
}

// FindDefense reads a move that saves the string at str. A string that
// cannot be attacked is defended without a move.
func (b *BoardRepository) FindDefense(str board.Pos) (board.Code, board.Pos) {
	if !b.Color(str).IsStone() {
		return board.CodeNone, board.NoMove
	}
	return b.defend(str, b.readDepth)
}

// IsSafeMove reports whether color may play at pos without the new stone
// being capturable.
func (b *BoardRepository) IsSafeMove(pos board.Pos, color board.Color) bool {
	if !b.TryMove(pos, color) {
		return false
	}
	defer b.PopMove()
	code, _ := b.attack(pos, b.readDepth)
	return code == board.CodeNone
}

// nearRoot reports whether a read at depth is still within closePlies of the
// root.
func (b *BoardRepository) nearRoot(depth int) bool {
	return b.readDepth-depth < closePlies
}

// readable reports whether a string with libs liberties is read at depth.
func (b *BoardRepository) readable(libs, depth int) bool {
	return libs <= 2 || (libs <= 4 && b.nearRoot(depth))
}

func (b *BoardRepository) attack(str board.Pos, depth int) (board.Code, board.Pos) {
	other := b.stones[str].Other()
	libs := b.StringLiberties(str)
	if len(libs) == 1 {
		if b.TryMove(libs[0], other) {
			b.PopMove()
			return board.Win, libs[0]
		}
		return board.CodeNone, board.NoMove
	}
	if depth <= 0 || !b.readable(len(libs), depth) {
		return board.CodeNone, board.NoMove
	}
	for _, lib := range libs {
		if !b.TryMove(lib, other) {
			continue
		}
		code, _ := b.defend(str, depth-1)
		b.PopMove()
		if code == board.CodeNone {
			return board.Win, lib
		}
	}
	return board.CodeNone, board.NoMove
}

func (b *BoardRepository) defend(str board.Pos, depth int) (board.Code, board.Pos) {
	color := b.stones[str]
	libs := b.StringLiberties(str)
	if !b.readable(len(libs), depth) {
		return board.Win, board.NoMove
	}
	if len(libs) >= 2 {
		if code, _ := b.attack(str, depth); code == board.CodeNone {
			return board.Win, board.NoMove
		}
	}
	for _, move := range b.defenseCandidates(str, libs, depth) {
		if !b.TryMove(move, color) {
			continue
		}
		code, _ := b.attack(str, depth-1)
		b.PopMove()
		if code == board.CodeNone {
			return board.Win, move
		}
	}
	return board.CodeNone, board.NoMove
}

// defenseCandidates lists captures of adjacent strings in atari, then the
// string's own liberties and, near the root, ataris on adjacent strings with
// two liberties.
func (b *BoardRepository) defenseCandidates(str board.Pos, libs []board.Pos, depth int) []board.Pos {
	var seen [board.BoardMax]bool
	var moves []board.Pos
	add := func(pos board.Pos) {
		if !seen[pos] {
			seen[pos] = true
			moves = append(moves, pos)
		}
	}

	adjacent := b.AdjacentStrings(str)
	for _, adj := range adjacent {
		if adjLibs := b.StringLiberties(adj); len(adjLibs) == 1 {
			add(adjLibs[0])
		}
	}
	for _, lib := range libs {
		add(lib)
	}
	if !b.nearRoot(depth) {
		return moves
	}
	for _, adj := range adjacent {
		if adjLibs := b.StringLiberties(adj); len(adjLibs) == 2 {
			for _, lib := range adjLibs {
				add(lib)
			}
		}
	}
	return moves
}
