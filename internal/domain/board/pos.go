package board

import (
	"fmt"
	"strconv"
	"strings"

	"semeai_engine/internal/errors"
)

// Pos is a point on a padded one-dimensional board. Rows are NS apart and a
// single border column separates consecutive rows, so every on-board point has
// four neighbours inside the array.
type Pos int

const (
	MaxBoard = 19
	NS       = MaxBoard + 1
	BoardMin = MaxBoard + 2
	BoardMax = (MaxBoard + 2) * (MaxBoard + 1)

	NoMove Pos = 0
)

const columnLetters = "ABCDEFGHJKLMNOPQRST"

func NewPos(i, j int) Pos {
	return Pos(BoardMin + i*NS + j)
}

func (p Pos) I() int { return int(p)/NS - 1 }
func (p Pos) J() int { return int(p)%NS - 1 }

func (p Pos) South() Pos { return p + NS }
func (p Pos) North() Pos { return p - NS }
func (p Pos) East() Pos  { return p + 1 }
func (p Pos) West() Pos  { return p - 1 }

// Neighbors returns the four orthogonal neighbours in south, west, north, east order.
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{p.South(), p.West(), p.North(), p.East()}
}

func (p Pos) OnBoard(size int) bool {
	if p <= NoMove || int(p) >= BoardMax {
		return false
	}
	i, j := p.I(), p.J()
	return i >= 0 && i < size && j >= 0 && j < size
}

// Format renders p as a GTP vertex ("D4"), counting rows from the bottom edge.
func (p Pos) Format(size int) string {
	if !p.OnBoard(size) {
		return "PASS"
	}
	return fmt.Sprintf("%c%d", columnLetters[p.J()], size-p.I())
}

// ParseVertex is the inverse of Format.
func ParseVertex(s string, size int) (Pos, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, s)
	}
	j := strings.IndexByte(columnLetters, s[0])
	row, err := strconv.Atoi(s[1:])
	if j < 0 || err != nil {
		return NoMove, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, s)
	}
	p := NewPos(size-row, j)
	if !p.OnBoard(size) {
		return NoMove, fmt.Errorf("%w: %q is off a %dx%d board", errors.ErrInvalidCoordinate, s, size, size)
	}
	return p, nil
}

// ParseSGFPoint decodes a two-letter SGF point ("dd"). An empty value or "tt"
// on boards up to 19x19 is a pass.
func ParseSGFPoint(s string, size int) (Pos, error) {
	if s == "" || (s == "tt" && size <= 19) {
		return NoMove, nil
	}
	if len(s) != 2 {
		return NoMove, fmt.Errorf("%w: sgf point %q", errors.ErrInvalidCoordinate, s)
	}
	j, i := int(s[0]-'a'), int(s[1]-'a')
	p := NewPos(i, j)
	if !p.OnBoard(size) {
		return NoMove, fmt.Errorf("%w: sgf point %q", errors.ErrInvalidCoordinate, s)
	}
	return p, nil
}

func (p Pos) SGF() string {
	return string([]byte{byte('a' + p.J()), byte('a' + p.I())})
}
