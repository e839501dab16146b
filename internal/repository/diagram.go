package repo

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/errors"
)

// FromDiagram sets up a position from rows of 'X' (black), 'O' (white) and
// '.' (empty), top row first, and examines it. Spaces are ignored.
func FromDiagram(cfg bootstrap.Config, log *zap.SugaredLogger, rows ...string) (*BoardRepository, error) {
	b, err := NewBoardRepository(len(rows), cfg, log)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d points, want %d", errors.ErrBoardSize, i, len(row), len(rows))
		}
		for j, c := range row {
			var color board.Color
			switch c {
			case 'X', 'x':
				color = board.Black
			case 'O', 'o':
				color = board.White
			case '.', '+':
				continue
			default:
				return nil, fmt.Errorf("%w: %q in diagram", errors.ErrInvalidCoordinate, c)
			}
			if err := b.Setup(board.NewPos(i, j), color); err != nil {
				return nil, err
			}
		}
	}
	if err := b.Examine(); err != nil {
		return nil, err
	}
	return b, nil
}
