package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/errors"
)

var at = board.NewPos

func diagram(t *testing.T, rows ...string) *BoardRepository {
	t.Helper()
	b, err := FromDiagram(bootstrap.Defaults(), zap.NewNop().Sugar(), rows...)
	require.NoError(t, err)
	return b
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestNewBoardRepositorySize(t *testing.T) {
	log := zap.NewNop().Sugar()
	for _, size := range []int{0, 20} {
		_, err := NewBoardRepository(size, bootstrap.Defaults(), log)
		require.ErrorIs(t, err, errors.ErrBoardSize)
	}
	b, err := NewBoardRepository(9, bootstrap.Defaults(), log)
	require.NoError(t, err)
	assert.Equal(t, 9, b.BoardSize())
	assert.Equal(t, board.Empty, b.Color(at(8, 8)))
	assert.Equal(t, board.Gray, b.Color(at(9, 0)))
}

func TestFromDiagramErrors(t *testing.T) {
	log := zap.NewNop().Sugar()

	_, err := FromDiagram(bootstrap.Defaults(), log, "...", "..", "...")
	require.ErrorIs(t, err, errors.ErrBoardSize)

	_, err = FromDiagram(bootstrap.Defaults(), log, "...", ".Z.", "...")
	require.ErrorIs(t, err, errors.ErrInvalidCoordinate)
}

func TestPlayCaptures(t *testing.T) {
	b := diagram(t,
		". X . . .",
		"X O X . .",
		". . . . .",
		". . . . .",
		". . . . .",
	)
	require.NoError(t, b.Play(at(2, 1), board.Black))
	assert.Equal(t, board.Empty, b.Color(at(1, 1)))
	assert.Equal(t, board.Black, b.Color(at(2, 1)))
}

func TestPlayRefusesSuicideAndOccupied(t *testing.T) {
	b := diagram(t,
		". O . . .",
		"O . . . .",
		". . . . .",
		". . . . .",
		". . . . .",
	)
	require.ErrorIs(t, b.Play(at(0, 0), board.Black), errors.ErrIllegalMove)
	require.ErrorIs(t, b.Play(at(0, 1), board.Black), errors.ErrIllegalMove)
	assert.False(t, b.TryMove(at(0, 0), board.Black))
	assert.Zero(t, b.StackDepth())
	assert.Equal(t, board.Empty, b.Color(at(0, 0)))
}

func TestKo(t *testing.T) {
	b := diagram(t,
		". X O . .",
		"X O . O .",
		". X O . .",
		". . . . .",
		". . . . .",
	)
	require.NoError(t, b.Play(at(1, 2), board.Black))
	require.Equal(t, board.Empty, b.Color(at(1, 1)))

	assert.False(t, b.TryMove(at(1, 1), board.White), "immediate recapture")
	require.ErrorIs(t, b.Play(at(1, 1), board.White), errors.ErrIllegalMove)

	require.NoError(t, b.Play(board.NoMove, board.White))
	require.True(t, b.TryMove(at(1, 1), board.White))
	assert.Equal(t, board.Empty, b.Color(at(1, 2)))

	b.PopMove()
	assert.Equal(t, board.Black, b.Color(at(1, 2)))
	assert.Equal(t, board.Empty, b.Color(at(1, 1)))
	assert.True(t, b.TryMove(at(1, 1), board.White), "taking back restores the position after the pass")
	b.PopMove()
}

func TestTryMovePopMove(t *testing.T) {
	b := diagram(t,
		". X . . .",
		"X O X . .",
		". . . . .",
		". . . . .",
		". . . . .",
	)
	require.True(t, b.TryMove(at(2, 1), board.Black))
	require.True(t, b.TryMove(at(3, 3), board.White))
	assert.Equal(t, 2, b.StackDepth())
	assert.Equal(t, board.Empty, b.Color(at(1, 1)))
	require.ErrorIs(t, b.Play(at(4, 4), board.Black), errors.ErrIllegalMove)

	b.PopMove()
	b.PopMove()
	assert.Zero(t, b.StackDepth())
	assert.Equal(t, board.White, b.Color(at(1, 1)))
	assert.Equal(t, board.Empty, b.Color(at(2, 1)))
	assert.Equal(t, board.Empty, b.Color(at(3, 3)))

	err := recoverError(b.PopMove)
	require.ErrorIs(t, err, errors.ErrUnbalancedTrial)
}

func TestStrings(t *testing.T) {
	b := diagram(t,
		"X X O . .",
		". O O . .",
		". . . X .",
		". . . . .",
		". . . . .",
	)
	assert.Equal(t, []board.Pos{at(0, 0), at(0, 1)}, b.StringStones(at(0, 1)))
	assert.Equal(t, []board.Pos{at(1, 0)}, b.StringLiberties(at(0, 0)))
	assert.Equal(t, []board.Pos{at(0, 3), at(1, 0), at(1, 3), at(2, 1), at(2, 2)}, b.StringLiberties(at(1, 2)))
	assert.Equal(t, []board.Pos{at(0, 2)}, b.AdjacentStrings(at(0, 0)))
	assert.Equal(t, []board.Pos{at(0, 0)}, b.AdjacentStrings(at(1, 1)))
	assert.Empty(t, b.AdjacentStrings(at(2, 3)))
	assert.Nil(t, b.StringStones(at(4, 4)))
}
