package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
	"semeai_engine/internal/errors"
)

var at = board.NewPos

func newAdapter() *AdapterPosition {
	cfg := bootstrap.Defaults()
	return NewAdapterPosition(&cfg, zap.NewNop().Sugar())
}

const raceSGF = `(;GM[1]FF[4]SZ[7]
AB[ba][bb][fg]
AW[ca][cb][db][dc]
;B[ag])`

const raceAnnotation = `
dragons:
  - at: B7
    merge: [F1]
    matcher_status: dead
    owl_status: critical
    owl_attack: A7
    owl_defense: A6
    half_eye: A5
  - at: C7
    matcher_status: dead
    safety: weakly_alive
    genus: 1
owl:
  defends:
    - move: A7
      dragon: C6
  substantial:
    F1: true
`

func TestFromSGFWithAnnotation(t *testing.T) {
	ann, err := ParseAnnotation([]byte(raceAnnotation))
	require.NoError(t, err)

	pos, err := newAdapter().FromSGF(raceSGF, ann)
	require.NoError(t, err)

	assert.Equal(t, board.White, pos.ToMove)
	assert.Equal(t, 7, pos.Board.BoardSize())
	assert.Equal(t, board.Black, pos.Board.Color(at(6, 0)))

	black := pos.Board.Dragon(at(6, 5))
	require.NotNil(t, black)
	assert.Equal(t, at(0, 1), black.Origin)
	assert.Equal(t, board.Dead, black.MatcherStatus)
	assert.Equal(t, board.Critical, black.OwlStatus)
	assert.Equal(t, at(0, 0), black.OwlAttackPoint)
	assert.Equal(t, at(1, 0), black.OwlDefensePoint)
	assert.Equal(t, at(2, 0), black.Heye)
	assert.Equal(t, 1, black.Heyes)

	white := pos.Board.Dragon(at(2, 3))
	require.NotNil(t, white)
	assert.Equal(t, board.SafetyWeaklyAlive, white.Safety)
	assert.Equal(t, 1, white.Genus)
	assert.Equal(t, board.NoMove, white.OwlAttackPoint)

	assert.True(t, pos.Owl.DoesDefend(at(0, 0), at(1, 2)))
	assert.False(t, pos.Owl.DoesAttack(at(0, 0), at(1, 2)))
	assert.True(t, pos.Owl.Substantial(at(6, 5)))
	assert.False(t, pos.Owl.Substantial(at(6, 0)))
	assert.Empty(t, pos.Reasons.Reasons())
}

func TestFromSGFPlaysMoves(t *testing.T) {
	pos, err := newAdapter().FromSGF("(;SZ[5]AW[aa]AB[ba];B[ab])", Annotation{})
	require.NoError(t, err)

	assert.Equal(t, board.Empty, pos.Board.Color(at(0, 0)))
	assert.Len(t, pos.Board.Worms(), 2)
	assert.Equal(t, board.White, pos.ToMove)

	pos, err = newAdapter().FromSGF("(;SZ[5]PL[W]AB[cc]AE[cc])", Annotation{ToMove: "black"})
	require.NoError(t, err)
	assert.Equal(t, board.Black, pos.ToMove)
	assert.Empty(t, pos.Board.Worms())
}

func TestFromSGFBoardSize(t *testing.T) {
	pos, err := newAdapter().FromSGF("(;AB[aa])", Annotation{BoardSize: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, pos.Board.BoardSize())

	pos, err = newAdapter().FromSGF("(;AB[aa])", Annotation{})
	require.NoError(t, err)
	assert.Equal(t, 19, pos.Board.BoardSize())
}

func TestFromSGFErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ann  string
		want error
	}{
		{name: "malformed sgf", src: "(;SZ[5]", want: errors.ErrMalformedSGF},
		{name: "bad size", src: "(;SZ[x])", want: errors.ErrMalformedSGF},
		{name: "oversized board", src: "(;SZ[25])", want: errors.ErrBoardSize},
		{name: "occupied move", src: "(;SZ[5]AB[aa];W[aa])", want: errors.ErrIllegalMove},
		{name: "point off board", src: "(;SZ[5]AB[gg])", want: errors.ErrInvalidCoordinate},
		{name: "unknown dragon", src: "(;SZ[5]AB[aa])", ann: "dragons: [{at: C3}]", want: errors.ErrUnknownDragon},
		{name: "bad status", src: "(;SZ[5]AB[aa])", ann: "dragons: [{at: A5, matcher_status: sleepy}]", want: errors.ErrAnnotation},
		{name: "negative genus", src: "(;SZ[5]AB[aa])", ann: "dragons: [{at: A5, genus: -1}]", want: errors.ErrAnnotation},
		{name: "merge across colours", src: "(;SZ[5]AB[aa]AW[cc])", ann: "dragons: [{at: A5, merge: [C3]}]", want: errors.ErrAnnotation},
		{name: "bad vertex", src: "(;SZ[5]AB[aa])", ann: "dragons: [{at: Z9}]", want: errors.ErrInvalidCoordinate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := ParseAnnotation([]byte(tt.ann))
			require.NoError(t, err)
			_, err = newAdapter().FromSGF(tt.src, ann)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseAnnotation([]byte("dragons: ["))
	require.ErrorIs(t, err, errors.ErrAnnotation)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	sgfPath := filepath.Join(dir, "race.sgf")
	annPath := filepath.Join(dir, "race.yaml")
	require.NoError(t, os.WriteFile(sgfPath, []byte(raceSGF), 0o644))
	require.NoError(t, os.WriteFile(annPath, []byte(raceAnnotation), 0o644))

	a := newAdapter()
	pos, err := a.Load(sgfPath, annPath)
	require.NoError(t, err)
	assert.Equal(t, sgfPath, pos.Name)
	assert.Equal(t, board.Dead, pos.Board.Dragon(at(0, 1)).MatcherStatus)

	pos, err = a.Load(sgfPath, "")
	require.NoError(t, err)
	assert.Equal(t, board.Unknown, pos.Board.Dragon(at(0, 1)).MatcherStatus)

	_, err = a.Load(filepath.Join(dir, "missing.sgf"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportSGF(t *testing.T) {
	pos, err := newAdapter().FromSGF("(;SZ[5]AB[aa]AW[ba])", Annotation{})
	require.NoError(t, err)

	reports := []semeai.Report{{
		Mine:       at(0, 0),
		Yours:      at(0, 1),
		Resolution: semeai.Classified,
		Counts:     semeai.LibertyCount{Mine: 0, Yours: 3, Common: 1},
		Verdict:    semeai.Verdict{Mine: board.Dead, Yours: board.Alive, Margin: semeai.Liberties(2)},
		Moves: []semeai.MoveReason{
			{Kind: semeai.SemeaiMove, Move: at(1, 0), Dragon: at(0, 0)},
			{Kind: semeai.SemeaiMove, Move: at(1, 0), Dragon: at(0, 1)},
			{Kind: semeai.SemeaiThreat, Move: at(2, 2), Dragon: at(0, 1)},
			{Kind: semeai.OwlAttack, Move: at(3, 3), Dragon: at(0, 1), Code: board.Win},
		},
	}}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.sgf")
	require.NoError(t, newAdapter().Export(path, pos, reports))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "(;FF[4]GM[1]SZ[5]PL[B]AB[aa]AW[ba]C[A5 vs B5: classified, M=0 Y=3 C=1, dead/alive margin 2]TR[ab]SQ[cc])"
	assert.Equal(t, want, string(out))

	reloaded, err := newAdapter().FromSGF(string(out), Annotation{})
	require.NoError(t, err)
	assert.Equal(t, board.Black, reloaded.Board.Color(at(0, 0)))
	assert.Equal(t, board.White, reloaded.Board.Color(at(0, 1)))
}
