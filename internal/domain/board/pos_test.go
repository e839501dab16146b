package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semeai_engine/internal/errors"
)

func TestPosLayout(t *testing.T) {
	p := NewPos(0, 0)
	assert.Equal(t, Pos(BoardMin), p)
	assert.Equal(t, 0, p.I())
	assert.Equal(t, 0, p.J())

	q := NewPos(18, 18)
	assert.Equal(t, 18, q.I())
	assert.Equal(t, 18, q.J())
	assert.Less(t, int(q.South()), BoardMax)

	assert.Equal(t, [4]Pos{NewPos(3, 2), NewPos(2, 1), NewPos(1, 2), NewPos(2, 3)}, NewPos(2, 2).Neighbors())

	assert.True(t, NewPos(8, 8).OnBoard(9))
	assert.False(t, NewPos(9, 8).OnBoard(9))
	assert.False(t, NewPos(0, 0).West().OnBoard(19))
	assert.False(t, NoMove.OnBoard(19))
}

func TestFormatAndParseVertex(t *testing.T) {
	tests := []struct {
		pos    Pos
		size   int
		vertex string
	}{
		{NewPos(0, 0), 19, "A19"},
		{NewPos(18, 18), 19, "T1"},
		{NewPos(15, 3), 19, "D4"},
		{NewPos(0, 8), 9, "J9"},
		{NewPos(4, 4), 5, "E1"},
	}
	for _, tt := range tests {
		t.Run(tt.vertex, func(t *testing.T) {
			assert.Equal(t, tt.vertex, tt.pos.Format(tt.size))
			got, err := ParseVertex(tt.vertex, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.pos, got)
		})
	}

	assert.Equal(t, "PASS", NoMove.Format(19))
	got, err := ParseVertex(" d4 ", 19)
	require.NoError(t, err)
	assert.Equal(t, NewPos(15, 3), got)

	for _, bad := range []string{"", "I5", "Z1", "A0", "A20", "K1"} {
		_, err := ParseVertex(bad, 9)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate, bad)
	}
}

func TestSGFPoints(t *testing.T) {
	p, err := ParseSGFPoint("dc", 19)
	require.NoError(t, err)
	assert.Equal(t, NewPos(2, 3), p)
	assert.Equal(t, "dc", p.SGF())

	for _, pass := range []string{"", "tt"} {
		p, err := ParseSGFPoint(pass, 19)
		require.NoError(t, err)
		assert.Equal(t, NoMove, p)
	}

	for _, bad := range []string{"a", "jj", "abc"} {
		_, err := ParseSGFPoint(bad, 9)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinate, bad)
	}
}

func TestParseNames(t *testing.T) {
	c, err := ParseColor("W")
	require.NoError(t, err)
	assert.Equal(t, White, c)
	assert.Equal(t, Black, c.Other())
	_, err = ParseColor("red")
	assert.Error(t, err)

	s, err := ParseStatus("critical")
	require.NoError(t, err)
	assert.Equal(t, Critical, s)
	s, err = ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, Unknown, s)
	_, err = ParseStatus("sleepy")
	assert.ErrorIs(t, err, errors.ErrAnnotation)

	safety, err := ParseSafety("alive_in_seki")
	require.NoError(t, err)
	assert.Equal(t, SafetyAliveInSeki, safety)
	assert.Equal(t, "alive_in_seki", safety.String())
	_, err = ParseSafety("bulletproof")
	assert.ErrorIs(t, err, errors.ErrAnnotation)
}
