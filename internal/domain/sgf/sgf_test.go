package sgf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semeai_engine/internal/errors"
)

const game = `(;GM[1]FF[4]SZ[9]
  AB[cc][cd]AW[dc][dd]
  C[capturing race \] test]
  ;B[ce];W[de]
  (;B[cf])
  (;B[df]))`

func TestParse(t *testing.T) {
	tree, err := Parse(game)
	require.NoError(t, err)

	root := tree.Root
	require.Len(t, root.Nodes, 3)
	require.Len(t, root.Children, 2)

	want := map[string][]string{
		"GM": {"1"},
		"FF": {"4"},
		"SZ": {"9"},
		"AB": {"cc", "cd"},
		"AW": {"dc", "dd"},
		"C":  {"capturing race ] test"},
	}
	if diff := cmp.Diff(want, root.Nodes[0].Properties); diff != "" {
		t.Errorf("root properties (-want +got):\n%s", diff)
	}
	assert.Equal(t, "ce", root.Nodes[1].Get("B"))
	assert.Equal(t, "", root.Nodes[1].Get("W"))

	line := tree.MainLine()
	require.Len(t, line, 4)
	assert.Equal(t, "cf", line[3].Get("B"))
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"GM[1]",
		"()",
		"(;GM[1]",
		"(;GM[1)",
		"(;GM)",
	} {
		_, err := Parse(src)
		assert.ErrorIs(t, err, errors.ErrMalformedSGF, src)
	}
}

func TestSerialize(t *testing.T) {
	s := &SGF{Root: &GameTree{
		Nodes: []Node{
			{Properties: map[string][]string{
				"ZZ": {"x"},
				"AB": {"aa", "bb"},
				"SZ": {"9"},
				"FF": {"4"},
				"C":  {`a]b\c`},
			}},
			{Properties: map[string][]string{"B": {"cc"}}},
		},
		Children: []*GameTree{
			{Nodes: []Node{{Properties: map[string][]string{"W": {"dd"}}}}},
			{Nodes: []Node{{Properties: map[string][]string{"W": {"ee"}}}}},
		},
	}}

	out := Serialize(s)
	assert.Equal(t, `(;FF[4]SZ[9]AB[aa][bb]C[a\]b\\c]ZZ[x];B[cc](;W[dd])(;W[ee]))`, out)

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, `a]b\c`, back.Root.Nodes[0].Get("C"))
	assert.Len(t, back.Root.Children, 2)
}
