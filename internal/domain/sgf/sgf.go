package sgf

// GameTree is one SGF tree: a main line of nodes plus variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node is one SGF node. Properties may repeat values, as in AB[aa][bb].
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

// Get returns the first value of property key, or "".
func (n Node) Get(key string) string {
	if values := n.Properties[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// MainLine returns the nodes of the first variation at every branch.
func (s *SGF) MainLine() []Node {
	var nodes []Node
	for tree := s.Root; tree != nil; {
		nodes = append(nodes, tree.Nodes...)
		if len(tree.Children) == 0 {
			break
		}
		tree = tree.Children[0]
	}
	return nodes
}
