package sgf

import (
	"fmt"
	"strings"
	"unicode"

	"semeai_engine/internal/errors"
)

type parser struct {
	src string
	pos int
}

// Parse reads the first game tree of an SGF collection.
func Parse(src string) (*SGF, error) {
	p := &parser{src: src}
	p.skipSpace()
	tree, err := p.tree()
	if err != nil {
		return nil, err
	}
	return &SGF{Root: tree}, nil
}

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", errors.ErrMalformedSGF, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) tree() (*GameTree, error) {
	if p.peek() != '(' {
		return nil, p.fail("expected '('")
	}
	p.pos++
	p.skipSpace()

	tree := &GameTree{}
	for p.peek() == ';' {
		p.pos++
		node, err := p.node()
		if err != nil {
			return nil, err
		}
		tree.Nodes = append(tree.Nodes, node)
		p.skipSpace()
	}
	if len(tree.Nodes) == 0 {
		return nil, p.fail("game tree without nodes")
	}
	for p.peek() == '(' {
		child, err := p.tree()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
		p.skipSpace()
	}
	if p.peek() != ')' {
		return nil, p.fail("expected ')'")
	}
	p.pos++
	p.skipSpace()
	return tree, nil
}

func (p *parser) node() (Node, error) {
	node := Node{Properties: make(map[string][]string)}
	for {
		p.skipSpace()
		start := p.pos
		for p.pos < len(p.src) && unicode.IsUpper(rune(p.src[p.pos])) {
			p.pos++
		}
		if start == p.pos {
			return node, nil
		}
		key := p.src[start:p.pos]
		p.skipSpace()
		if p.peek() != '[' {
			return node, p.fail("property %s without value", key)
		}
		for p.peek() == '[' {
			value, err := p.value()
			if err != nil {
				return node, err
			}
			node.Properties[key] = append(node.Properties[key], value)
			p.skipSpace()
		}
	}
}

func (p *parser) value() (string, error) {
	p.pos++ // '['
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.src):
			sb.WriteByte(p.src[p.pos+1])
			p.pos += 2
		case c == ']':
			p.pos++
			return sb.String(), nil
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.fail("unterminated property value")
}
