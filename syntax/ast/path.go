package ast

import (
	"fmt"
	"strings"
)

// Path wraps a node with the context it was reached through: the parent path,
// the field of the parent node holding it, and its position within that field
// when the field is a list.
type Path struct {
	Node   Node
	Parent *Path
	Name   string
	Index  int
}

// NewPath returns a root path for node.
func NewPath(node Node) *Path {
	return &Path{Node: node, Index: -1}
}

// Child returns the path of node reached from p through the field name. index
// is -1 when the field is not a list.
func (p *Path) Child(name string, index int, node Node) *Path {
	return &Path{
		Node:   node,
		Parent: p,
		Name:   name,
		Index:  index,
	}
}

// String returns the field traversal from the root to p, such as
// "body.0.expression.callee".
func (p *Path) String() string {
	var names []string
	for cur := p; cur != nil && cur.Parent != nil; cur = cur.Parent {
		if cur.Index >= 0 {
			names = append(names, fmt.Sprint(cur.Index))
		}
		names = append(names, cur.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

// Find returns the paths of all nodes under root (root included) whose type
// is typ, in depth-first pre-order. An empty typ matches every node.
func Find(root Node, typ string) []*Path {
	w := &pathWalker{typ: typ}
	w.walk(NewPath(root))
	return w.paths
}

type pathWalker struct {
	typ   string
	paths []*Path
}

func (pw *pathWalker) walk(p *Path) {
	if pw.typ == "" || p.Node.NodeType() == pw.typ {
		pw.paths = append(pw.paths, p)
	}
	eachChild(p.Node, func(name string, index int, child Node) {
		pw.walk(p.Child(name, index, child))
	})
}
