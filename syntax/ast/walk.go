package ast

// A Visitor has its Visit method invoked for each node encountered by Walk.
// If the resulting visitor w is not nil, Walk visits each of the children of
// node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor w for
// each of the non-nil children of node, followed by a call of w.Visit(nil).
//
// Children are the node-valued fields of node, and the nodes held in its
// list-valued fields, in declaration order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	eachChild(node, func(_ string, _ int, child Node) {
		Walk(v, child)
	})
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: it starts by calling
// f(node). If f returns true, Inspect invokes f recursively for each of the
// non-nil children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// eachChild calls fn for each child node of n. index is the position of the
// child within a list field, or -1 for single-valued fields.
func eachChild(n Node, fn func(name string, index int, child Node)) {
	for _, p := range PropsOf(n) {
		switch v := p.Value.(type) {
		case []any:
			for i, elem := range v {
				if IsNode(elem) {
					fn(p.Key, i, elem.(Node))
				}
			}
		default:
			if IsNode(v) {
				fn(p.Key, -1, v.(Node))
			}
		}
	}
}
