package ast_test

import (
	"testing"

	"github.com/grafana/astdebug/syntax/ast"
	b "github.com/grafana/astdebug/syntax/builder"
	"github.com/stretchr/testify/require"
)

// program is foo(bar); import baz from "mod";
func program() *ast.Program {
	return b.Program(
		b.ExpressionStatement(b.CallExpression(b.Identifier("foo"), b.Identifier("bar"))),
		b.ImportDeclaration(
			[]ast.Node{b.ImportDefaultSpecifier(b.Identifier("baz"))},
			b.StringLiteral("mod"),
		),
	)
}

func keys(props []ast.Prop) []string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Key
	}
	return names
}

func TestPropsOf(t *testing.T) {
	t.Run("typed node", func(t *testing.T) {
		props := ast.PropsOf(b.Identifier("x"))
		require.Equal(t, []string{
			"type", "start", "end", "loc", "comments", "leadingComments", "trailingComments", "extra", "name",
		}, keys(props))

		require.Equal(t, "Identifier", props[0].Value)
		require.Nil(t, props[3].Value, "nil pointers should normalize to nil")
		require.Equal(t, []any{}, props[4].Value, "nil slices should normalize to empty lists")
		require.Nil(t, props[7].Value, "nil maps should normalize to nil")
		require.Equal(t, "x", props[8].Value)
	})

	t.Run("lists hold elements", func(t *testing.T) {
		call := b.CallExpression(b.Identifier("f"), b.Identifier("a"), nil)
		for _, p := range ast.PropsOf(call) {
			if p.Key == "arguments" {
				require.Equal(t, []any{call.Arguments[0], nil}, p.Value)
				return
			}
		}
		t.Fatal("arguments not found")
	})

	t.Run("generic", func(t *testing.T) {
		g := &ast.Generic{Kind: "JSXText", Props: []ast.Prop{{Key: "value", Value: "hi"}}}
		require.Equal(t, []ast.Prop{
			{Key: "type", Value: "JSXText"},
			{Key: "value", Value: "hi"},
		}, ast.PropsOf(g))
	})

	t.Run("plain struct", func(t *testing.T) {
		props := ast.PropsOf(&ast.Position{Line: 2, Column: 4})
		require.Equal(t, []ast.Prop{{Key: "line", Value: 2}, {Key: "column", Value: 4}}, props)
	})

	t.Run("not a struct", func(t *testing.T) {
		require.Nil(t, ast.PropsOf(nil))
		require.Nil(t, ast.PropsOf("x"))
		require.Nil(t, ast.PropsOf((*ast.Identifier)(nil)))
	})
}

func TestIsNode(t *testing.T) {
	require.True(t, ast.IsNode(b.Identifier("x")))
	require.True(t, ast.IsNode(&ast.Generic{Kind: "JSXText"}))

	require.False(t, ast.IsNode(nil))
	require.False(t, ast.IsNode((*ast.Identifier)(nil)))
	require.False(t, ast.IsNode(&ast.Generic{}))
	require.False(t, ast.IsNode(&ast.Position{}))
}

func TestProgram_Insert(t *testing.T) {
	prog := b.Program(b.EmptyStatement())
	stmt := b.ExpressionStatement(b.Identifier("x"))

	prog.Insert(0, stmt)
	require.Equal(t, []ast.Node{stmt, b.EmptyStatement()}, prog.Body)
}

func TestFind(t *testing.T) {
	paths := ast.Find(program(), "Identifier")

	var got []string
	for _, p := range paths {
		got = append(got, p.String()+"="+p.Node.(*ast.Identifier).Name)
	}
	require.Equal(t, []string{
		"body.0.expression.callee=foo",
		"body.0.expression.arguments.0=bar",
		"body.1.specifiers.0.local=baz",
	}, got)

	callee := paths[0]
	require.Equal(t, "callee", callee.Name)
	require.Equal(t, -1, callee.Index)
	require.Equal(t, "CallExpression", callee.Parent.Node.NodeType())
	require.Equal(t, "body", callee.Parent.Parent.Name)
	require.Equal(t, 0, callee.Parent.Parent.Index)
	require.Nil(t, callee.Parent.Parent.Parent.Parent)
}

func TestFind_Root(t *testing.T) {
	prog := program()

	paths := ast.Find(prog, "Program")
	require.Len(t, paths, 1)
	require.Same(t, prog, paths[0].Node)
	require.Equal(t, "", paths[0].String())

	require.Len(t, ast.Find(prog, ""), 9)
	require.Empty(t, ast.Find(prog, "ThrowStatement"))
}

func TestInspect(t *testing.T) {
	stmt := b.ExpressionStatement(b.CallExpression(b.Identifier("foo"), b.Identifier("bar")))

	var visited []string
	ast.Inspect(stmt, func(n ast.Node) bool {
		if n == nil {
			visited = append(visited, "nil")
			return false
		}
		visited = append(visited, n.NodeType())
		return true
	})
	require.Equal(t, []string{
		"ExpressionStatement",
		"CallExpression",
		"Identifier", "nil",
		"Identifier", "nil",
		"nil",
		"nil",
	}, visited)
}

func TestInspect_Prune(t *testing.T) {
	var visited []string
	ast.Inspect(program(), func(n ast.Node) bool {
		if n == nil {
			return false
		}
		visited = append(visited, n.NodeType())
		return n.NodeType() != "CallExpression" && n.NodeType() != "ImportDeclaration"
	})
	require.Equal(t, []string{"Program", "ExpressionStatement", "CallExpression", "ImportDeclaration"}, visited)
}

func TestWalk_GenericChildren(t *testing.T) {
	g := &ast.Generic{Kind: "JSXElement", Props: []ast.Prop{
		{Key: "name", Value: "div"},
		{Key: "children", Value: []any{b.Identifier("a"), "text", &ast.Generic{Kind: "JSXText"}}},
	}}

	var visited []string
	ast.Inspect(g, func(n ast.Node) bool {
		if n != nil {
			visited = append(visited, n.NodeType())
		}
		return true
	})
	require.Equal(t, []string{"JSXElement", "Identifier", "JSXText"}, visited)
}
