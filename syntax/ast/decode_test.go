package ast_test

import (
	"testing"

	"github.com/grafana/astdebug/syntax/ast"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	root, err := ast.Decode([]byte(`{
		"type": "ExpressionStatement",
		"start": 0,
		"end": 8,
		"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 8}},
		"leadingComments": [{"type": "CommentLine", "value": " hi", "start": 0, "end": 5}],
		"expression": {
			"type": "CallExpression",
			"callee": {"type": "Identifier", "name": "foo", "start": 0, "end": 3},
			"arguments": [
				{"type": "NumericLiteral", "value": 1, "extra": {"raw": "1", "rawValue": 1}},
				{"type": "JSXElement", "selfClosing": true, "children": []}
			],
			"optional": false,
			"typeParameters": null
		}
	}`))
	require.NoError(t, err)

	stmt, ok := root.(*ast.ExpressionStatement)
	require.True(t, ok, "expected *ast.ExpressionStatement, got %T", root)
	require.Equal(t, 8, stmt.End)
	require.Equal(t, &ast.SourceLocation{
		Start: &ast.Position{Line: 1, Column: 0},
		End:   &ast.Position{Line: 1, Column: 8},
	}, stmt.Loc)
	require.Equal(t, []*ast.Comment{{Type: "CommentLine", Value: " hi", Start: 0, End: 5}}, stmt.LeadingComments)

	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok, "expected *ast.CallExpression, got %T", stmt.Expression)
	require.Equal(t, "foo", call.Callee.(*ast.Identifier).Name)
	require.Len(t, call.Arguments, 2)

	num := call.Arguments[0].(*ast.NumericLiteral)
	require.Equal(t, 1.0, num.Value)
	require.Equal(t, map[string]any{"raw": "1", "rawValue": 1.0}, num.Extra)

	require.Equal(t, &ast.Generic{
		Kind: "JSXElement",
		Props: []ast.Prop{
			{Key: "selfClosing", Value: true},
			{Key: "children", Value: []any{}},
		},
	}, call.Arguments[1])
}

func TestDecode_UnknownKindKeepsChildren(t *testing.T) {
	root, err := ast.Decode([]byte(`{"type": "JSXExpressionContainer", "expression": {"type": "Identifier", "name": "a"}}`))
	require.NoError(t, err)

	g, ok := root.(*ast.Generic)
	require.True(t, ok, "expected *ast.Generic, got %T", root)
	require.Equal(t, "JSXExpressionContainer", g.NodeType())

	v, ok := g.Get("expression")
	require.True(t, ok)
	id, ok := v.(*ast.Identifier)
	require.True(t, ok, "expected *ast.Identifier, got %T", v)
	require.Equal(t, "a", id.Name)
}

func TestDecode_PresentProperties(t *testing.T) {
	root, err := ast.Decode([]byte(`{"type": "VariableDeclaration", "declarations": [{"type": "Identifier", "name": "x", "start": 4}]}`))
	require.NoError(t, err)

	decl := root.(*ast.VariableDeclaration)
	require.True(t, decl.Has("declarations"))
	require.False(t, decl.Has("kind"))
	require.False(t, decl.Has("loc"))
	require.Equal(t, []string{"type", "declarations"}, keys(ast.PropsOf(decl)))
	require.Equal(t, []string{"type", "start", "name"}, keys(ast.PropsOf(decl.Declarations[0])))

	built := &ast.VariableDeclaration{Kind: "let"}
	require.True(t, built.Has("kind"))
	require.True(t, built.Has("loc"))
	require.Contains(t, keys(ast.PropsOf(built)), "kind")
}

func TestDecode_Errors(t *testing.T) {
	tt := []struct {
		name  string
		input string
		err   string
	}{
		{"truncated", `{"type": "Program", "body": [`, "decoding ast"},
		{"not an object", `[1, 2]`, "decoding ast: top-level value is not a node"},
		{"object without type", `{"name": "x"}`, "decoding ast: top-level value is not a node"},
		{"wrong field type", `{"type": "Identifier", "name": 5}`, "Identifier.name: cannot assign float64 to field of type string"},
		{"nested wrong field type", `{"type": "Program", "body": [{"type": "ReturnStatement", "argument": "x"}]}`, "ReturnStatement.argument"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ast.Decode([]byte(tc.input))
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestFromMap(t *testing.T) {
	g := ast.FromMap(map[string]any{
		"type": "Identifier",
		"name": "x",
		"loc":  map[string]any{"start": 1.0},
		"list": []any{map[string]any{"type": "Literal", "value": "a"}, 2.0},
	})

	require.Equal(t, &ast.Generic{
		Kind: "Identifier",
		Props: []ast.Prop{
			{Key: "list", Value: []any{
				&ast.Generic{Kind: "Literal", Props: []ast.Prop{{Key: "value", Value: "a"}}},
				2.0,
			}},
			{Key: "loc", Value: &ast.Generic{Props: []ast.Prop{{Key: "start", Value: 1.0}}}},
			{Key: "name", Value: "x"},
		},
	}, g)
}

func TestMaterialize(t *testing.T) {
	n, err := ast.Materialize(ast.FromMap(map[string]any{
		"type":    "VariableDeclaration",
		"kind":    "const",
		"declare": true,
		"declarations": []any{map[string]any{
			"type": "VariableDeclarator",
			"id":   map[string]any{"type": "Identifier", "name": "x"},
			"init": nil,
		}},
	}))
	require.NoError(t, err)

	decl, ok := n.(*ast.VariableDeclaration)
	require.True(t, ok, "expected *ast.VariableDeclaration, got %T", n)
	require.Equal(t, "const", decl.Kind)
	require.Len(t, decl.Declarations, 1)
	require.False(t, decl.Has("declare"), "undeclared properties are dropped")

	declarator, ok := decl.Declarations[0].(*ast.VariableDeclarator)
	require.True(t, ok, "expected *ast.VariableDeclarator, got %T", decl.Declarations[0])
	require.Equal(t, "x", declarator.ID.(*ast.Identifier).Name)
	require.Nil(t, declarator.Init)
	require.True(t, declarator.Has("init"))
}
