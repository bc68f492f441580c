package astdebug_test

import (
	"testing"

	"github.com/grafana/astdebug"
	"github.com/grafana/astdebug/syntax/ast"
	b "github.com/grafana/astdebug/syntax/builder"
	"github.com/grafana/astdebug/syntax/printer"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	foo := b.Identifier("foo")
	bar := b.Identifier("bar")
	declarator := b.VariableDeclarator(foo, b.CallExpression(bar))

	tt := []struct {
		name   string
		node   ast.Node
		expect string
	}{
		{"identifier", foo, "foo;"},
		{"call expression", b.CallExpression(foo, bar), "foo(bar);"},
		{
			name: "import declaration",
			node: b.ImportDeclaration(
				[]ast.Node{b.ImportDefaultSpecifier(foo), b.ImportSpecifier(bar, nil)},
				b.Literal("./path"),
			),
			expect: `import foo, { bar } from "./path";`,
		},
		{"variable declarator", declarator, "const foo = bar();"},
		{"variable declaration", b.VariableDeclaration("const", declarator), "const foo = bar();"},
		{"member expression", b.MemberExpression(foo, bar, false), "foo.bar;"},
		{"expression statement", b.ExpressionStatement(b.CallExpression(foo)), "foo();"},
		{"block statement", b.BlockStatement(b.ExpressionStatement(foo)), "() => {\n  foo;\n};"},
		{"object expression", b.ObjectExpression(), "({});"},
		{"new with call in callee chain", b.NewExpression(b.MemberExpression(b.CallExpression(foo), bar, false)), "new (foo().bar)();"},
		{"unknown kind", &ast.Generic{Kind: "JSXElement"}, "/* JSXElement */;"},
		{
			name:   "generic of known kind",
			node:   ast.FromMap(map[string]any{"type": "VariableDeclarator", "id": map[string]any{"type": "Identifier", "name": "x"}}),
			expect: "const x;",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, astdebug.Reconstruct(tc.node, printer.Config{}))
		})
	}
}

func TestReconstruct_PrinterConfig(t *testing.T) {
	block := b.BlockStatement(b.ExpressionStatement(b.StringLiteral("foo")))

	require.Equal(t, "() => {\n    'foo';\n};", astdebug.Reconstruct(block, printer.Config{TabWidth: 4, Quote: printer.QuoteSingle}))
}

func TestEmbed(t *testing.T) {
	foo := b.Identifier("foo")

	t.Run("statements are kept", func(t *testing.T) {
		for _, n := range []ast.Node{
			b.ImportDeclaration(nil, b.StringLiteral("mod")),
			b.VariableDeclaration("let", b.VariableDeclarator(foo, nil)),
			b.ExpressionStatement(foo),
		} {
			require.Same(t, n, astdebug.Embed(n))
		}
	})

	t.Run("block statement", func(t *testing.T) {
		block := b.BlockStatement()
		stmt := astdebug.Embed(block).(*ast.ExpressionStatement)
		arrow := stmt.Expression.(*ast.ArrowFunctionExpression)
		require.Empty(t, arrow.Params)
		require.Same(t, block, arrow.Body)
	})

	t.Run("variable declarator", func(t *testing.T) {
		declarator := b.VariableDeclarator(foo, nil)
		decl := astdebug.Embed(declarator).(*ast.VariableDeclaration)
		require.Equal(t, "const", decl.Kind)
		require.Equal(t, []ast.Node{declarator}, decl.Declarations)
	})

	t.Run("expression", func(t *testing.T) {
		stmt := astdebug.Embed(foo).(*ast.ExpressionStatement)
		require.Same(t, foo, stmt.Expression)
	})
}

func TestReconstruct_Idempotent(t *testing.T) {
	node := b.BlockStatement(b.ExpressionStatement(b.CallExpression(b.Identifier("foo"))))
	require.Equal(t, astdebug.Reconstruct(node, printer.Config{}), astdebug.Reconstruct(node, printer.Config{}))
	require.Len(t, node.Body, 1)
}
