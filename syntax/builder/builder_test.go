package builder_test

import (
	"testing"

	"github.com/grafana/astdebug/syntax/ast"
	b "github.com/grafana/astdebug/syntax/builder"
	"github.com/stretchr/testify/require"
)

func TestArrowFunctionExpression(t *testing.T) {
	block := b.ArrowFunctionExpression(nil, b.BlockStatement())
	require.NotNil(t, block.Params)
	require.Empty(t, block.Params)
	require.False(t, block.Expression)

	expr := b.ArrowFunctionExpression([]ast.Node{b.Identifier("x")}, b.Identifier("x"))
	require.True(t, expr.Expression)
}

func TestEmptyLists(t *testing.T) {
	require.Equal(t, []ast.Node{}, b.CallExpression(b.Identifier("f")).Arguments)
	require.Equal(t, []ast.Node{}, b.NewExpression(b.Identifier("F")).Arguments)
	require.Equal(t, []ast.Node{}, b.BlockStatement().Body)
	require.Equal(t, []ast.Node{}, b.ImportDeclaration(nil, b.StringLiteral("mod")).Specifiers)
	require.Equal(t, []ast.Node{}, b.ExportNamedDeclaration(nil, nil, nil).Specifiers)
}

func TestSpecifierDefaults(t *testing.T) {
	foo, bar := b.Identifier("foo"), b.Identifier("bar")

	require.Same(t, foo, b.ImportSpecifier(foo, nil).Local)
	require.Same(t, bar, b.ImportSpecifier(foo, bar).Local)
	require.Same(t, foo, b.ExportSpecifier(foo, nil).Exported)
	require.Same(t, bar, b.ExportSpecifier(foo, bar).Exported)
}

func TestProgram(t *testing.T) {
	stmt := b.ExpressionStatement(b.Identifier("x"))
	prog := b.Program(stmt)

	require.Equal(t, "module", prog.SourceType)
	require.Equal(t, []ast.Node{stmt}, prog.Body)
	require.Empty(t, b.Program().Body)
	require.Same(t, prog, b.File(prog).Program)
}

func TestUnaryExpression(t *testing.T) {
	u := b.UnaryExpression("typeof", b.Identifier("x"))
	require.True(t, u.Prefix)
	require.Equal(t, "typeof", u.Operator)
}
