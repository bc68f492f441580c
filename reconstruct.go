package astdebug

import (
	"strings"

	"github.com/grafana/astdebug/syntax/ast"
	"github.com/grafana/astdebug/syntax/builder"
	"github.com/grafana/astdebug/syntax/printer"
)

// Embed returns the statement that hosts n at the top level of a program:
//
//   - import and variable declarations and expression statements are
//     returned as is;
//   - a block statement becomes the body of an arrow function in an
//     expression statement;
//   - a variable declarator is wrapped in a const declaration;
//   - any other node is wrapped in an expression statement.
//
// n itself is never modified.
func Embed(n ast.Node) ast.Node {
	switch n.NodeType() {
	case "ImportDeclaration", "VariableDeclaration", "ExpressionStatement":
		return n
	case "BlockStatement":
		return builder.ExpressionStatement(builder.ArrowFunctionExpression(nil, n))
	case "VariableDeclarator":
		return builder.VariableDeclaration("const", n)
	default:
		return builder.ExpressionStatement(n)
	}
}

// Reconstruct renders n as source text by printing it inside an otherwise
// empty program.
func Reconstruct(n ast.Node, cfg printer.Config) string {
	program := builder.Program()
	program.Insert(0, Embed(n))
	return strings.TrimSpace(cfg.Sprint(program))
}
