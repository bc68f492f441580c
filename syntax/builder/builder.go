// Package builder exposes constructors for AST nodes. Constructors only fill
// in the structural fields of a node; location and comment metadata is left
// empty.
package builder

import "github.com/grafana/astdebug/syntax/ast"

// Program returns a new program holding body. Program() returns the empty
// program used as a host for printing detached nodes.
func Program(body ...ast.Node) *ast.Program {
	return &ast.Program{Body: body, SourceType: "module"}
}

// File wraps program in a Babel file node.
func File(program *ast.Program) *ast.File {
	return &ast.File{Program: program}
}

func Identifier(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

// Literal returns an ESTree literal. v should be a string, float64, bool or
// nil.
func Literal(v any) *ast.Literal {
	return &ast.Literal{Value: v}
}

func StringLiteral(v string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: v}
}

func NumericLiteral(v float64) *ast.NumericLiteral {
	return &ast.NumericLiteral{Value: v}
}

func BooleanLiteral(v bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{Value: v}
}

func NullLiteral() *ast.NullLiteral {
	return &ast.NullLiteral{}
}

func RegExpLiteral(pattern, flags string) *ast.RegExpLiteral {
	return &ast.RegExpLiteral{Pattern: pattern, Flags: flags}
}

func ThisExpression() *ast.ThisExpression {
	return &ast.ThisExpression{}
}

func ArrayExpression(elements ...ast.Node) *ast.ArrayExpression {
	return &ast.ArrayExpression{Elements: elements}
}

func ObjectExpression(properties ...ast.Node) *ast.ObjectExpression {
	return &ast.ObjectExpression{Properties: properties}
}

// Property returns an ESTree property of the given kind ("init", "get" or
// "set").
func Property(kind string, key, value ast.Node) *ast.Property {
	return &ast.Property{Kind: kind, Key: key, Value: value}
}

func ObjectProperty(key, value ast.Node) *ast.ObjectProperty {
	return &ast.ObjectProperty{Key: key, Value: value}
}

func SpreadElement(argument ast.Node) *ast.SpreadElement {
	return &ast.SpreadElement{Argument: argument}
}

// FunctionExpression returns a function expression. id may be nil for an
// anonymous function.
func FunctionExpression(id ast.Node, params []ast.Node, body *ast.BlockStatement) *ast.FunctionExpression {
	return &ast.FunctionExpression{ID: id, Params: params, Body: body}
}

// ArrowFunctionExpression returns an arrow function. body is either a block
// statement or an expression.
func ArrowFunctionExpression(params []ast.Node, body ast.Node) *ast.ArrowFunctionExpression {
	_, block := body.(*ast.BlockStatement)
	if params == nil {
		params = []ast.Node{}
	}
	return &ast.ArrowFunctionExpression{Params: params, Body: body, Expression: !block}
}

// UnaryExpression returns a prefix unary expression.
func UnaryExpression(operator string, argument ast.Node) *ast.UnaryExpression {
	return &ast.UnaryExpression{Operator: operator, Argument: argument, Prefix: true}
}

func UpdateExpression(operator string, argument ast.Node, prefix bool) *ast.UpdateExpression {
	return &ast.UpdateExpression{Operator: operator, Argument: argument, Prefix: prefix}
}

func BinaryExpression(operator string, left, right ast.Node) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: operator, Left: left, Right: right}
}

func LogicalExpression(operator string, left, right ast.Node) *ast.LogicalExpression {
	return &ast.LogicalExpression{Operator: operator, Left: left, Right: right}
}

func AssignmentExpression(operator string, left, right ast.Node) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: operator, Left: left, Right: right}
}

func ConditionalExpression(test, consequent, alternate ast.Node) *ast.ConditionalExpression {
	return &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

func CallExpression(callee ast.Node, arguments ...ast.Node) *ast.CallExpression {
	if arguments == nil {
		arguments = []ast.Node{}
	}
	return &ast.CallExpression{Callee: callee, Arguments: arguments}
}

func NewExpression(callee ast.Node, arguments ...ast.Node) *ast.NewExpression {
	if arguments == nil {
		arguments = []ast.Node{}
	}
	return &ast.NewExpression{Callee: callee, Arguments: arguments}
}

// MemberExpression returns object.property, or object[property] when
// computed is set.
func MemberExpression(object, property ast.Node, computed bool) *ast.MemberExpression {
	return &ast.MemberExpression{Object: object, Property: property, Computed: computed}
}

func AwaitExpression(argument ast.Node) *ast.AwaitExpression {
	return &ast.AwaitExpression{Argument: argument}
}

func ExpressionStatement(expression ast.Node) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: expression}
}

func BlockStatement(body ...ast.Node) *ast.BlockStatement {
	if body == nil {
		body = []ast.Node{}
	}
	return &ast.BlockStatement{Body: body}
}

func EmptyStatement() *ast.EmptyStatement {
	return &ast.EmptyStatement{}
}

// ReturnStatement returns a return statement. argument may be nil.
func ReturnStatement(argument ast.Node) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: argument}
}

func ThrowStatement(argument ast.Node) *ast.ThrowStatement {
	return &ast.ThrowStatement{Argument: argument}
}

// IfStatement returns an if statement. alternate may be nil.
func IfStatement(test, consequent, alternate ast.Node) *ast.IfStatement {
	return &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func VariableDeclaration(kind string, declarations ...ast.Node) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Kind: kind, Declarations: declarations}
}

// VariableDeclarator binds id to init. init may be nil.
func VariableDeclarator(id, init ast.Node) *ast.VariableDeclarator {
	return &ast.VariableDeclarator{ID: id, Init: init}
}

func FunctionDeclaration(id ast.Node, params []ast.Node, body *ast.BlockStatement) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{ID: id, Params: params, Body: body}
}

func ImportDeclaration(specifiers []ast.Node, source ast.Node) *ast.ImportDeclaration {
	if specifiers == nil {
		specifiers = []ast.Node{}
	}
	return &ast.ImportDeclaration{Specifiers: specifiers, Source: source}
}

// ImportSpecifier returns a named import specifier. When local is nil the
// binding takes the imported name.
func ImportSpecifier(imported, local ast.Node) *ast.ImportSpecifier {
	if local == nil {
		local = imported
	}
	return &ast.ImportSpecifier{Imported: imported, Local: local}
}

func ImportDefaultSpecifier(local ast.Node) *ast.ImportDefaultSpecifier {
	return &ast.ImportDefaultSpecifier{Local: local}
}

func ImportNamespaceSpecifier(local ast.Node) *ast.ImportNamespaceSpecifier {
	return &ast.ImportNamespaceSpecifier{Local: local}
}

// ExportNamedDeclaration returns an export of either declaration or
// specifiers. source may be nil.
func ExportNamedDeclaration(declaration ast.Node, specifiers []ast.Node, source ast.Node) *ast.ExportNamedDeclaration {
	if specifiers == nil {
		specifiers = []ast.Node{}
	}
	return &ast.ExportNamedDeclaration{Declaration: declaration, Specifiers: specifiers, Source: source}
}

// ExportSpecifier returns an export specifier. When exported is nil the
// binding is exported under its local name.
func ExportSpecifier(local, exported ast.Node) *ast.ExportSpecifier {
	if exported == nil {
		exported = local
	}
	return &ast.ExportSpecifier{Local: local, Exported: exported}
}

func ExportDefaultDeclaration(declaration ast.Node) *ast.ExportDefaultDeclaration {
	return &ast.ExportDefaultDeclaration{Declaration: declaration}
}
