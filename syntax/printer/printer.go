// Package printer renders AST nodes as JavaScript source text.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/grafana/astdebug/syntax/ast"
)

// Quote selects the quote character used for string literals.
type Quote int

const (
	QuoteDouble Quote = iota
	QuoteSingle
)

// DefaultTabWidth is the indentation width used when Config.TabWidth is
// unset.
const DefaultTabWidth = 2

// Config configures the printer.
type Config struct {
	// TabWidth is the number of spaces per indentation level.
	TabWidth int
	Quote    Quote
}

// Fprint prints node to w using the default configuration.
func Fprint(w io.Writer, node ast.Node) error {
	return Config{}.Fprint(w, node)
}

// Sprint returns node printed with the default configuration.
func Sprint(node ast.Node) string {
	return Config{}.Sprint(node)
}

// Fprint prints node to w. Statements print with their terminating
// semicolons; expressions print bare.
func (c Config) Fprint(w io.Writer, node ast.Node) error {
	p := newPrinter(c)
	p.node(node)
	_, err := w.Write(p.out.Bytes())
	return err
}

// Sprint returns node printed as a string.
func (c Config) Sprint(node ast.Node) string {
	p := newPrinter(c)
	p.node(node)
	return p.out.String()
}

type printer struct {
	tabWidth int
	quote    rune
	indent   int
	out      *bytes.Buffer
}

func newPrinter(c Config) *printer {
	p := &printer{
		tabWidth: c.TabWidth,
		quote:    '"',
		out:      new(bytes.Buffer),
	}
	if p.tabWidth <= 0 {
		p.tabWidth = DefaultTabWidth
	}
	if c.Quote == QuoteSingle {
		p.quote = '\''
	}
	return p
}

func (p *printer) write(s string) { p.out.WriteString(s) }

func (p *printer) newline() {
	p.out.WriteByte('\n')
	p.out.WriteString(strings.Repeat(" ", p.indent*p.tabWidth))
}

// capture returns what fn prints instead of writing it to the output.
func (p *printer) capture(fn func()) string {
	saved := p.out
	p.out = new(bytes.Buffer)
	fn()
	s := p.out.String()
	p.out = saved
	return s
}

// resolve returns nil for nil nodes and turns generic nodes of known kinds
// into their typed form.
func resolve(n ast.Node) ast.Node {
	if isNil(n) {
		return nil
	}
	if g, ok := n.(*ast.Generic); ok && ast.Known(g.Kind) {
		if m, err := ast.Materialize(g); err == nil {
			return m
		}
	}
	return n
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (p *printer) node(n ast.Node) {
	n = resolve(n)
	if n == nil {
		return
	}

	switch n := n.(type) {
	case *ast.File:
		p.node(n.Program)
	case *ast.Program:
		p.statements(n.Body)

	case *ast.Identifier:
		p.write(n.Name)
	case *ast.Literal:
		p.literal(n)
	case *ast.StringLiteral:
		p.write(p.quoteString(n.Value))
	case *ast.NumericLiteral:
		p.write(formatNumber(n.Value))
	case *ast.BooleanLiteral:
		p.write(strconv.FormatBool(n.Value))
	case *ast.NullLiteral:
		p.write("null")
	case *ast.RegExpLiteral:
		p.write("/" + n.Pattern + "/" + n.Flags)
	case *ast.ThisExpression:
		p.write("this")

	case *ast.ArrayExpression:
		p.write("[")
		for i, e := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.expr(e, precAssign)
		}
		if l := len(n.Elements); l > 0 && isNil(n.Elements[l-1]) {
			p.write(",")
		}
		p.write("]")
	case *ast.ObjectExpression:
		p.object(n.Properties)
	case *ast.Property:
		p.property(n.Kind, n.Key, n.Value, n.Computed, n.Shorthand, n.Method)
	case *ast.ObjectProperty:
		p.property("init", n.Key, n.Value, n.Computed, n.Shorthand, false)
	case *ast.SpreadElement:
		p.write("...")
		p.expr(n.Argument, precAssign)

	case *ast.FunctionExpression:
		p.function(n.Async, n.Generator, n.ID, n.Params, n.Body)
	case *ast.FunctionDeclaration:
		p.function(n.Async, n.Generator, n.ID, n.Params, n.Body)
	case *ast.ArrowFunctionExpression:
		p.arrow(n)

	case *ast.UnaryExpression:
		arg := p.capture(func() { p.expr(n.Argument, precUnary) })
		p.write(n.Operator)
		if isWordOperator(n.Operator) || (arg != "" && (n.Operator == "-" || n.Operator == "+") && arg[0] == n.Operator[0]) {
			p.write(" ")
		}
		p.write(arg)
	case *ast.UpdateExpression:
		if n.Prefix {
			p.write(n.Operator)
			p.expr(n.Argument, precCall)
		} else {
			p.expr(n.Argument, precCall)
			p.write(n.Operator)
		}
	case *ast.BinaryExpression:
		p.binary(n.Operator, n.Left, n.Right)
	case *ast.LogicalExpression:
		p.binary(n.Operator, n.Left, n.Right)
	case *ast.AssignmentExpression:
		p.expr(n.Left, precCall)
		p.write(" " + n.Operator + " ")
		p.expr(n.Right, precAssign)
	case *ast.ConditionalExpression:
		p.expr(n.Test, precNullish)
		p.write(" ? ")
		p.expr(n.Consequent, precAssign)
		p.write(" : ")
		p.expr(n.Alternate, precAssign)
	case *ast.CallExpression:
		p.callee(n.Callee)
		if n.Optional {
			p.write("?.")
		}
		p.arguments(n.Arguments)
	case *ast.NewExpression:
		p.write("new ")
		if chainsCall(n.Callee) {
			p.write("(")
			p.node(n.Callee)
			p.write(")")
		} else {
			p.callee(n.Callee)
		}
		p.arguments(n.Arguments)
	case *ast.MemberExpression:
		p.memberObject(n.Object)
		switch {
		case n.Computed && n.Optional:
			p.write("?.[")
		case n.Computed:
			p.write("[")
		case n.Optional:
			p.write("?.")
		default:
			p.write(".")
		}
		if n.Computed {
			p.expr(n.Property, precLowest)
			p.write("]")
		} else {
			p.node(n.Property)
		}
	case *ast.AwaitExpression:
		p.write("await ")
		p.expr(n.Argument, precUnary)

	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression) {
			p.write("(")
			p.expr(n.Expression, precLowest)
			p.write(")")
		} else {
			p.expr(n.Expression, precLowest)
		}
		p.write(";")
	case *ast.BlockStatement:
		p.block(n.Body)
	case *ast.EmptyStatement:
		p.write(";")
	case *ast.ReturnStatement:
		p.write("return")
		if !isNil(n.Argument) {
			p.write(" ")
			p.expr(n.Argument, precLowest)
		}
		p.write(";")
	case *ast.ThrowStatement:
		p.write("throw ")
		p.expr(n.Argument, precLowest)
		p.write(";")
	case *ast.IfStatement:
		p.ifStatement(n)
	case *ast.VariableDeclaration:
		p.write(n.Kind + " ")
		for i, d := range n.Declarations {
			if i > 0 {
				p.write(", ")
			}
			p.node(d)
		}
		p.write(";")
	case *ast.VariableDeclarator:
		p.node(n.ID)
		if !isNil(n.Init) {
			p.write(" = ")
			p.expr(n.Init, precAssign)
		}

	case *ast.ImportDeclaration:
		p.importDeclaration(n)
	case *ast.ImportSpecifier:
		p.node(n.Imported)
		if !isNil(n.Local) && nameOf(n.Local) != nameOf(n.Imported) {
			p.write(" as ")
			p.node(n.Local)
		}
	case *ast.ImportDefaultSpecifier:
		p.node(n.Local)
	case *ast.ImportNamespaceSpecifier:
		p.write("* as ")
		p.node(n.Local)
	case *ast.ExportNamedDeclaration:
		p.write("export ")
		if !isNil(n.Declaration) {
			p.stmt(n.Declaration)
			return
		}
		p.specifierList(n.Specifiers)
		if !isNil(n.Source) {
			p.write(" from ")
			p.node(n.Source)
		}
		p.write(";")
	case *ast.ExportSpecifier:
		p.node(n.Local)
		if !isNil(n.Exported) && nameOf(n.Exported) != nameOf(n.Local) {
			p.write(" as ")
			p.node(n.Exported)
		}
	case *ast.ExportDefaultDeclaration:
		p.write("export default ")
		if isExpression(resolve(n.Declaration)) {
			p.expr(n.Declaration, precAssign)
			p.write(";")
		} else {
			p.node(n.Declaration)
		}

	default:
		p.write("/* " + n.NodeType() + " */")
	}
}

// stmt prints n in statement position, terminating bare expressions.
func (p *printer) stmt(n ast.Node) {
	n = resolve(n)
	if n == nil {
		return
	}
	p.node(n)
	if isExpression(n) {
		p.write(";")
	}
}

func (p *printer) statements(list []ast.Node) {
	first := true
	for _, s := range list {
		if isNil(s) {
			continue
		}
		if !first {
			p.newline()
		}
		first = false
		p.stmt(s)
	}
}

func (p *printer) block(body []ast.Node) {
	if len(body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for _, s := range body {
		if isNil(s) {
			continue
		}
		p.newline()
		p.stmt(s)
	}
	p.indent--
	p.newline()
	p.write("}")
}

// clause prints the body of an if statement.
func (p *printer) clause(n ast.Node) {
	if _, ok := resolve(n).(*ast.BlockStatement); ok {
		p.write(" ")
		p.node(n)
		return
	}
	p.indent++
	p.newline()
	p.stmt(n)
	p.indent--
}

func (p *printer) ifStatement(n *ast.IfStatement) {
	p.write("if (")
	p.expr(n.Test, precLowest)
	p.write(")")
	p.clause(n.Consequent)

	alt := resolve(n.Alternate)
	if alt == nil {
		return
	}
	if _, ok := resolve(n.Consequent).(*ast.BlockStatement); ok {
		p.write(" ")
	} else {
		p.newline()
	}
	p.write("else")
	if _, ok := alt.(*ast.IfStatement); ok {
		p.write(" ")
		p.node(alt)
		return
	}
	p.clause(alt)
}

func (p *printer) object(props []ast.Node) {
	if len(props) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for i, prop := range props {
		p.newline()
		p.node(prop)
		if i < len(props)-1 {
			p.write(",")
		}
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) property(kind string, key, value ast.Node, computed, shorthand, method bool) {
	if shorthand && !computed {
		p.expr(value, precAssign)
		return
	}

	fn, isFn := resolve(value).(*ast.FunctionExpression)
	if isFn && (method || kind == "get" || kind == "set") {
		if kind == "get" || kind == "set" {
			p.write(kind + " ")
		}
		if fn.Async {
			p.write("async ")
		}
		if fn.Generator {
			p.write("*")
		}
		p.propertyKey(key, computed)
		p.params(fn.Params)
		p.write(" ")
		p.node(fn.Body)
		return
	}

	p.propertyKey(key, computed)
	p.write(": ")
	p.expr(value, precAssign)
}

func (p *printer) propertyKey(key ast.Node, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, precAssign)
		p.write("]")
		return
	}
	p.node(key)
}

func (p *printer) function(async, generator bool, id ast.Node, params []ast.Node, body ast.Node) {
	if async {
		p.write("async ")
	}
	p.write("function")
	if generator {
		p.write("*")
	}
	if !isNil(id) {
		p.write(" ")
		p.node(id)
	}
	p.params(params)
	p.write(" ")
	if isNil(body) {
		p.write("{}")
		return
	}
	p.node(body)
}

func (p *printer) arrow(n *ast.ArrowFunctionExpression) {
	if n.Async {
		p.write("async ")
	}
	if len(n.Params) == 1 {
		if _, ok := resolve(n.Params[0]).(*ast.Identifier); ok {
			p.node(n.Params[0])
		} else {
			p.params(n.Params)
		}
	} else {
		p.params(n.Params)
	}
	p.write(" => ")

	body := resolve(n.Body)
	switch body.(type) {
	case nil:
		p.write("{}")
	case *ast.BlockStatement:
		p.node(body)
	default:
		if _, ok := leftmost(body).(*ast.ObjectExpression); ok {
			p.write("(")
			p.expr(body, precLowest)
			p.write(")")
			return
		}
		p.expr(body, precAssign)
	}
}

func (p *printer) params(params []ast.Node) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.expr(param, precAssign)
	}
	p.write(")")
}

func (p *printer) arguments(args []ast.Node) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(arg, precAssign)
	}
	p.write(")")
}

func (p *printer) callee(n ast.Node) {
	switch resolve(n).(type) {
	case *ast.FunctionExpression, *ast.ArrowFunctionExpression:
		p.write("(")
		p.node(n)
		p.write(")")
	default:
		p.expr(n, precCall)
	}
}

// chainsCall reports whether n is a call or a member access whose object
// chain contains one. Such callees of new need parentheses.
func chainsCall(n ast.Node) bool {
	for {
		switch v := resolve(n).(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			n = v.Object
		default:
			return false
		}
	}
}

func (p *printer) memberObject(n ast.Node) {
	switch v := resolve(n).(type) {
	case *ast.NumericLiteral:
		p.write("(")
		p.node(v)
		p.write(")")
	case *ast.Literal:
		if _, isString := v.Value.(string); !isString && v.Regex == nil && v.Value != nil {
			p.write("(")
			p.node(v)
			p.write(")")
			return
		}
		p.node(v)
	default:
		p.callee(n)
	}
}

func (p *printer) importDeclaration(n *ast.ImportDeclaration) {
	p.write("import ")
	if n.ImportKind == "type" || n.ImportKind == "typeof" {
		p.write(n.ImportKind + " ")
	}

	var defaults, namespaces, named []ast.Node
	for _, s := range n.Specifiers {
		switch resolve(s).(type) {
		case nil:
		case *ast.ImportDefaultSpecifier:
			defaults = append(defaults, s)
		case *ast.ImportNamespaceSpecifier:
			namespaces = append(namespaces, s)
		default:
			named = append(named, s)
		}
	}

	wrote := false
	for _, s := range append(defaults, namespaces...) {
		if wrote {
			p.write(", ")
		}
		p.node(s)
		wrote = true
	}
	if len(named) > 0 {
		if wrote {
			p.write(", ")
		}
		p.specifierList(named)
		wrote = true
	}
	if wrote {
		p.write(" from ")
	}
	p.node(n.Source)
	p.write(";")
}

func (p *printer) specifierList(specs []ast.Node) {
	if len(specs) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, s := range specs {
		if i > 0 {
			p.write(", ")
		}
		p.node(s)
	}
	p.write(" }")
}

func (p *printer) literal(n *ast.Literal) {
	if n.Regex != nil {
		p.write("/" + n.Regex.Pattern + "/" + n.Regex.Flags)
		return
	}
	if n.Raw != "" {
		p.write(n.Raw)
		return
	}
	switch v := n.Value.(type) {
	case nil:
		p.write("null")
	case string:
		p.write(p.quoteString(v))
	case bool:
		p.write(strconv.FormatBool(v))
	case float64:
		p.write(formatNumber(v))
	case float32:
		p.write(formatNumber(float64(v)))
	case int:
		p.write(strconv.Itoa(v))
	case int64:
		p.write(strconv.FormatInt(v, 10))
	default:
		p.write(fmt.Sprint(v))
	}
}

// nameOf returns the identifier name or string value of a specifier part.
func nameOf(n ast.Node) string {
	switch v := resolve(n).(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.StringLiteral:
		return v.Value
	case *ast.Literal:
		if s, ok := v.Value.(string); ok {
			return s
		}
	}
	return ""
}

// startsAmbiguously reports whether an expression statement holding n would
// begin with a token that reads as a block or a function declaration.
func startsAmbiguously(n ast.Node) bool {
	switch leftmost(n).(type) {
	case *ast.ObjectExpression, *ast.FunctionExpression:
		return true
	}
	return false
}

func leftmost(n ast.Node) ast.Node {
	for {
		n = resolve(n)
		switch e := n.(type) {
		case *ast.CallExpression:
			if _, ok := resolve(e.Callee).(*ast.FunctionExpression); ok {
				return e
			}
			n = e.Callee
		case *ast.MemberExpression:
			n = e.Object
		case *ast.BinaryExpression:
			n = e.Left
		case *ast.LogicalExpression:
			n = e.Left
		case *ast.AssignmentExpression:
			n = e.Left
		case *ast.ConditionalExpression:
			n = e.Test
		case *ast.UpdateExpression:
			if e.Prefix {
				return e
			}
			n = e.Argument
		default:
			return n
		}
	}
}

func isExpression(n ast.Node) bool {
	switch n.(type) {
	case *ast.File, *ast.Program,
		*ast.ExpressionStatement, *ast.BlockStatement, *ast.EmptyStatement,
		*ast.ReturnStatement, *ast.ThrowStatement, *ast.IfStatement,
		*ast.VariableDeclaration, *ast.VariableDeclarator, *ast.FunctionDeclaration,
		*ast.ImportDeclaration, *ast.ImportSpecifier, *ast.ImportDefaultSpecifier,
		*ast.ImportNamespaceSpecifier, *ast.ExportNamedDeclaration,
		*ast.ExportSpecifier, *ast.ExportDefaultDeclaration,
		*ast.Property, *ast.ObjectProperty:
		return false
	}
	return true
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	}
	return false
}
