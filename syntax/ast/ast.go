// Package ast exposes the JavaScript AST nodes inspected by astdebug. Node
// kinds and field names follow ESTree, with the Babel literal and property
// variants included.
//
// Every typed node is a pointer to a struct whose fields carry an `ast` tag
// naming the ESTree field. Fields of embedded structs without a tag are
// flattened into the node, which is how Meta contributes location and comment
// metadata to every node.
package ast

import "slices"

// Node represents any node in the AST. NodeType returns the discriminant of
// the node, such as "Identifier" or "CallExpression".
type Node interface {
	NodeType() string
}

// Meta holds the incidental metadata shared by all nodes: offsets, location
// spans, attached comments and parser extras.
type Meta struct {
	Start            int             `ast:"start"`
	End              int             `ast:"end"`
	Loc              *SourceLocation `ast:"loc"`
	Comments         []*Comment      `ast:"comments"`
	LeadingComments  []*Comment      `ast:"leadingComments"`
	TrailingComments []*Comment      `ast:"trailingComments"`
	Extra            map[string]any  `ast:"extra"`

	// present holds the properties a decoded node was read with. It is nil
	// for nodes built in code, which have every declared property.
	present map[string]struct{}
}

func (m *Meta) meta() *Meta { return m }

// Has reports whether the node has the property name. Nodes built in code
// have all their declared properties; decoded nodes only have the ones that
// were present in the input.
func (m *Meta) Has(name string) bool {
	if m.present == nil {
		return true
	}
	_, ok := m.present[name]
	return ok
}

// SourceLocation is the span of source text a node was parsed from.
type SourceLocation struct {
	Start *Position `ast:"start"`
	End   *Position `ast:"end"`
}

// Position is a line/column pair. Lines are 1-indexed and columns 0-indexed.
type Position struct {
	Line   int `ast:"line"`
	Column int `ast:"column"`
}

// Comment is a line or block comment attached to a node.
type Comment struct {
	Type  string `ast:"type"`
	Value string `ast:"value"`
	Start int    `ast:"start"`
	End   int    `ast:"end"`
}

// File is the root produced by Babel, wrapping the program.
type File struct {
	Meta
	Program Node `ast:"program"`
}

// Program is a list of top-level statements.
type Program struct {
	Meta
	Body       []Node `ast:"body"`
	SourceType string `ast:"sourceType"`
}

// Insert inserts stmts into the program body before index i.
func (p *Program) Insert(i int, stmts ...Node) {
	p.Body = slices.Insert(p.Body, i, stmts...)
}

// Identifier is a reference to a binding or a property name.
type Identifier struct {
	Meta
	Name string `ast:"name"`
}

// Literal is an ESTree literal. Value holds a string, float64, bool or nil.
// Regex is set for regular expression literals.
type Literal struct {
	Meta
	Value any     `ast:"value"`
	Raw   string  `ast:"raw"`
	Regex *RegExp `ast:"regex"`
}

// RegExp is the pattern and flags of a regular expression literal.
type RegExp struct {
	Pattern string `ast:"pattern"`
	Flags   string `ast:"flags"`
}

type StringLiteral struct {
	Meta
	Value string `ast:"value"`
}

type NumericLiteral struct {
	Meta
	Value float64 `ast:"value"`
}

type BooleanLiteral struct {
	Meta
	Value bool `ast:"value"`
}

type NullLiteral struct {
	Meta
}

type RegExpLiteral struct {
	Meta
	Pattern string `ast:"pattern"`
	Flags   string `ast:"flags"`
}

type ThisExpression struct {
	Meta
}

// ArrayExpression is an array literal. Nil elements are holes.
type ArrayExpression struct {
	Meta
	Elements []Node `ast:"elements"`
}

type ObjectExpression struct {
	Meta
	Properties []Node `ast:"properties"`
}

// Property is an ESTree object property. Kind is "init", "get" or "set".
type Property struct {
	Meta
	Kind      string `ast:"kind"`
	Key       Node   `ast:"key"`
	Value     Node   `ast:"value"`
	Method    bool   `ast:"method"`
	Shorthand bool   `ast:"shorthand"`
	Computed  bool   `ast:"computed"`
}

// ObjectProperty is the Babel form of a non-method object property.
type ObjectProperty struct {
	Meta
	Key       Node `ast:"key"`
	Value     Node `ast:"value"`
	Computed  bool `ast:"computed"`
	Shorthand bool `ast:"shorthand"`
}

type SpreadElement struct {
	Meta
	Argument Node `ast:"argument"`
}

type FunctionExpression struct {
	Meta
	ID         Node   `ast:"id"`
	Params     []Node `ast:"params"`
	Body       Node   `ast:"body"`
	Generator  bool   `ast:"generator"`
	Async      bool   `ast:"async"`
	Expression bool   `ast:"expression"`
}

// ArrowFunctionExpression is an arrow function. Expression reports whether
// Body is an expression rather than a block.
type ArrowFunctionExpression struct {
	Meta
	ID         Node   `ast:"id"`
	Params     []Node `ast:"params"`
	Body       Node   `ast:"body"`
	Generator  bool   `ast:"generator"`
	Async      bool   `ast:"async"`
	Expression bool   `ast:"expression"`
}

type UnaryExpression struct {
	Meta
	Operator string `ast:"operator"`
	Prefix   bool   `ast:"prefix"`
	Argument Node   `ast:"argument"`
}

type UpdateExpression struct {
	Meta
	Operator string `ast:"operator"`
	Argument Node   `ast:"argument"`
	Prefix   bool   `ast:"prefix"`
}

type BinaryExpression struct {
	Meta
	Operator string `ast:"operator"`
	Left     Node   `ast:"left"`
	Right    Node   `ast:"right"`
}

type LogicalExpression struct {
	Meta
	Operator string `ast:"operator"`
	Left     Node   `ast:"left"`
	Right    Node   `ast:"right"`
}

type AssignmentExpression struct {
	Meta
	Operator string `ast:"operator"`
	Left     Node   `ast:"left"`
	Right    Node   `ast:"right"`
}

type ConditionalExpression struct {
	Meta
	Test       Node `ast:"test"`
	Consequent Node `ast:"consequent"`
	Alternate  Node `ast:"alternate"`
}

type CallExpression struct {
	Meta
	Callee    Node   `ast:"callee"`
	Arguments []Node `ast:"arguments"`
	Optional  bool   `ast:"optional"`
}

type NewExpression struct {
	Meta
	Callee    Node   `ast:"callee"`
	Arguments []Node `ast:"arguments"`
}

// MemberExpression is a property access. Computed accesses print with
// brackets.
type MemberExpression struct {
	Meta
	Object   Node `ast:"object"`
	Property Node `ast:"property"`
	Computed bool `ast:"computed"`
	Optional bool `ast:"optional"`
}

type AwaitExpression struct {
	Meta
	Argument Node `ast:"argument"`
}

type ExpressionStatement struct {
	Meta
	Expression Node `ast:"expression"`
}

type BlockStatement struct {
	Meta
	Body []Node `ast:"body"`
}

type EmptyStatement struct {
	Meta
}

type ReturnStatement struct {
	Meta
	Argument Node `ast:"argument"`
}

type ThrowStatement struct {
	Meta
	Argument Node `ast:"argument"`
}

type IfStatement struct {
	Meta
	Test       Node `ast:"test"`
	Consequent Node `ast:"consequent"`
	Alternate  Node `ast:"alternate"`
}

// VariableDeclaration declares one or more bindings. Kind is "var", "let" or
// "const".
type VariableDeclaration struct {
	Meta
	Kind         string `ast:"kind"`
	Declarations []Node `ast:"declarations"`
}

type VariableDeclarator struct {
	Meta
	ID   Node `ast:"id"`
	Init Node `ast:"init"`
}

type FunctionDeclaration struct {
	Meta
	ID        Node   `ast:"id"`
	Params    []Node `ast:"params"`
	Body      Node   `ast:"body"`
	Generator bool   `ast:"generator"`
	Async     bool   `ast:"async"`
}

// ImportDeclaration is an import statement. ImportKind is empty, "value" or
// "type".
type ImportDeclaration struct {
	Meta
	Specifiers []Node `ast:"specifiers"`
	Source     Node   `ast:"source"`
	ImportKind string `ast:"importKind"`
}

type ImportSpecifier struct {
	Meta
	Imported Node `ast:"imported"`
	Local    Node `ast:"local"`
}

type ImportDefaultSpecifier struct {
	Meta
	Local Node `ast:"local"`
}

type ImportNamespaceSpecifier struct {
	Meta
	Local Node `ast:"local"`
}

type ExportNamedDeclaration struct {
	Meta
	Declaration Node   `ast:"declaration"`
	Specifiers  []Node `ast:"specifiers"`
	Source      Node   `ast:"source"`
}

type ExportSpecifier struct {
	Meta
	Local    Node `ast:"local"`
	Exported Node `ast:"exported"`
}

type ExportDefaultDeclaration struct {
	Meta
	Declaration Node `ast:"declaration"`
}

func (*File) NodeType() string                     { return "File" }
func (*Program) NodeType() string                  { return "Program" }
func (*Identifier) NodeType() string               { return "Identifier" }
func (*Literal) NodeType() string                  { return "Literal" }
func (*StringLiteral) NodeType() string            { return "StringLiteral" }
func (*NumericLiteral) NodeType() string           { return "NumericLiteral" }
func (*BooleanLiteral) NodeType() string           { return "BooleanLiteral" }
func (*NullLiteral) NodeType() string              { return "NullLiteral" }
func (*RegExpLiteral) NodeType() string            { return "RegExpLiteral" }
func (*ThisExpression) NodeType() string           { return "ThisExpression" }
func (*ArrayExpression) NodeType() string          { return "ArrayExpression" }
func (*ObjectExpression) NodeType() string         { return "ObjectExpression" }
func (*Property) NodeType() string                 { return "Property" }
func (*ObjectProperty) NodeType() string           { return "ObjectProperty" }
func (*SpreadElement) NodeType() string            { return "SpreadElement" }
func (*FunctionExpression) NodeType() string       { return "FunctionExpression" }
func (*ArrowFunctionExpression) NodeType() string  { return "ArrowFunctionExpression" }
func (*UnaryExpression) NodeType() string          { return "UnaryExpression" }
func (*UpdateExpression) NodeType() string         { return "UpdateExpression" }
func (*BinaryExpression) NodeType() string         { return "BinaryExpression" }
func (*LogicalExpression) NodeType() string        { return "LogicalExpression" }
func (*AssignmentExpression) NodeType() string     { return "AssignmentExpression" }
func (*ConditionalExpression) NodeType() string    { return "ConditionalExpression" }
func (*CallExpression) NodeType() string           { return "CallExpression" }
func (*NewExpression) NodeType() string            { return "NewExpression" }
func (*MemberExpression) NodeType() string         { return "MemberExpression" }
func (*AwaitExpression) NodeType() string          { return "AwaitExpression" }
func (*ExpressionStatement) NodeType() string      { return "ExpressionStatement" }
func (*BlockStatement) NodeType() string           { return "BlockStatement" }
func (*EmptyStatement) NodeType() string           { return "EmptyStatement" }
func (*ReturnStatement) NodeType() string          { return "ReturnStatement" }
func (*ThrowStatement) NodeType() string           { return "ThrowStatement" }
func (*IfStatement) NodeType() string              { return "IfStatement" }
func (*VariableDeclaration) NodeType() string      { return "VariableDeclaration" }
func (*VariableDeclarator) NodeType() string       { return "VariableDeclarator" }
func (*FunctionDeclaration) NodeType() string      { return "FunctionDeclaration" }
func (*ImportDeclaration) NodeType() string        { return "ImportDeclaration" }
func (*ImportSpecifier) NodeType() string          { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) NodeType() string   { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) NodeType() string { return "ImportNamespaceSpecifier" }
func (*ExportNamedDeclaration) NodeType() string   { return "ExportNamedDeclaration" }
func (*ExportSpecifier) NodeType() string          { return "ExportSpecifier" }
func (*ExportDefaultDeclaration) NodeType() string { return "ExportDefaultDeclaration" }

// kinds maps every typed node kind to a constructor of its zero value.
var kinds = map[string]func() Node{
	"File":                     func() Node { return &File{} },
	"Program":                  func() Node { return &Program{} },
	"Identifier":               func() Node { return &Identifier{} },
	"Literal":                  func() Node { return &Literal{} },
	"StringLiteral":            func() Node { return &StringLiteral{} },
	"NumericLiteral":           func() Node { return &NumericLiteral{} },
	"BooleanLiteral":           func() Node { return &BooleanLiteral{} },
	"NullLiteral":              func() Node { return &NullLiteral{} },
	"RegExpLiteral":            func() Node { return &RegExpLiteral{} },
	"ThisExpression":           func() Node { return &ThisExpression{} },
	"ArrayExpression":          func() Node { return &ArrayExpression{} },
	"ObjectExpression":         func() Node { return &ObjectExpression{} },
	"Property":                 func() Node { return &Property{} },
	"ObjectProperty":           func() Node { return &ObjectProperty{} },
	"SpreadElement":            func() Node { return &SpreadElement{} },
	"FunctionExpression":       func() Node { return &FunctionExpression{} },
	"ArrowFunctionExpression":  func() Node { return &ArrowFunctionExpression{} },
	"UnaryExpression":          func() Node { return &UnaryExpression{} },
	"UpdateExpression":         func() Node { return &UpdateExpression{} },
	"BinaryExpression":         func() Node { return &BinaryExpression{} },
	"LogicalExpression":        func() Node { return &LogicalExpression{} },
	"AssignmentExpression":     func() Node { return &AssignmentExpression{} },
	"ConditionalExpression":    func() Node { return &ConditionalExpression{} },
	"CallExpression":           func() Node { return &CallExpression{} },
	"NewExpression":            func() Node { return &NewExpression{} },
	"MemberExpression":         func() Node { return &MemberExpression{} },
	"AwaitExpression":          func() Node { return &AwaitExpression{} },
	"ExpressionStatement":      func() Node { return &ExpressionStatement{} },
	"BlockStatement":           func() Node { return &BlockStatement{} },
	"EmptyStatement":           func() Node { return &EmptyStatement{} },
	"ReturnStatement":          func() Node { return &ReturnStatement{} },
	"ThrowStatement":           func() Node { return &ThrowStatement{} },
	"IfStatement":              func() Node { return &IfStatement{} },
	"VariableDeclaration":      func() Node { return &VariableDeclaration{} },
	"VariableDeclarator":       func() Node { return &VariableDeclarator{} },
	"FunctionDeclaration":      func() Node { return &FunctionDeclaration{} },
	"ImportDeclaration":        func() Node { return &ImportDeclaration{} },
	"ImportSpecifier":          func() Node { return &ImportSpecifier{} },
	"ImportDefaultSpecifier":   func() Node { return &ImportDefaultSpecifier{} },
	"ImportNamespaceSpecifier": func() Node { return &ImportNamespaceSpecifier{} },
	"ExportNamedDeclaration":   func() Node { return &ExportNamedDeclaration{} },
	"ExportSpecifier":          func() Node { return &ExportSpecifier{} },
	"ExportDefaultDeclaration": func() Node { return &ExportDefaultDeclaration{} },
}

// Known reports whether typ names a node kind with a typed representation.
func Known(typ string) bool {
	_, ok := kinds[typ]
	return ok
}
