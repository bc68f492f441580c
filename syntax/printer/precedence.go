package printer

import "github.com/grafana/astdebug/syntax/ast"

// Precedence levels, lowest binding first. An operand whose precedence is
// below the minimum its position requires is wrapped in parentheses.
const (
	precLowest = iota
	precAssign
	precConditional
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precUpdate
	precCall
	precPrimary
)

var binaryPrecedence = map[string]int{
	"??":         precNullish,
	"||":         precOr,
	"&&":         precAnd,
	"|":          precBitOr,
	"^":          precBitXor,
	"&":          precBitAnd,
	"==":         precEquality,
	"!=":         precEquality,
	"===":        precEquality,
	"!==":        precEquality,
	"<":          precRelational,
	">":          precRelational,
	"<=":         precRelational,
	">=":         precRelational,
	"in":         precRelational,
	"instanceof": precRelational,
	"<<":         precShift,
	">>":         precShift,
	">>>":        precShift,
	"+":          precAdditive,
	"-":          precAdditive,
	"*":          precMultiplicative,
	"/":          precMultiplicative,
	"%":          precMultiplicative,
	"**":         precExponent,
}

func operatorPrecedence(op string) int {
	if prec, ok := binaryPrecedence[op]; ok {
		return prec
	}
	return precRelational
}

func precedenceOf(n ast.Node) int {
	switch n := n.(type) {
	case *ast.AssignmentExpression, *ast.ArrowFunctionExpression, *ast.SpreadElement:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return operatorPrecedence(n.Operator)
	case *ast.LogicalExpression:
		return operatorPrecedence(n.Operator)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Prefix {
			return precUnary
		}
		return precUpdate
	case *ast.CallExpression, *ast.NewExpression, *ast.MemberExpression:
		return precCall
	default:
		return precPrimary
	}
}

// expr prints n, parenthesized when it binds looser than min.
func (p *printer) expr(n ast.Node, min int) {
	n = resolve(n)
	if n == nil {
		return
	}
	p.operand(n, precedenceOf(n) < min)
}

func (p *printer) operand(n ast.Node, parens bool) {
	if parens {
		p.write("(")
		p.node(n)
		p.write(")")
		return
	}
	p.node(n)
}

func (p *printer) binary(op string, left, right ast.Node) {
	prec := operatorPrecedence(op)
	leftMin, rightMin := prec, prec+1
	if op == "**" {
		leftMin, rightMin = precUpdate, prec
	}

	left, right = resolve(left), resolve(right)
	if left != nil {
		p.operand(left, precedenceOf(left) < leftMin || mixesNullish(op, left))
	}
	p.write(" " + op + " ")
	if right != nil {
		p.operand(right, precedenceOf(right) < rightMin || mixesNullish(op, right))
	}
}

// mixesNullish reports whether operand is an || or && expression used
// directly under ??, which the language rejects without parentheses.
func mixesNullish(op string, operand ast.Node) bool {
	if op != "??" {
		return false
	}
	l, ok := operand.(*ast.LogicalExpression)
	return ok && (l.Operator == "||" || l.Operator == "&&")
}
