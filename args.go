package astdebug

import (
	"reflect"

	"github.com/grafana/astdebug/syntax/ast"
)

// DefaultLabel is the label used when a debug call does not name one.
const DefaultLabel = "DEBUG"

// Call is a resolved debug call.
type Call struct {
	Label string
	// Target is the validated node reference: an ast.Node, an *ast.Path or a
	// node-like map[string]any.
	Target  any
	Options *Options
}

// Resolve resolves the arguments of a debug call. Accepted shapes are:
//
//	Resolve(node)
//	Resolve(label, node)
//	Resolve(node, options)
//	Resolve(label, node, options)
//
// where node is anything ValidateNode accepts and options is an Options or a
// *Options. Trailing nil arguments are ignored. Every other shape fails with
// an error matching ErrInvalidArguments.
func Resolve(args ...any) (Call, error) {
	for len(args) > 0 && absent(args[len(args)-1]) {
		args = args[:len(args)-1]
	}

	switch len(args) {
	case 0:
		return Call{}, invalidf("no node provided")

	case 1:
		if _, ok := args[0].(string); ok {
			return Call{}, invalidf("label provided without a node")
		}
		if err := ValidateNode(args[0]); err != nil {
			return Call{}, err
		}
		return Call{Label: DefaultLabel, Target: args[0]}, nil

	case 2:
		if label, ok := args[0].(string); ok {
			if err := ValidateNode(args[1]); err != nil {
				return Call{}, err
			}
			return Call{Label: label, Target: args[1]}, nil
		}
		if err := ValidateNode(args[0]); err != nil {
			return Call{}, err
		}
		opts, err := toOptions(args[1])
		if err != nil {
			return Call{}, err
		}
		return Call{Label: DefaultLabel, Target: args[0], Options: opts}, nil

	case 3:
		label, ok := args[0].(string)
		if !ok {
			return Call{}, invalidf("first argument must be a label, provided: %T", args[0])
		}
		opts, err := toOptions(args[2])
		if err != nil {
			return Call{}, err
		}
		if err := ValidateNode(args[1]); err != nil {
			return Call{}, err
		}
		return Call{Label: label, Target: args[1], Options: opts}, nil

	default:
		return Call{}, invalidf("expected at most 3 arguments, provided: %d", len(args))
	}
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	o, ok := v.(*Options)
	return ok && o == nil
}

// ValidateNode reports whether v can be debugged. v must be a single node: an
// ast.Node with a type, an *ast.Path holding one, or a map[string]any with a
// non-empty "type" entry. ValidateNode does not modify v.
func ValidateNode(v any) error {
	if v == nil {
		return invalidf("no node provided")
	}
	if k := reflect.TypeOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
		return invalidf("must provide a single node, not a collection")
	}

	switch v := v.(type) {
	case *ast.Path:
		if v != nil && ast.IsNode(v.Node) {
			return nil
		}
		return invalidf("must provide a node or node path, provided: empty node path")
	case ast.Node:
		if ast.IsNode(v) {
			return nil
		}
		return invalidf("must provide a node or node path, provided: %T without a type", v)
	case map[string]any:
		if typ, _ := v["type"].(string); typ != "" {
			return nil
		}
		return invalidf("must provide a node or node path, provided: %T without a type", v)
	default:
		return invalidf("must provide a node or node path, provided: %T", v)
	}
}

// Unwrap returns the node referenced by a validated target and whether the
// target was a node path. Node-like maps are converted to an *ast.Generic.
func Unwrap(target any) (node ast.Node, isPath bool) {
	switch v := target.(type) {
	case *ast.Path:
		return v.Node, true
	case map[string]any:
		return ast.FromMap(v), false
	case ast.Node:
		return v, false
	default:
		return nil, false
	}
}
