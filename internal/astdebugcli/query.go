package astdebugcli

import (
	"fmt"

	"github.com/grafana/astdebug/syntax/ast"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// queryNodes evaluates the JSONPath expression query against the JSON
// document data and returns every result that is a node. Results that are
// not objects with a type are skipped.
func queryNodes(data []byte, query string) ([]ast.Node, error) {
	expr, err := jp.ParseString(query)
	if err != nil {
		return nil, fmt.Errorf("parsing query %q: %w", query, err)
	}

	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decoding ast: %w", err)
	}

	var nodes []ast.Node
	for _, result := range expr.Get(doc) {
		m, ok := result.(map[string]any)
		if !ok {
			continue
		}
		g := ast.FromMap(m)
		if g.Kind == "" {
			continue
		}
		n, err := ast.Materialize(g)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("query %q matched no nodes", query)
	}
	return nodes, nil
}
