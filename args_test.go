package astdebug_test

import (
	"errors"
	"testing"

	"github.com/grafana/astdebug"
	"github.com/grafana/astdebug/syntax/ast"
	b "github.com/grafana/astdebug/syntax/builder"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	node := b.Identifier("foo")
	path := ast.NewPath(node)
	opts := astdebug.Options{Spacing: 2}

	tt := []struct {
		name   string
		args   []any
		expect astdebug.Call
	}{
		{
			name:   "node",
			args:   []any{node},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: node},
		},
		{
			name:   "node path",
			args:   []any{path},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: path},
		},
		{
			name:   "label and node",
			args:   []any{"some string", node},
			expect: astdebug.Call{Label: "some string", Target: node},
		},
		{
			name:   "node and options",
			args:   []any{node, opts},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: node, Options: &opts},
		},
		{
			name:   "node and options pointer",
			args:   []any{node, &opts},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: node, Options: &opts},
		},
		{
			name:   "label, node and options",
			args:   []any{"some string", node, opts},
			expect: astdebug.Call{Label: "some string", Target: node, Options: &opts},
		},
		{
			name:   "trailing nils",
			args:   []any{"some string", node, nil},
			expect: astdebug.Call{Label: "some string", Target: node},
		},
		{
			name:   "trailing nil options",
			args:   []any{node, (*astdebug.Options)(nil)},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: node},
		},
		{
			name:   "node-like map",
			args:   []any{map[string]any{"type": "Identifier", "name": "foo"}},
			expect: astdebug.Call{Label: astdebug.DefaultLabel, Target: map[string]any{"type": "Identifier", "name": "foo"}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			call, err := astdebug.Resolve(tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.expect, call)
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	node := b.Identifier("foo")

	tt := []struct {
		name   string
		args   []any
		reason string
	}{
		{"no arguments", nil, "no node provided"},
		{"label only", []any{"some string"}, "label provided without a node"},
		{"label with nil node", []any{"some string", nil, nil}, "label provided without a node"},
		{"too many arguments", []any{"a", node, astdebug.Options{}, "d"}, "expected at most 3 arguments, provided: 4"},
		{"non-string label", []any{42, node, astdebug.Options{}}, "first argument must be a label, provided: int"},
		{"invalid options", []any{node, 4}, "options must be an Options record, provided: int"},
		{"negative spacing", []any{"label", node, astdebug.Options{Spacing: -1}}, "spacing must not be negative, provided: -1"},
		{"label with invalid node", []any{"label", struct{}{}}, "must provide a node or node path, provided: struct {}"},
		{"collection", []any{[]ast.Node{node}}, "must provide a single node, not a collection"},
		{"collection after label", []any{"label", []ast.Node{node}}, "must provide a single node, not a collection"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astdebug.Resolve(tc.args...)
			require.ErrorIs(t, err, astdebug.ErrInvalidArguments)

			var argErr *astdebug.ArgumentError
			require.True(t, errors.As(err, &argErr))
			require.Equal(t, tc.reason, argErr.Reason)
		})
	}
}

func TestValidateNode(t *testing.T) {
	t.Run("accepts nodes", func(t *testing.T) {
		require.NoError(t, astdebug.ValidateNode(b.Identifier("foo")))
		require.NoError(t, astdebug.ValidateNode(&ast.Generic{Kind: "JSXElement"}))
		require.NoError(t, astdebug.ValidateNode(ast.NewPath(b.Identifier("foo"))))
		require.NoError(t, astdebug.ValidateNode(map[string]any{"type": "Identifier"}))
	})

	t.Run("rejects collections", func(t *testing.T) {
		for _, v := range []any{
			[]ast.Node{b.Identifier("foo")},
			[]ast.Node{},
			[1]ast.Node{b.Identifier("foo")},
			[]*ast.Path{ast.NewPath(b.Identifier("foo"))},
			[]any{map[string]any{"type": "Identifier"}},
		} {
			err := astdebug.ValidateNode(v)
			require.ErrorIs(t, err, astdebug.ErrInvalidArguments)
			require.ErrorContains(t, err, "must provide a single node, not a collection")
		}
	})

	t.Run("rejects values without a type", func(t *testing.T) {
		tt := []struct {
			value  any
			reason string
		}{
			{map[string]any{"name": "foo"}, "map[string]interface {} without a type"},
			{map[string]any{"type": ""}, "map[string]interface {} without a type"},
			{&ast.Generic{}, "*ast.Generic without a type"},
			{(*ast.Identifier)(nil), "*ast.Identifier without a type"},
			{&ast.Path{Index: -1}, "empty node path"},
			{"foo", "string"},
			{3.5, "float64"},
		}
		for _, tc := range tt {
			err := astdebug.ValidateNode(tc.value)
			require.ErrorIs(t, err, astdebug.ErrInvalidArguments)
			require.EqualError(t, err, "astdebug: invalid arguments: must provide a node or node path, provided: "+tc.reason)
		}
	})
}

func TestUnwrap(t *testing.T) {
	node := b.Identifier("foo")

	got, isPath := astdebug.Unwrap(node)
	require.Same(t, node, got)
	require.False(t, isPath)

	got, isPath = astdebug.Unwrap(ast.NewPath(node))
	require.Same(t, node, got)
	require.True(t, isPath)

	got, isPath = astdebug.Unwrap(map[string]any{"type": "Identifier", "name": "foo"})
	require.False(t, isPath)
	require.Equal(t, &ast.Generic{Kind: "Identifier", Props: []ast.Prop{{Key: "name", Value: "foo"}}}, got)
}
