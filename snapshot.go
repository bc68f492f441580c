package astdebug

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/grafana/astdebug/syntax/ast"
)

// supportedPropNames lists the node fields captured in a snapshot. Everything
// else, such as locations, raw tokens and comments, is left out.
var supportedPropNames = []string{
	"property",
	"callee",
	"object",
	"expression",
	"type",
	"name",
	"arguments",
	"left",
	"right",
	"kind",
	"init",
	"id",
	"properties",
	"declarations",
	"source",
	"value",
	"specifiers",
	"local",
	"key",
	"body",
}

var supportedProps = setOf(supportedPropNames)

// supportedArgProps lists the fields captured for elements of an arguments
// list.
var supportedArgProps = setOf([]string{"type", "value", "name"})

// SupportedProps returns the names of the fields a snapshot may contain.
func SupportedProps() []string {
	return slices.Clone(supportedPropNames)
}

func setOf(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// TakeSnapshot captures the supported fields of n, in the order the node
// declares them. Elements of arguments lists are reduced to their type, value
// and name. Nodes that are already being captured higher up the tree are
// treated as absent, so the result is always finite.
func TakeSnapshot(n ast.Node) *Snapshot {
	s := &snapshotter{active: make(map[uintptr]struct{})}
	if snap := s.object(n); snap != nil {
		return snap
	}
	return &Snapshot{}
}

type snapshotter struct {
	active map[uintptr]struct{}
}

// object captures v, returning nil when v is absent.
func (s *snapshotter) object(v any) *Snapshot {
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return nil
		}
		v = ast.FromMap(m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return nil
		}
	}
	if rv.Kind() == reflect.Pointer {
		ptr := rv.Pointer()
		if _, ok := s.active[ptr]; ok {
			return nil
		}
		s.active[ptr] = struct{}{}
		defer delete(s.active, ptr)
	}

	snap := &Snapshot{}
	for _, p := range ast.PropsOf(v) {
		if _, ok := supportedProps[p.Key]; !ok {
			continue
		}
		snap.add(p.Key, s.field(p.Key, p.Value))
	}
	return snap
}

func (s *snapshotter) field(name string, v any) Value {
	if list, ok := v.([]any); ok {
		out := make([]Value, len(list))
		for i, elem := range list {
			if name == "arguments" {
				out[i] = s.argument(elem)
			} else {
				out[i] = s.element(elem)
			}
		}
		return ListValue(out...)
	}
	if isObject(v) {
		if snap := s.object(v); snap != nil {
			return ObjectValue(snap)
		}
		return UndefinedValue()
	}
	return primitive(v)
}

// element captures a list element other than an argument. Primitives pass
// through unchanged.
func (s *snapshotter) element(v any) Value {
	return s.field("", v)
}

func (s *snapshotter) argument(v any) Value {
	if !isObject(v) {
		return primitive(v)
	}
	if m, ok := v.(map[string]any); ok {
		v = ast.FromMap(m)
	}

	props := ast.PropsOf(v)
	if props == nil {
		return UndefinedValue()
	}
	snap := &Snapshot{}
	for _, p := range props {
		if _, ok := supportedArgProps[p.Key]; !ok {
			continue
		}
		if p.Value == nil {
			snap.add(p.Key, NullValue())
			continue
		}
		snap.add(p.Key, s.field(p.Key, p.Value))
	}
	return ObjectValue(snap)
}

func isObject(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Pointer, reflect.Struct, reflect.Map:
		return true
	}
	return false
}

// primitive converts a scalar to a Value. nil becomes undefined.
func primitive(v any) Value {
	if v == nil {
		return UndefinedValue()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return StringValue(rv.String())
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberValue(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberValue(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return NumberValue(rv.Float())
	case reflect.Slice, reflect.Array:
		out := make([]Value, rv.Len())
		for i := range out {
			out[i] = primitive(rv.Index(i).Interface())
		}
		return ListValue(out...)
	default:
		return StringValue(fmt.Sprint(v))
	}
}
