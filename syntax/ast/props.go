package ast

import (
	"reflect"
	"sync"
)

// structCache caches the tagged fields of a struct type. This is never
// cleared, but node types are static so it stays small.
var structCache sync.Map

type structField struct {
	name  string
	index []int
}

type structInfo struct {
	fields []structField
	byName map[string]structField
}

func getStructInfo(t reflect.Type) *structInfo {
	if t.Kind() != reflect.Struct {
		panic("ast: getStructInfo called with non-struct type")
	}

	if entry, ok := structCache.Load(t); ok {
		return entry.(*structInfo)
	}

	si := &structInfo{byName: make(map[string]structField)}
	collectFields(t, nil, si)

	structCache.Store(t, si)
	return si
}

func collectFields(t reflect.Type, parent []int, si *structInfo) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		index := make([]int, len(parent)+1)
		copy(index, parent)
		index[len(parent)] = i

		name, tagged := sf.Tag.Lookup("ast")
		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, index, si)
			continue
		}
		if !sf.IsExported() || !tagged || name == "" || name == "-" {
			continue
		}

		f := structField{name: name, index: index}
		si.fields = append(si.fields, f)
		si.byName[name] = f
	}
}

// PropsOf returns the named fields of v in declaration order. For nodes the
// first property is always "type". v may be a typed node, a *Generic, or any
// other struct (or pointer to one) with ast tags; PropsOf returns nil for
// anything else.
//
// Decoded nodes only list the properties they were decoded with, see
// Meta.Has.
//
// Values are normalized: nil pointers, interfaces and maps become nil, and
// slices become []any (nil slices become empty lists).
func PropsOf(v any) []Prop {
	if g, ok := v.(*Generic); ok {
		if g == nil {
			return nil
		}
		props := make([]Prop, 0, len(g.Props)+1)
		if g.Kind != "" {
			props = append(props, Prop{Key: "type", Value: g.Kind})
		}
		for _, p := range g.Props {
			props = append(props, Prop{Key: p.Key, Value: normalize(reflect.ValueOf(p.Value))})
		}
		return props
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var meta *Meta
	if m, ok := v.(interface{ meta() *Meta }); ok {
		meta = m.meta()
	}

	si := getStructInfo(rv.Type())
	props := make([]Prop, 0, len(si.fields)+1)
	if n, ok := v.(Node); ok {
		props = append(props, Prop{Key: "type", Value: n.NodeType()})
	}
	for _, f := range si.fields {
		if meta != nil && !meta.Has(f.name) {
			continue
		}
		props = append(props, Prop{Key: f.name, Value: normalize(rv.FieldByIndex(f.index))})
	}
	return props
}

func normalize(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem())
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return nil
		}
		return rv.Interface()
	case reflect.Slice, reflect.Array:
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = normalize(rv.Index(i))
		}
		return list
	default:
		return rv.Interface()
	}
}

// IsNode reports whether v is a non-nil node with a non-empty type.
func IsNode(v any) bool {
	n, ok := v.(Node)
	if !ok {
		return false
	}
	rv := reflect.ValueOf(n)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	return n.NodeType() != ""
}
