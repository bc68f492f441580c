package ast

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// Decode reads an ESTree or Babel JSON AST. Object key order is preserved.
// Objects whose "type" names a known kind become typed nodes; objects of
// unknown kinds are kept as *Generic. The top-level value must be a node.
func Decode(data []byte) (Node, error) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	v := readValue(iter)
	if iter.Error != nil {
		return nil, fmt.Errorf("decoding ast: %w", iter.Error)
	}

	g, ok := v.(*Generic)
	if !ok || g.Kind == "" {
		return nil, fmt.Errorf("decoding ast: top-level value is not a node")
	}
	return Materialize(g)
}

func readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		g := &Generic{}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			val := readValue(it)
			if typ, ok := val.(string); ok && key == "type" && g.Kind == "" {
				g.Kind = typ
				return true
			}
			g.Props = append(g.Props, Prop{Key: key, Value: val})
			return true
		})
		return g
	case jsoniter.ArrayValue:
		list := []any{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			list = append(list, readValue(it))
			return true
		})
		return list
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		return iter.ReadFloat64()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.ReportError("readValue", "expected a JSON value")
		return nil
	}
}

// Materialize converts g into its typed node when g.Kind is known. Unknown
// kinds are returned as a new *Generic whose nested values have been
// materialized. Properties that the typed node does not declare are dropped,
// and the ones it declares but g lacks are reported as absent by Meta.Has.
func Materialize(g *Generic) (Node, error) {
	ctor, ok := kinds[g.Kind]
	if !ok {
		out := &Generic{Kind: g.Kind, Props: make([]Prop, len(g.Props))}
		for i, p := range g.Props {
			v, err := materializeAny(p.Value)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", g.Kind, p.Key, err)
			}
			out.Props[i] = Prop{Key: p.Key, Value: v}
		}
		return out, nil
	}

	n := ctor()
	if err := fill(reflect.ValueOf(n).Elem(), g); err != nil {
		return nil, err
	}
	if m, ok := n.(interface{ meta() *Meta }); ok {
		si := getStructInfo(reflect.TypeOf(n).Elem())
		present := make(map[string]struct{}, len(g.Props))
		for _, p := range g.Props {
			if _, declared := si.byName[p.Key]; declared {
				present[p.Key] = struct{}{}
			}
		}
		m.meta().present = present
	}
	return n, nil
}

func materializeAny(v any) (any, error) {
	switch v := v.(type) {
	case *Generic:
		if v.Kind == "" {
			return materializeObject(v)
		}
		return Materialize(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			m, err := materializeAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = m
		}
		return out, nil
	default:
		return v, nil
	}
}

func materializeObject(g *Generic) (*Generic, error) {
	out := &Generic{Props: make([]Prop, len(g.Props))}
	for i, p := range g.Props {
		v, err := materializeAny(p.Value)
		if err != nil {
			return nil, err
		}
		out.Props[i] = Prop{Key: p.Key, Value: v}
	}
	return out, nil
}

// fill assigns the properties of g to the tagged fields of the struct rv.
func fill(rv reflect.Value, g *Generic) error {
	si := getStructInfo(rv.Type())
	for _, p := range g.Props {
		f, ok := si.byName[p.Key]
		if !ok {
			continue
		}
		if err := assign(rv.FieldByIndex(f.index), p.Value); err != nil {
			name := g.Kind
			if name == "" {
				name = rv.Type().Name()
			}
			return fmt.Errorf("%s.%s: %w", name, p.Key, err)
		}
	}
	return nil
}

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

func assign(dst reflect.Value, v any) error {
	if v == nil {
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return mismatch(dst, v)
		}
		dst.SetString(s)

	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(dst, v)
		}
		dst.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := number(v)
		if !ok {
			return mismatch(dst, v)
		}
		dst.SetInt(int64(f))

	case reflect.Float32, reflect.Float64:
		f, ok := number(v)
		if !ok {
			return mismatch(dst, v)
		}
		dst.SetFloat(f)

	case reflect.Interface:
		m, err := materializeAny(v)
		if err != nil {
			return err
		}
		mv := reflect.ValueOf(m)
		if dst.Type() == nodeType {
			if _, ok := m.(Node); !ok {
				return mismatch(dst, v)
			}
		}
		if !mv.Type().AssignableTo(dst.Type()) {
			return mismatch(dst, v)
		}
		dst.Set(mv)

	case reflect.Slice:
		list, ok := v.([]any)
		if !ok {
			return mismatch(dst, v)
		}
		s := reflect.MakeSlice(dst.Type(), len(list), len(list))
		for i, e := range list {
			if err := assign(s.Index(i), e); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		dst.Set(s)

	case reflect.Pointer:
		g, ok := v.(*Generic)
		if !ok {
			return mismatch(dst, v)
		}
		if g.Kind != "" && Known(g.Kind) {
			n, err := Materialize(g)
			if err != nil {
				return err
			}
			nv := reflect.ValueOf(n)
			if !nv.Type().AssignableTo(dst.Type()) {
				return mismatch(dst, v)
			}
			dst.Set(nv)
			return nil
		}
		if dst.Type().Elem().Kind() != reflect.Struct {
			return mismatch(dst, v)
		}
		ptr := reflect.New(dst.Type().Elem())
		if g.Kind != "" {
			if f, ok := getStructInfo(ptr.Elem().Type()).byName["type"]; ok {
				ptr.Elem().FieldByIndex(f.index).SetString(g.Kind)
			}
		}
		if err := fill(ptr.Elem(), g); err != nil {
			return err
		}
		dst.Set(ptr)

	case reflect.Map:
		g, ok := v.(*Generic)
		if !ok || dst.Type().Key().Kind() != reflect.String {
			return mismatch(dst, v)
		}
		m := reflect.MakeMapWithSize(dst.Type(), len(g.Props))
		for _, p := range g.Props {
			val, err := materializeAny(p.Value)
			if err != nil {
				return err
			}
			if val == nil {
				m.SetMapIndex(reflect.ValueOf(p.Key), reflect.Zero(dst.Type().Elem()))
				continue
			}
			vv := reflect.ValueOf(val)
			if !vv.Type().AssignableTo(dst.Type().Elem()) {
				return mismatch(dst, v)
			}
			m.SetMapIndex(reflect.ValueOf(p.Key), vv)
		}
		dst.Set(m)

	default:
		return mismatch(dst, v)
	}
	return nil
}

// number converts the numeric values produced by JSON decoders to float64.
func number(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func mismatch(dst reflect.Value, v any) error {
	return fmt.Errorf("cannot assign %T to field of type %s", v, dst.Type())
}
