package ast

import (
	"sort"
)

// Generic is a node of any kind held as an ordered list of properties. It is
// used for kinds without a typed representation and for plain objects such as
// location spans. A Generic with an empty Kind is not a node.
type Generic struct {
	Kind  string
	Props []Prop
}

// Prop is a single named field of a node.
type Prop struct {
	Key   string
	Value any
}

// NodeType implements Node.
func (g *Generic) NodeType() string {
	if g == nil {
		return ""
	}
	return g.Kind
}

// Get returns the value of the property named key.
func (g *Generic) Get(key string) (any, bool) {
	for _, p := range g.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// FromMap converts a decoded JSON-like object into a Generic. The "type" entry
// becomes the Kind; other keys are sorted since map iteration order is not
// stable. Nested maps and slices are converted recursively.
func FromMap(m map[string]any) *Generic {
	g := &Generic{}
	if typ, ok := m["type"].(string); ok {
		g.Kind = typ
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "type" && g.Kind != "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	g.Props = make([]Prop, 0, len(keys))
	for _, k := range keys {
		g.Props = append(g.Props, Prop{Key: k, Value: fromAny(m[k])})
	}
	return g
}

func fromAny(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return FromMap(v)
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = FromMap(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = fromAny(e)
		}
		return out
	default:
		return v
	}
}
