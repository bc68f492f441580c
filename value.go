package astdebug

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

// Kind is the kind of a snapshot Value.
type Kind int

const (
	// Undefined marks an absent value. It is omitted from objects and
	// renders as null in lists.
	Undefined Kind = iota
	// Null is the JSON null.
	Null
	// String is a JSON string.
	String
	// Number is a JSON number. NaN and infinities render as null.
	Number
	// Bool is a JSON boolean.
	Bool
	// Object is a nested Snapshot.
	Object
	// List is an ordered list of values.
	List
)

var kindNames = [...]string{
	Undefined: "undefined",
	Null:      "null",
	String:    "string",
	Number:    "number",
	Bool:      "bool",
	Object:    "object",
	List:      "list",
}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is a single snapshot value. The zero Value is undefined.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  *Snapshot
	list []Value
}

// UndefinedValue returns an undefined Value.
func UndefinedValue() Value { return Value{} }

// NullValue returns a null Value.
func NullValue() Value { return Value{kind: Null} }

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// NumberValue returns a Value holding f.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// ListValue returns a list Value holding elems in order.
func ListValue(elems ...Value) Value { return Value{kind: List, list: elems} }

// ObjectValue returns a Value holding the nested snapshot obj.
func ObjectValue(obj *Snapshot) Value { return Value{kind: Object, obj: obj} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string held by v, or "" when v is not a String.
func (v Value) Text() string { return v.str }

// Float returns the number held by v, or 0 when v is not a Number.
func (v Value) Float() float64 { return v.num }

// Bool returns the boolean held by v, or false when v is not a Bool.
func (v Value) Bool() bool { return v.b }

// Object returns the nested snapshot held by v, or nil when v is not an
// Object.
func (v Value) Object() *Snapshot { return v.obj }

// Len returns the number of elements of a List value.
func (v Value) Len() int { return len(v.list) }

// Index returns the i'th element of a List value.
func (v Value) Index(i int) Value { return v.list[i] }

// Field is a named snapshot value.
type Field struct {
	Name  string
	Value Value
}

// Snapshot is an ordered set of fields captured from a node.
type Snapshot struct {
	fields []Field
}

// Fields returns the fields of s in capture order.
func (s *Snapshot) Fields() []Field { return s.fields }

// Names returns the field names of s in capture order.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the field called name.
func (s *Snapshot) Get(name string) (Value, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func (s *Snapshot) add(name string, v Value) {
	s.fields = append(s.fields, Field{Name: name, Value: v})
}

// MaxSpacing is the widest indentation Text renders.
const MaxSpacing = 10

// Text renders s as JSON indented by spacing spaces per level. Undefined
// fields are omitted and undefined list elements render as null. A spacing of
// zero or less renders compact JSON; spacing above MaxSpacing is clamped.
func (s *Snapshot) Text(spacing int) string {
	spacing = max(0, min(spacing, MaxSpacing))
	api := jsoniter.Config{IndentionStep: spacing, EscapeHTML: false}.Froze()
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	writeSnapshot(stream, s)
	return string(stream.Buffer())
}

// MarshalJSON implements json.Marshaler with the compact form of Text.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return []byte(s.Text(0)), nil
}

func writeSnapshot(stream *jsoniter.Stream, s *Snapshot) {
	var defined []Field
	for _, f := range s.fields {
		if f.Value.kind != Undefined {
			defined = append(defined, f)
		}
	}
	if len(defined) == 0 {
		stream.WriteEmptyObject()
		return
	}

	stream.WriteObjectStart()
	for i, f := range defined {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(f.Name)
		writeValue(stream, f.Value)
	}
	stream.WriteObjectEnd()
}

func writeValue(stream *jsoniter.Stream, v Value) {
	switch v.kind {
	case String:
		stream.WriteString(v.str)
	case Number:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			stream.WriteNil()
			return
		}
		stream.WriteFloat64(v.num)
	case Bool:
		stream.WriteBool(v.b)
	case Object:
		writeSnapshot(stream, v.obj)
	case List:
		if len(v.list) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, elem := range v.list {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, elem)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteNil()
	}
}
