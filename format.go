package astdebug

import "fmt"

// SegmentKind identifies a part of a diagnostic message.
type SegmentKind int

const (
	SegmentLabel SegmentKind = iota
	SegmentHeader
	SegmentTree
	SegmentSource
)

// Segment is a single part of a diagnostic message.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Message is the diagnostic produced for one debug call.
type Message struct {
	Label string
	// Path is set when the debugged value was a node path.
	Path   bool
	Tree   string
	Source string
}

// Format builds the message for call from the rendered node tree and the
// reconstructed source.
func Format(call Call, tree, source string, isPath bool) Message {
	return Message{
		Label:  call.Label,
		Path:   isPath,
		Tree:   tree,
		Source: source,
	}
}

// Subject returns "node path" for messages about node paths and "node"
// otherwise.
func (m Message) Subject() string {
	if m.Path {
		return "node path"
	}
	return "node"
}

// Segments returns the parts of m in display order.
func (m Message) Segments() []Segment {
	return []Segment{
		{Kind: SegmentLabel, Text: fmt.Sprintf("[%s]", m.Label)},
		{Kind: SegmentHeader, Text: fmt.Sprintf("Node tree for %s is:", m.Subject())},
		{Kind: SegmentTree, Text: m.Tree},
		{Kind: SegmentHeader, Text: "Node to source:"},
		{Kind: SegmentSource, Text: m.Source},
	}
}
