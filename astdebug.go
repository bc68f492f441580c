// Package astdebug prints diagnostics for JavaScript AST nodes.
//
// A diagnostic pairs a snapshot of the structurally relevant fields of a node
// with the source text the node renders to:
//
//	astdebug.Debug(node)
//	astdebug.Debug("callee", path)
//	astdebug.Debug("callee", node, astdebug.Options{Spacing: 2})
//
// Debugging never modifies the node. Position metadata, comments and other
// incidental fields are left out of the snapshot.
package astdebug

import (
	"os"

	"github.com/grafana/astdebug/syntax/printer"
)

// Debugger resolves debug calls and emits their diagnostics to a Sink.
type Debugger struct {
	// Sink receives the diagnostics. When nil, they are written to standard
	// error like the package-level Debug.
	Sink Sink
	// Printer configures how nodes are rendered back to source.
	Printer printer.Config
}

// New returns a Debugger that emits to sink.
func New(sink Sink) *Debugger {
	return &Debugger{Sink: sink}
}

// Message resolves args as described by Resolve and builds the diagnostic
// without emitting it.
func (d *Debugger) Message(args ...any) (Message, error) {
	call, err := Resolve(args...)
	if err != nil {
		return Message{}, err
	}

	node, isPath := Unwrap(call.Target)
	tree := TakeSnapshot(node).Text(call.Options.spacing())
	source := Reconstruct(node, d.Printer)
	return Format(call, tree, source, isPath), nil
}

// Debug resolves args as described by Resolve and emits the diagnostic. Only
// resolution errors are returned; the outcome of emitting is not reported.
func (d *Debugger) Debug(args ...any) error {
	msg, err := d.Message(args...)
	if err != nil {
		return err
	}
	sink := d.Sink
	if sink == nil {
		sink = stderrSink
	}
	_ = sink.Emit(msg)
	return nil
}

var (
	stderrSink = &ConsoleSink{Writer: os.Stderr, Color: true}
	std        = New(stderrSink)
)

// Debug emits a diagnostic for a node to standard error. See Resolve for the
// accepted arguments.
func Debug(args ...any) error {
	return std.Debug(args...)
}
