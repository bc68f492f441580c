package astdebug

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Sink receives diagnostic messages.
type Sink interface {
	Emit(Message) error
}

// ConsoleSink writes messages as a single block of text, one segment after
// the other.
type ConsoleSink struct {
	Writer io.Writer
	// Color enables terminal styling of the label and headers.
	Color bool
}

var _ Sink = (*ConsoleSink)(nil)

// Emit implements Sink.
func (s *ConsoleSink) Emit(m Message) error {
	var (
		labelStyle  = color.New(color.Bold, color.FgHiYellow)
		headerStyle = color.New(color.FgGreen)
	)
	for _, c := range []*color.Color{labelStyle, headerStyle} {
		if s.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	segments := m.Segments()
	parts := make([]string, 0, len(segments))
	headers := 0
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentLabel:
			parts = append(parts, labelStyle.Sprint(seg.Text))
		case SegmentHeader:
			// Headers are padded with blank lines.
			if headers == 0 {
				parts = append(parts, headerStyle.Sprint(seg.Text+"\n\n"))
			} else {
				parts = append(parts, headerStyle.Sprint("\n\n\n"+seg.Text+"\n\n"))
			}
			headers++
		default:
			parts = append(parts, seg.Text)
		}
	}

	_, err := fmt.Fprintln(s.Writer, strings.Join(parts, " "))
	return err
}

// LogSink writes each message as one debug level log line.
type LogSink struct {
	Logger log.Logger
}

var _ Sink = (*LogSink)(nil)

// Emit implements Sink.
func (s *LogSink) Emit(m Message) error {
	return level.Debug(s.Logger).Log(
		"msg", "node debug",
		"label", m.Label,
		"node", m.Subject(),
		"tree", m.Tree,
		"source", m.Source,
	)
}
