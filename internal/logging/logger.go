// Package logging builds the go-kit loggers used by the astdebug binary.
package logging

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New creates a logger writing to w with the given options. Entries below
// the configured level are dropped.
func New(w io.Writer, o Options) (log.Logger, error) {
	var l log.Logger
	switch o.Format {
	case FormatLogfmt, "":
		l = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case FormatJSON:
		l = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, fmt.Errorf("unrecognized log format %q", o.Format)
	}

	opt, err := o.Level.option()
	if err != nil {
		return nil, err
	}
	l = level.NewFilter(l, opt)
	return log.With(l, "ts", log.DefaultTimestampUTC), nil
}
