package logging

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

// Options is the logging configuration of the astdebug binary.
type Options struct {
	Level  Level  `yaml:"level"`
	Format Format `yaml:"format"`
}

// DefaultOptions holds the default logging settings.
var DefaultOptions = Options{
	Level:  LevelDebug,
	Format: FormatLogfmt,
}

// Level represents how verbose logging should be.
type Level string

// Supported log levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"

	LevelDefault = LevelDebug
)

var (
	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// String implements pflag.Value.
func (ll Level) String() string { return string(ll) }

// Type implements pflag.Value.
func (ll *Level) Type() string { return "level" }

// Set implements pflag.Value.
func (ll *Level) Set(s string) error { return ll.UnmarshalText([]byte(s)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (ll *Level) UnmarshalText(text []byte) error {
	switch Level(text) {
	case "":
		*ll = LevelDefault
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		*ll = Level(text)
	default:
		return fmt.Errorf("unrecognized log level %q", string(text))
	}
	return nil
}

func (ll Level) option() (level.Option, error) {
	switch ll {
	case LevelDebug, "":
		return level.AllowDebug(), nil
	case LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unrecognized log level %q", string(ll))
	}
}

// Format represents a text format to use when writing logs.
type Format string

// Supported log formats.
const (
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"

	FormatDefault = FormatLogfmt
)

// String implements pflag.Value.
func (ff Format) String() string { return string(ff) }

// Type implements pflag.Value.
func (ff *Format) Type() string { return "format" }

// Set implements pflag.Value.
func (ff *Format) Set(s string) error { return ff.UnmarshalText([]byte(s)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (ff *Format) UnmarshalText(text []byte) error {
	switch Format(text) {
	case "":
		*ff = FormatDefault
	case FormatLogfmt, FormatJSON:
		*ff = Format(text)
	default:
		return fmt.Errorf("unrecognized log format %q", string(text))
	}
	return nil
}
