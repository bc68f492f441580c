package astdebugcli

import (
	"fmt"
	"os"

	"github.com/grafana/astdebug"
	"github.com/grafana/astdebug/internal/logging"
	"github.com/grafana/astdebug/syntax/printer"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration accepted by the print command. Fields
// left out of the file keep their flag defaults.
type Config struct {
	Label    string           `yaml:"label"`
	Options  astdebug.Options `yaml:",inline"`
	Color    *bool            `yaml:"color"`
	Sink     Sink             `yaml:"sink"`
	TabWidth int              `yaml:"tab_width"`
	Quote    Quote            `yaml:"quote"`
	Log      logging.Options  `yaml:"log"`
}

// LoadConfig reads a Config from the YAML file at path.
func LoadConfig(path string) (Config, error) {
	var c Config

	bb, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(bb, &c); err != nil {
		return c, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every setting of c that is out of range.
func (c Config) Validate() error {
	var err error

	if c.Options.Spacing < 0 {
		err = multierror.Append(err, fmt.Errorf("spacing must not be negative, got %d", c.Options.Spacing))
	}
	if c.TabWidth < 0 {
		err = multierror.Append(err, fmt.Errorf("tab_width must not be negative, got %d", c.TabWidth))
	}
	return err
}

// Sink names where diagnostics are written.
type Sink string

const (
	SinkConsole Sink = "console"
	SinkLog     Sink = "log"
)

func (s Sink) String() string { return string(s) }

// Type implements pflag.Value.
func (s *Sink) Type() string { return "sink" }

// Set implements pflag.Value.
func (s *Sink) Set(value string) error { return s.UnmarshalText([]byte(value)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sink) UnmarshalText(text []byte) error {
	switch Sink(text) {
	case SinkConsole, SinkLog:
		*s = Sink(text)
		return nil
	default:
		return fmt.Errorf("unrecognized sink %q, expected %q or %q", string(text), SinkConsole, SinkLog)
	}
}

// Quote names the quote character used in reconstructed source.
type Quote string

const (
	QuoteDouble Quote = "double"
	QuoteSingle Quote = "single"
)

func (q Quote) String() string { return string(q) }

// Type implements pflag.Value.
func (q *Quote) Type() string { return "quote" }

// Set implements pflag.Value.
func (q *Quote) Set(value string) error { return q.UnmarshalText([]byte(value)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quote) UnmarshalText(text []byte) error {
	switch Quote(text) {
	case QuoteDouble, QuoteSingle:
		*q = Quote(text)
		return nil
	default:
		return fmt.Errorf("unrecognized quote %q, expected %q or %q", string(text), QuoteDouble, QuoteSingle)
	}
}

func (q Quote) printerQuote() printer.Quote {
	if q == QuoteSingle {
		return printer.QuoteSingle
	}
	return printer.QuoteDouble
}
