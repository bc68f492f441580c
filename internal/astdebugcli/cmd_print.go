package astdebugcli

import (
	"fmt"
	"io"
	"os"

	"github.com/grafana/astdebug"
	"github.com/grafana/astdebug/internal/logging"
	"github.com/grafana/astdebug/syntax/ast"
	"github.com/grafana/astdebug/syntax/printer"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func printCommand() *cobra.Command {
	p := &astdebugPrint{
		label:    astdebug.DefaultLabel,
		sink:     SinkConsole,
		tabWidth: printer.DefaultTabWidth,
		quote:    QuoteDouble,
		log:      logging.DefaultOptions,
	}

	cmd := &cobra.Command{
		Use:   "print [flags] [file]",
		Short: "Print the node tree and source of an ESTree AST",
		Long: `The print command reads an ESTree or Babel AST encoded as JSON and
prints a diagnostic for each top-level statement: the structurally relevant
fields of the node and the source text it renders to.

When file is omitted or "-", the AST is read from standard input. With
--find, a diagnostic is printed for every node of the given type instead.
With --query, a diagnostic is printed for every node selected by a JSONPath
expression evaluated against the input document.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				p.color = isTerminal(cmd.OutOrStdout())
			}
			if p.configFile != "" {
				c, err := LoadConfig(p.configFile)
				if err != nil {
					return err
				}
				p.applyConfig(cmd.Flags(), c)
			}

			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return p.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), file)
		},
	}

	cmd.Flags().StringVar(&p.configFile, "config", p.configFile, "YAML file to load settings from. Flags take precedence over the file.")

	// Debug flags
	cmd.Flags().StringVar(&p.find, "find", p.find, "Only print nodes of this type, such as CallExpression.")
	cmd.Flags().StringVar(&p.query, "query", p.query, "Only print nodes selected by this JSONPath expression, such as $.body[*].expression.")
	cmd.Flags().StringVar(&p.label, "label", p.label, "Label printed with each diagnostic.")
	cmd.Flags().IntVar(&p.spacing, "spacing", p.spacing, fmt.Sprintf("Indentation width of the node tree. 0 uses %d.", astdebug.DefaultSpacing))

	// Output flags
	cmd.Flags().Var(&p.sink, "sink", fmt.Sprintf("Where to write diagnostics. Supported values: %s, %s.", SinkConsole, SinkLog))
	cmd.Flags().BoolVar(&p.color, "color", p.color, "Style console output with terminal colors. Defaults to true when writing to a terminal.")
	cmd.Flags().IntVar(&p.tabWidth, "printer.tab-width", p.tabWidth, "Indentation width of reconstructed source.")
	cmd.Flags().Var(&p.quote, "printer.quote", fmt.Sprintf("Quotes used for strings in reconstructed source. Supported values: %s, %s.", QuoteDouble, QuoteSingle))
	cmd.Flags().Var(&p.log.Level, "log.level", "Minimum level of log entries when --sink=log.")
	cmd.Flags().Var(&p.log.Format, "log.format", "Format of log entries when --sink=log. Supported values: logfmt, json.")

	cmd.MarkFlagsMutuallyExclusive("find", "query")

	return cmd
}

type astdebugPrint struct {
	configFile string

	find    string
	query   string
	label   string
	spacing int

	sink     Sink
	color    bool
	tabWidth int
	quote    Quote
	log      logging.Options
}

// applyConfig copies the settings of c that were not set by flags.
func (p *astdebugPrint) applyConfig(fs *pflag.FlagSet, c Config) {
	if c.Label != "" && !fs.Changed("label") {
		p.label = c.Label
	}
	if c.Options.Spacing != 0 && !fs.Changed("spacing") {
		p.spacing = c.Options.Spacing
	}
	if c.Color != nil && !fs.Changed("color") {
		p.color = *c.Color
	}
	if c.Sink != "" && !fs.Changed("sink") {
		p.sink = c.Sink
	}
	if c.TabWidth != 0 && !fs.Changed("printer.tab-width") {
		p.tabWidth = c.TabWidth
	}
	if c.Quote != "" && !fs.Changed("printer.quote") {
		p.quote = c.Quote
	}
	if c.Log.Level != "" && !fs.Changed("log.level") {
		p.log.Level = c.Log.Level
	}
	if c.Log.Format != "" && !fs.Changed("log.format") {
		p.log.Format = c.Log.Format
	}
}

func (p *astdebugPrint) Run(stdin io.Reader, stdout, stderr io.Writer, file string) error {
	if p.find != "" && p.query != "" {
		return fmt.Errorf("--find and --query cannot be used together")
	}

	data, err := readInput(stdin, file)
	if err != nil {
		return err
	}
	targets, err := p.targets(data)
	if err != nil {
		return err
	}

	sink, err := p.newSink(stdout, stderr)
	if err != nil {
		return err
	}
	d := &astdebug.Debugger{
		Sink:    sink,
		Printer: printer.Config{TabWidth: p.tabWidth, Quote: p.quote.printerQuote()},
	}

	opts := astdebug.Options{Spacing: p.spacing}
	for _, t := range targets {
		msg, err := d.Message(t.label, t.node, opts)
		if err != nil {
			return err
		}
		if err := sink.Emit(msg); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}
	return nil
}

type target struct {
	label string
	node  any
}

// targets selects the nodes of the input to print.
func (p *astdebugPrint) targets(data []byte) ([]target, error) {
	var targets []target

	if p.query != "" {
		nodes, err := queryNodes(data, p.query)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			targets = append(targets, target{label: p.label, node: n})
		}
		return targets, nil
	}

	root, err := ast.Decode(data)
	if err != nil {
		return nil, err
	}

	if p.find == "" {
		for _, n := range topLevel(root) {
			targets = append(targets, target{label: p.label, node: n})
		}
		return targets, nil
	}

	for _, path := range ast.Find(root, p.find) {
		label := p.label
		if s := path.String(); s != "" {
			label = fmt.Sprintf("%s %s", p.label, s)
		}
		targets = append(targets, target{label: label, node: path})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no %s nodes found", p.find)
	}
	return targets, nil
}

func (p *astdebugPrint) newSink(stdout, stderr io.Writer) (astdebug.Sink, error) {
	switch p.sink {
	case SinkConsole, "":
		return &astdebug.ConsoleSink{Writer: stdout, Color: p.color}, nil
	case SinkLog:
		l, err := logging.New(stderr, p.log)
		if err != nil {
			return nil, err
		}
		return &astdebug.LogSink{Logger: l}, nil
	default:
		return nil, fmt.Errorf("unrecognized sink %q", p.sink)
	}
}

// topLevel returns the statements of a program, or root itself when it is
// not a program.
func topLevel(root ast.Node) []ast.Node {
	if f, ok := root.(*ast.File); ok && ast.IsNode(f.Program) {
		root = f.Program
	}
	if prog, ok := root.(*ast.Program); ok {
		var stmts []ast.Node
		for _, s := range prog.Body {
			if ast.IsNode(s) {
				stmts = append(stmts, s)
			}
		}
		return stmts
	}
	return []ast.Node{root}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		bb, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return bb, nil
	}

	bb, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return bb, nil
}
