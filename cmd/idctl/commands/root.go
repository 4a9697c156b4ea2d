package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"socialid/src/core/domain"
	"socialid/src/core/usecase"
	"socialid/src/infra/config"
	"socialid/src/infra/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// cli holds the flags and dependencies shared by subcommands.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	scalar  bool
	output  string
	verbose bool

	log *slog.Logger
	ids *usecase.IdentifierService
}

// Execute runs idctl against the process stdio.
func Execute() error {
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds the command tree reading from in and writing to out.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "idctl",
		Short:         "Encode, decode and inspect federated object identifiers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.output)
			}

			level := "warn"
			if c.verbose {
				level = "debug"
			}
			c.log = logger.NewWithWriter(config.LogConfig{Level: level, Format: "plain"}, c.errOut)

			var opts []domain.EncoderOption
			if c.scalar {
				opts = append(opts, domain.WithScalarValues())
			}
			c.ids = usecase.NewIdentifierService(domain.NewEncoder(opts...), nil, nil, c.log)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVar(&c.scalar, "scalar", false, "encode Unicode scalar values instead of UTF-16 code units")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(encodeCmd(c), decodeCmd(c), parseCmd(c), composeCmd(c), groupCmd(c))
	return root
}

// inputs returns args, or the lines of stdin when args is empty.
func (c *cli) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	sc := bufio.NewScanner(c.in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	c.log.Debug("read inputs from stdin", "lines", len(lines))
	return lines, nil
}

// render writes v as json or yaml, or calls text for the text format.
func (c *cli) render(v any, text func(w io.Writer) error) error {
	switch c.output {
	case outputJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(c.out)
	}
}
