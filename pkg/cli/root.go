// Package cli implements the symdiff command line.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/codec"
	"github.com/wildfunctions/symdiff/pkg/expr"
)

type globalFlags struct {
	logLevel    string
	inputFormat string
}

// NewRootCommand builds the symdiff command tree.
func NewRootCommand() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "symdiff",
		Short: "Evaluate, format and differentiate expression trees",
		Long: `symdiff works on expression trees stored as JSON or YAML documents.

Trees are built from constants, variables, negation, sums, products and
integer powers. Derivatives are symbolic and left unsimplified.

Examples:
  symdiff eval tree.json --var x=2 --var y=0.5
  symdiff format tree.yaml --latex
  symdiff diff tree.yaml --wrt x --order 2
  symdiff check --pool signed --trees 5000`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(g.logLevel)
			if err != nil {
				return errors.Wrap(err, "invalid --log-level")
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.inputFormat, "input-format", "", "tree document format when reading stdin or an unknown extension (json, yaml)")

	root.AddCommand(
		newEvalCommand(&g),
		newFormatCommand(&g),
		newDiffCommand(&g),
		newCheckCommand(),
	)
	return root
}

// loadTree reads a tree document from path, or from stdin when path is "-".
func loadTree(cmd *cobra.Command, g *globalFlags, path string) (expr.Node, error) {
	format := codec.Format(g.inputFormat)
	if path != "-" && format == "" {
		return codec.ReadFile(path)
	}
	if format == "" {
		format = codec.FormatJSON
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	node, err := codec.Unmarshal(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return node, nil
}
