package cli

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/codec"
	"github.com/wildfunctions/symdiff/pkg/expr"
)

func newDiffCommand(g *globalFlags) *cobra.Command {
	var (
		wrt    string
		order  int
		output string
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "diff FILE",
		Short: "Differentiate a tree with respect to one variable",
		Long: `Differentiate a tree symbolically. The result is not simplified, so
constant factors and multiplications by 1.0 or 0.0 are kept as produced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if order < 1 {
				return errors.Errorf("--order must be at least 1, got %d", order)
			}
			node, err := loadTree(cmd, g, args[0])
			if err != nil {
				return err
			}

			d := expr.DiffN(node, wrt, order)
			logrus.WithFields(logrus.Fields{
				"wrt":   wrt,
				"order": order,
				"nodes": d.NodeCount(),
				"depth": d.Depth(),
			}).Debug("Differentiated")

			out := cmd.OutOrStdout()
			if dump {
				pretty.Fprintf(out, "%# v\n", d)
			}

			switch output {
			case "text":
				fmt.Fprintln(out, expr.Format(d))
			case "latex":
				fmt.Fprintln(out, expr.LaTeX(d))
			case "json", "yaml":
				data, err := codec.Marshal(d, codec.Format(output))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", data)
			default:
				return errors.Errorf("unknown --output %q (text, latex, json, yaml)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&wrt, "wrt", "x", "x", "variable to differentiate with respect to")
	cmd.Flags().IntVarP(&order, "order", "n", 1, "number of times to differentiate")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output: text, latex, json, yaml")
	cmd.Flags().BoolVar(&dump, "dump", false, "pretty-print the derivative's node structure")
	return cmd
}
