package cli

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

func newEvalCommand(g *globalFlags) *cobra.Command {
	vars := bindings{}

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a tree under variable bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadTree(cmd, g, args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"tree": node.String(),
				"vars": vars.String(),
			}).Debug("Evaluating")

			v, err := expr.Eval(node, expr.Vars(vars))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
	addBindingsFlag(cmd.Flags(), vars)
	return cmd
}
