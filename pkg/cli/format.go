package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

func newFormatCommand(g *globalFlags) *cobra.Command {
	var latex bool

	cmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Print the canonical rendering of a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadTree(cmd, g, args[0])
			if err != nil {
				return err
			}
			if latex {
				fmt.Fprintln(cmd.OutOrStdout(), expr.LaTeX(node))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr.Format(node))
			return nil
		},
	}
	cmd.Flags().BoolVar(&latex, "latex", false, "render as a LaTeX math fragment")
	return cmd
}
