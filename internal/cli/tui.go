package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the list interactively; prints it on exit",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.list()
			changed, err := tui.Run(l)
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			a.logger.Debug("tui closed", "changed", changed)
			if changed {
				ui.OK(a.errOut, "list edited (not saved)")
			}
			fmt.Fprintln(a.out, l.String())
			return nil
		},
	}
}
