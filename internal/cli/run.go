package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/session"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Apply session commands from a file or stdin",
		Long: `Apply session commands, one per line, to the seeded list.

Commands (indexes are 1-based):
  add <title...>        add a todo
  done|undone <n>       mark todo n done / not done
  toggle <n>            flip todo n
  all                   mark every todo done
  rm <n>                remove todo n
  shift|pop             remove the first / last todo
  first|last            show the first / last todo
  show <n>              show todo n
  size                  number of todos
  done?                 true when every todo is done
  ls                    print the list
  filter done|pending   print a filtered copy of the list

Blank lines and lines starting with # are ignored. Execution stops at the
first failing command.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usage(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = a.in
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				r = f
			}
			s := session.New(a.list(), a.out, a.logger)
			if err := s.Run(r); err != nil {
				return err
			}
			a.logger.Debug("session finished", "size", s.List().Size(), "done", s.List().IsDone())
			return nil
		},
	}
}
