package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

const maxTitle = 80

func newListCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.list()
			if plain {
				fmt.Fprintln(a.out, l.String())
				return nil
			}
			p := ui.NewPainter(a.out)
			fmt.Fprintln(a.out, p.Panel(panelLines(p, l, a.cfg.Group)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the plain text rendering")
	return cmd
}

// panelLines builds the header, progress bar and item rows.
func panelLines(p *ui.Painter, l *model.TodoList, group bool) []string {
	t := p.Theme()
	d := l.CountDone()
	pending := l.Size() - d
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.Title(l.Title()),
		p.Fg(t.Success, t.SymDone), d,
		p.Fg(t.Pending, t.SymUnchecked), pending,
		p.Fg(t.Accent, "Total"), l.Size(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, p.Fg(t.Muted, ui.ProgressBar(d, l.Size(), 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(p, l)...)
	} else {
		lines = append(lines, flatLines(p, l)...)
	}
	lines = append(lines, "")
	lines = append(lines, p.Fg(t.Muted, "Tip: edit interactively with `todo tui`"))
	return lines
}

func flatLines(p *ui.Painter, l *model.TodoList) []string {
	t := p.Theme()
	if l.Size() == 0 {
		return []string{p.Fg(t.Muted, "no items")}
	}
	out := make([]string, 0, l.Size())
	i := 0
	l.ForEach(func(it *model.Todo) {
		i++
		box, color := t.BoxUnchecked, t.Muted
		if it.IsDone() {
			box, color = t.BoxChecked, t.Success
		}
		title := []rune(it.Title())
		if len(title) > maxTitle {
			title = append(title[:maxTitle-3], []rune("...")...)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			p.Faint(fmt.Sprintf("%2d.", i)), p.Fg(color, box), string(title)))
	})
	return out
}

func groupLines(p *ui.Painter, l *model.TodoList) []string {
	t := p.Theme()
	section := func(name string, sub *model.TodoList) []string {
		lines := []string{p.Fg(t.Accent, name)}
		if sub.Size() == 0 {
			return append(lines, p.Fg(t.Muted, "(none)"))
		}
		return append(lines, flatLines(p, sub)...)
	}
	lines := section("Pending", l.Pending())
	lines = append(lines, "")
	return append(lines, section("Done", l.Done())...)
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usage(err)
	}
	return nil
}
