// Package cli wires config, logging and the todo list into the todo command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by bad input rather than runtime errors.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error { return &usageError{err: err} }

// env carries the process streams so tests can swap them.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	getenv func(string) string
}

// app is the state shared by subcommands once the root pre-run finished.
type app struct {
	env
	cfg    *config.Config
	logger *log.Logger
}

// list builds the in-memory list seeded from config.
func (a *app) list() *model.TodoList {
	l := a.cfg.NewList()
	a.logger.Debug("seeded list", "title", l.Title(), "size", l.Size())
	return l
}

type rootFlags struct {
	configPath string
	title      string
	theme      string
	group      bool
	verbose    bool
	noColor    bool
}

// Run executes the todo command with args and returns an exit code.
func Run(args []string) int {
	return run(args, env{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, getenv: os.Getenv})
}

func run(args []string, e env) int {
	a := &app{env: e}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(e.in)
	root.SetOut(e.out)
	root.SetErr(e.errOut)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	ui.Fail(e.errOut, err.Error())
	if isUsage(err) {
		p := ui.NewPainter(e.errOut)
		fmt.Fprintln(e.errOut, p.Fg(p.Theme().Muted, "Hint: run `todo --help` for usage"))
		return exitUsage
	}
	return exitError
}

func isUsage(err error) bool {
	var ue *usageError
	if errors.As(err, &ue) || session.IsUsage(err) {
		return true
	}
	// cobra reports unknown subcommands as plain errors
	return strings.HasPrefix(err.Error(), "unknown command")
}

func newRootCmd(a *app) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny in-memory todo list",
		Long: `todo keeps a titled list of todos in memory.

The list is seeded from todo.toml (title and [[items]]) and can be shown,
scripted with session commands, or edited interactively. Nothing is saved.`,
		Example: `  todo ls
  todo ls --group
  printf 'add Buy milk\ndone 1\nls\n' | todo run
  todo tui --theme neon`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usage(errors.New("missing subcommand"))
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default: ./todo.toml, then user config dir)")
	pf.StringVar(&f.title, "title", "", "list title")
	pf.StringVar(&f.theme, "theme", "", "theme: "+strings.Join(ui.Themes, ", "))
	pf.BoolVar(&f.group, "group", false, "group output by pending/done")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colour output")

	root.AddCommand(newListCmd(a), newRunCmd(a), newTUICmd(a))
	return root
}

// setup loads config, applies flags on top, and configures ui and logging.
func (a *app) setup(cmd *cobra.Command, f rootFlags) error {
	cfg, err := config.Load(config.LoadOptions{Path: f.configPath, Getenv: a.getenv})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = f.title
	}
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(f.theme)
	}
	if flags.Changed("group") {
		cfg.Group = f.group
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if f.noColor {
		cfg.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return usage(err)
	}

	ui.SetColorMode(ui.ColorMode(cfg.Color))
	ui.SetTheme(cfg.Theme)

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	logger, err := logging.New(a.errOut, opts)
	if err != nil {
		return usage(err)
	}

	a.cfg, a.logger = cfg, logger
	for _, p := range cfg.Files {
		logger.Debug("loaded config", "path", p)
	}
	return nil
}
