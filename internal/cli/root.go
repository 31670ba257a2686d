// Package cli wires configuration, logging, storage and the TUI behind a
// cobra command tree.
package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/logging"
	"github.com/pdxmph/todo-tui/internal/tasks"
	"github.com/pdxmph/todo-tui/internal/todo"
	"github.com/pdxmph/todo-tui/internal/tui"
	"github.com/spf13/cobra"

	// Registers the sqlite backend
	_ "github.com/pdxmph/todo-tui/internal/db"
)

// Runner runs a bubbletea model until it quits.
type Runner func(m tea.Model) error

// RunProgram runs m full screen.
func RunProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type options struct {
	configPath string
	demo       bool
	backend    string
	run        Runner
}

// NewRootCommand builds the command tree. A nil run uses RunProgram.
func NewRootCommand(run Runner) *cobra.Command {
	if run == nil {
		run = RunProgram
	}
	opts := &options{run: run}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "A small to-do list for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "start with sample tasks")
	cmd.Flags().StringVar(&opts.backend, "backend", "",
		"session store backend ("+strings.Join(tasks.ListBackends(), ", ")+"), overrides the config file")

	cmd.AddCommand(newInitCommand(opts), newCalcCommand())
	return cmd
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.Path()
}

func runTUI(opts *options) error {
	cfg, err := config.LoadFrom(opts.path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.backend != "" {
		cfg.Store.Backend = opts.backend
	}

	log, err := logging.Init(config.AppName, cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.Close()

	backend, err := tasks.Open(cfg.Store.Backend, log)
	if err != nil {
		return err
	}
	defer backend.Close()
	log.WithField("backend", backend.Name()).Info("session store opened")

	list := todo.NewList(backend, log)
	if opts.demo {
		if err := tasks.Seed(list); err != nil {
			return fmt.Errorf("seeding demo tasks: %w", err)
		}
	}

	model, err := tui.New(list, cfg.UI, log)
	if err != nil {
		return err
	}

	if err := opts.run(model); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	log.Info("session ended")
	return nil
}
