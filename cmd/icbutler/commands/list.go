package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/printer"
	"github.com/jask/icbutler/internal/service"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	match    string
	minScore float64
	format   string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List all tasks.")
	c.Cmd.Flag("match", "Only show tasks similar to this text, best match first.").StringVar(&c.match)
	c.Cmd.Flag("min-score", "Minimum similarity (0-1) used with --match.").Default("0.5").Float64Var(&c.minScore)
	c.Cmd.Flag("format", "Output format (table, json, yaml).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON, printer.FormatYAML)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	if c.minScore < 0 || c.minScore > 1 {
		return fmt.Errorf("%w: --min-score must be between 0 and 1", ErrUsage)
	}
	p, err := printer.New(c.format, c.rootCmd.Stdout)
	if err != nil {
		return err
	}

	store, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Service.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}
	if c.match != "" {
		tasks = service.RankBySimilarity(tasks, c.match, c.minScore)
	}
	return p.PrintList(tasks)
}
