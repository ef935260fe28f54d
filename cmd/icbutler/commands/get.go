package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/printer"
)

type GetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     uint64
	format string
}

// NewGetCommand returns the get command.
func NewGetCommand(rootCmd *RootCommand, app *kingpin.Application) *GetCommand {
	c := &GetCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("get", "Show a single task.")
	c.Cmd.Arg("id", "Task id.").Required().Uint64Var(&c.id)
	c.Cmd.Flag("format", "Output format (table, json, yaml).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON, printer.FormatYAML)

	return c
}

func (c GetCommand) Name() string { return c.Cmd.FullCommand() }

func (c GetCommand) Run(ctx context.Context) error {
	p, err := printer.New(c.format, c.rootCmd.Stdout)
	if err != nil {
		return err
	}

	store, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := store.Service.GetTask(ctx, c.id)
	if err != nil {
		return fmt.Errorf("could not get task %d: %w", c.id, err)
	}
	return p.PrintTask(t)
}
