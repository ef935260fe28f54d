package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/printer"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	description []string
	format      string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a task and print its id.")
	c.Cmd.Arg("description", "Task description, words are joined with spaces.").Required().StringsVar(&c.description)
	c.Cmd.Flag("format", "Output format (table, json, yaml).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON, printer.FormatYAML)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	p, err := printer.New(c.format, c.rootCmd.Stdout)
	if err != nil {
		return err
	}

	store, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Service.AddTask(ctx, strings.Join(c.description, " "))
	if err != nil {
		return fmt.Errorf("could not add task: %w", err)
	}
	return p.PrintCreated(id)
}
