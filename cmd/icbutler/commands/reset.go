package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/app"
	"github.com/jask/icbutler/internal/service"
)

type ResetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	yes bool
}

// NewResetCommand returns the reset command.
func NewResetCommand(rootCmd *RootCommand, app *kingpin.Application) *ResetCommand {
	c := &ResetCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("reset", "Delete every task in the local database.")
	c.Cmd.Flag("yes", "Confirm the deletion.").BoolVar(&c.yes)

	return c
}

func (c ResetCommand) Name() string { return c.Cmd.FullCommand() }

func (c ResetCommand) Run(ctx context.Context) error {
	if !c.yes {
		return fmt.Errorf("%w: reset deletes every task, pass --yes to confirm", ErrUsage)
	}

	store, err := app.OpenLocalStore(c.rootCmd.Config, c.rootCmd.Logger)
	if err != nil {
		return fmt.Errorf("could not open task store: %w", err)
	}
	defer store.Close()

	m := &service.MaintenanceService{DB: store.DB}
	if err := m.Reset(ctx); err != nil {
		return fmt.Errorf("could not reset tasks: %w", err)
	}
	c.rootCmd.Logger.Infof("All tasks deleted")
	return nil
}
