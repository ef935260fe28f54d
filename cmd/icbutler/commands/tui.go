package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/tui"
)

type TUICommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	noAltScreen bool
}

// NewTUICommand returns the interactive client command.
func NewTUICommand(rootCmd *RootCommand, app *kingpin.Application) *TUICommand {
	c := &TUICommand{rootCmd: rootCmd}

	c.Cmd = app.Command("tui", "Browse and add tasks interactively.").Default()
	c.Cmd.Flag("no-alt-screen", "Render inline instead of on the alternate screen.").BoolVar(&c.noAltScreen)

	return c
}

func (c TUICommand) Name() string { return c.Cmd.FullCommand() }

func (c TUICommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	return tui.Run(ctx, tui.Config{
		Service:   store.Service,
		Title:     c.rootCmd.Config.UI.Title,
		Logger:    c.rootCmd.Logger,
		Input:     c.rootCmd.Stdin,
		Output:    c.rootCmd.Stdout,
		AltScreen: !c.noAltScreen,
	})
}
