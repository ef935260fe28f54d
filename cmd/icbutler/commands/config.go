package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/config"
)

type ConfigInitCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	force bool
}

// NewConfigInitCommand returns the command that writes the effective config to disk.
func NewConfigInitCommand(rootCmd *RootCommand, configCmd *kingpin.CmdClause) *ConfigInitCommand {
	c := &ConfigInitCommand{rootCmd: rootCmd}

	c.Cmd = configCmd.Command("init", "Write the effective configuration to the config file.")
	c.Cmd.Flag("force", "Overwrite an existing file.").BoolVar(&c.force)

	return c
}

func (c ConfigInitCommand) Name() string { return c.Cmd.FullCommand() }

func (c ConfigInitCommand) Run(_ context.Context) error {
	path := c.rootCmd.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !c.force {
		return fmt.Errorf("%w: %s already exists, pass --force to overwrite", ErrUsage, path)
	}
	if err := config.SaveTo(path, c.rootCmd.Config); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.rootCmd.Stdout, path)
	return err
}
