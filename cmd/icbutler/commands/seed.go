package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jask/icbutler/internal/testdata"
)

type SeedCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	count int
	seed  int64
}

// NewSeedCommand returns the command that adds sample tasks.
func NewSeedCommand(rootCmd *RootCommand, app *kingpin.Application) *SeedCommand {
	c := &SeedCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("seed", "Add sample tasks.")
	c.Cmd.Flag("count", "Number of tasks to add.").Default("10").IntVar(&c.count)
	c.Cmd.Flag("seed", "Random seed, 0 uses the current time.").Int64Var(&c.seed)

	return c
}

func (c SeedCommand) Name() string { return c.Cmd.FullCommand() }

func (c SeedCommand) Run(ctx context.Context) error {
	if c.count <= 0 {
		return fmt.Errorf("%w: --count must be positive", ErrUsage)
	}
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := c.rootCmd.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := testdata.Seed(ctx, store.Service, c.count, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	c.rootCmd.Logger.Infof("Added %d sample tasks", len(ids))
	return nil
}
