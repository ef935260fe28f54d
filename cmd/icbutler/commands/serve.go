package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"

	"github.com/jask/icbutler/app"
	"github.com/jask/icbutler/internal/log"
	"github.com/jask/icbutler/internal/rpc"
)

type ServeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	listen          string
	shutdownTimeout time.Duration
}

// NewServeCommand returns the task store server command.
func NewServeCommand(rootCmd *RootCommand, app *kingpin.Application) *ServeCommand {
	c := &ServeCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("serve", "Serve the local task store over HTTP/JSON.")
	c.Cmd.Flag("listen", "Listen address, defaults to the configured one.").StringVar(&c.listen)
	c.Cmd.Flag("shutdown-timeout", "Time allowed to drain in-flight requests.").Default("5s").DurationVar(&c.shutdownTimeout)

	return c
}

func (c ServeCommand) Name() string { return c.Cmd.FullCommand() }

func (c ServeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger.WithValues(log.Kv{"cmd": "serve"})

	listen := c.listen
	if listen == "" {
		listen = c.rootCmd.Config.Server.Listen
	}

	// The server always owns the local database, even if an endpoint is configured.
	store, err := app.OpenLocalStore(c.rootCmd.Config, logger)
	if err != nil {
		return fmt.Errorf("could not open task store: %w", err)
	}
	defer store.Close()

	handler, err := rpc.NewServer(rpc.ServerConfig{Service: store.Service, Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create rpc server: %w", err)
	}
	srv := &http.Server{
		Addr:              listen,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var g run.Group

	// HTTP server.
	{
		g.Add(
			func() error {
				logger.Infof("Task store listening on %s", listen)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			},
			func(_ error) {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Warningf("Could not shut down cleanly: %s", err)
				}
			},
		)
	}

	// Parent context.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				<-ctx.Done()
				logger.Debugf("Stopping task store")
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}
