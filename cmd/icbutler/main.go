package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/jask/icbutler/cmd/icbutler/commands"
	"github.com/jask/icbutler/internal/log"
	loglogrus "github.com/jask/icbutler/internal/log/logrus"
	"github.com/jask/icbutler/internal/task"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitBackend = 3
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("icbutler", "Single-page task client and task store.")
	app.DefaultEnvars()
	app.Version(Version)
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	tuiCmd := commands.NewTUICommand(rootCmd, app)
	serveCmd := commands.NewServeCommand(rootCmd, app)
	addCmd := commands.NewAddCommand(rootCmd, app)
	getCmd := commands.NewGetCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)
	resetCmd := commands.NewResetCommand(rootCmd, app)
	seedCmd := commands.NewSeedCommand(rootCmd, app)

	configCmd := app.Command("config", "Manage the config file.")
	configInitCmd := commands.NewConfigInitCommand(rootCmd, configCmd)

	cmds := map[string]commands.Command{
		tuiCmd.Name():        tuiCmd,
		serveCmd.Name():      serveCmd,
		addCmd.Name():        addCmd,
		getCmd.Name():        getCmd,
		listCmd.Name():       listCmd,
		resetCmd.Name():      resetCmd,
		seedCmd.Name():       seedCmd,
		configInitCmd.Name(): configInitCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("%w: invalid command configuration: %w", commands.ErrUsage, err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	if err := rootCmd.LoadConfig(); err != nil {
		return fmt.Errorf("%w: could not load config: %w", commands.ErrUsage, err)
	}

	// Set logger.
	logger, closeLog, err := getLogger(cmdName, *rootCmd)
	if err != nil {
		return err
	}
	defer closeLog()
	rootCmd.Logger = logger

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger. The terminal client owns stdout
// and stderr, so it logs to the configured file instead.
func getLogger(cmdName string, root commands.RootCommand) (log.Logger, func(), error) {
	noop := func() {}
	if root.NoLog {
		return log.Noop, noop, nil
	}

	logrusLog := logrus.New()
	logrusLog.Out = root.Stderr // By default logger goes to stderr (so it can split stdout prints).
	closeFn := noop
	toFile := cmdName == "tui"
	if toFile {
		path := root.Config.Log.Path
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open log file: %w", err)
		}
		logrusLog.Out = f
		closeFn = func() { _ = f.Close() }
	}
	logrusLogEntry := logrus.NewEntry(logrusLog)

	level, err := logrus.ParseLevel(root.Config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if root.Debug {
		level = logrus.DebugLevel
	}
	logrusLogEntry.Logger.SetLevel(level)

	// Log format.
	switch root.LoggerType {
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !root.NoColor && !toFile,
			DisableColors: root.NoColor || toFile,
		})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger, closeFn, nil
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, commands.ErrUsage),
		errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrEmptyDescription):
		return exitUsage
	default:
		return exitBackend
	}
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(exitCode(err))
}
