// Package cmd implements the CLI command structure for ticklist.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/ticklist/internal/appdir"
	"github.com/nibzard/ticklist/internal/config"
	"github.com/nibzard/ticklist/internal/kv"
	"github.com/nibzard/ticklist/internal/logging"
	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the ticklist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ticklist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	subcommand := "tui"
	remaining := fs.Args()
	if len(remaining) > 0 {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	c := &cli{cfg: cfg, stdout: stdout, stderr: stderr}
	switch subcommand {
	case "tui":
		return c.tuiCommand(ctx, remaining)
	case "ls", "list":
		return c.lsCommand(remaining)
	case "add":
		return c.addCommand(remaining)
	case "done":
		return c.doneCommand(remaining, true)
	case "undo":
		return c.doneCommand(remaining, false)
	case "rm", "delete":
		return c.rmCommand(remaining)
	case "edit":
		return c.editCommand(remaining)
	case "priority":
		return c.priorityCommand(remaining)
	case "clear":
		return c.clearCommand(remaining)
	case "theme":
		return c.themeCommand(remaining)
	case "doctor":
		return c.doctorCommand(cws, remaining)
	case "logs":
		return c.logsCommand(ctx, remaining)
	case "init":
		return c.initCommand(remaining)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// cli carries the resolved config and output streams to subcommands.
type cli struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func (c *cli) logOptions() logging.Options {
	return logging.Options{
		Level:      c.cfg.LogLevel,
		Format:     c.cfg.LogFormat,
		Timestamps: c.cfg.LogTimestamps,
		Caller:     c.cfg.LogCaller,
		Prefix:     "ticklist",
	}
}

// stderrLogger logs scripted commands to stderr. Info chatter is
// suppressed unless debug logging was requested.
func (c *cli) stderrLogger() *log.Logger {
	opts := c.logOptions()
	if logging.ParseLevel(opts.Level) > log.DebugLevel {
		opts.Level = "warn"
	}
	return logging.NewLogger(c.stderr, opts)
}

// openStore opens the configured backend and loads persisted state.
func (c *cli) openStore(logger *log.Logger) (*state.Store, func() error, error) {
	backend, err := kv.Open(c.cfg.Store, c.cfg.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", c.cfg.Store, err)
	}
	if f, ok := backend.(*kv.File); ok && f.Recovered() != "" {
		logger.Warn("store file was unreadable and has been moved aside", "backup", f.Recovered())
	}
	logger.Debug("store opened", "kind", c.cfg.Store, "path", c.cfg.StorePath)

	st := state.New(backend,
		state.WithLogger(logger),
		state.WithDateLayout(c.cfg.DateFormat),
		state.WithDarkModeDefault(c.cfg.DarkMode),
	)
	st.Load()
	return st, backend.Close, nil
}

// tuiCommand launches the interactive view with a per-run log file.
func (c *cli) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ticklist tui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	runLog, err := logging.NewRunLogger(c.cfg.LogDir)
	if err != nil {
		return err
	}
	defer runLog.Close()
	logger := runLog.Logger(c.logOptions())
	logger.Info("session started", "version", Version, "store", c.cfg.Store)

	st, closeStore, err := c.openStore(logger)
	if err != nil {
		logger.Error("open store", "err", err)
		return err
	}
	defer closeStore()

	err = ui.RunTUI(ctx, c.cfg, st)
	if err != nil {
		logger.Error("session ended", "err", err)
	} else {
		logger.Info("session ended")
	}
	return err
}

// initCommand writes an example config file into the current directory.
func (c *cli) initCommand(args []string) error {
	fs := flag.NewFlagSet("ticklist init", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	force := fs.Bool("force", false, "Overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := filepath.Join(c.cfg.WorkDir, appdir.ConfigFile)
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(c.stdout, "%s already exists (use -force to overwrite)\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(c.stdout, "Wrote %s\n", path)
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "ticklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "ticklist - a keyboard-driven task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ticklist [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                     Launch the interactive view (default command)")
	fmt.Fprintln(w, "  ls [-filter F] [-json]  List tasks (all|active|completed)")
	fmt.Fprintln(w, "  add [-priority P] TEXT  Add a task")
	fmt.Fprintln(w, "  done ID                 Mark a task complete")
	fmt.Fprintln(w, "  undo ID                 Mark a task incomplete")
	fmt.Fprintln(w, "  edit ID TEXT            Replace a task's text")
	fmt.Fprintln(w, "  priority ID P           Set priority (high|medium|low)")
	fmt.Fprintln(w, "  rm ID                   Delete a task")
	fmt.Fprintln(w, "  clear                   Remove completed tasks")
	fmt.Fprintln(w, "  theme [light|dark|toggle]  Show or set the theme")
	fmt.Fprintln(w, "  doctor                  Check config, store, and stored data")
	fmt.Fprintln(w, "  logs [-f] [-n N] [-l]   Show the latest session log")
	fmt.Fprintln(w, "  init [-force]           Write an example ticklist.toml")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
