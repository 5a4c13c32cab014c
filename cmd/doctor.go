package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nibzard/ticklist/internal/config"
	"github.com/nibzard/ticklist/internal/kv"
	"github.com/nibzard/ticklist/internal/logging"
	"github.com/nibzard/ticklist/internal/state"
	"github.com/nibzard/ticklist/internal/todo"
)

// doctorCommand checks config, store health, and the stored data.
func (c *cli) doctorCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("ticklist doctor", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	verbose := fs.Bool("v", false, "Show where each setting came from")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w := c.stdout
	cfg := cws.Config
	fmt.Fprintln(w, "Ticklist Doctor")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)

	allOK := true

	configFile := cws.ConfigFile()
	if configFile == "" {
		configFile = "(none, using defaults)"
	}
	fmt.Fprintf(w, "Config file: %s\n", configFile)
	if *verbose {
		settings := []struct {
			name  string
			value string
		}{
			{"data_dir", cfg.DataDir},
			{"store", cfg.Store},
			{"store_path", cfg.StorePath},
			{"log_dir", cfg.LogDir},
			{"notify_seconds", strconv.Itoa(cfg.NotifySeconds)},
			{"date_format", cfg.DateFormat},
			{"dark_mode", strconv.FormatBool(cfg.DarkMode)},
			{"log_level", cfg.LogLevel},
			{"log_format", cfg.LogFormat},
			{"log_timestamps", strconv.FormatBool(cfg.LogTimestamps)},
			{"log_caller", strconv.FormatBool(cfg.LogCaller)},
		}
		for _, s := range settings {
			fmt.Fprintf(w, "  %-15s %-30s (%s)\n", s.name, s.value, cws.Sources[s.name])
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Data dir: %s\n", cfg.DataDir)
	if info, err := os.Stat(cfg.DataDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not created yet (created on first save)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ❌ Not a directory")
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Store: %s (%s)\n", cfg.Store, cfg.StorePath)
	if !c.checkStore(cfg) {
		allOK = false
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Logs: %s\n", cfg.LogDir)
	runs, err := logging.FindLogRuns(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ %d session logs\n", len(runs))
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed.")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// checkStore opens the backend and validates every stored key.
func (c *cli) checkStore(cfg *config.Config) bool {
	w := c.stdout
	backend, err := kv.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Open: %v\n", err)
		return false
	}
	defer backend.Close()
	fmt.Fprintln(w, "  ✅ Opened")

	ok := true
	if f, isFile := backend.(*kv.File); isFile && f.Recovered() != "" {
		fmt.Fprintf(w, "  ❌ Store file was unreadable, moved to %s\n", f.Recovered())
		ok = false
	}

	raw, found, err := backend.Get(state.KeyTodos)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  ❌ %s: %v\n", state.KeyTodos, err)
		ok = false
	case !found:
		fmt.Fprintf(w, "  ✅ %s: not saved yet\n", state.KeyTodos)
	default:
		if err := todo.Validate(raw); err != nil {
			fmt.Fprintf(w, "  ❌ %s: %v\n", state.KeyTodos, err)
			ok = false
		} else {
			tasks, _ := todo.Decode(raw)
			remaining, completed := todo.Counts(tasks)
			fmt.Fprintf(w, "  ✅ %s: %d tasks (%d left, %d completed)\n", state.KeyTodos, len(tasks), remaining, completed)
		}
	}

	checks := []struct {
		key   string
		parse func(string) error
	}{
		{state.KeyDarkMode, func(s string) error { _, err := strconv.ParseBool(s); return err }},
		{state.KeyFilter, func(s string) error { _, err := todo.ParseFilter(s); return err }},
	}
	for _, check := range checks {
		raw, found, err := backend.Get(check.key)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  ❌ %s: %v\n", check.key, err)
			ok = false
		case !found:
			fmt.Fprintf(w, "  ✅ %s: not saved yet\n", check.key)
		case check.parse(raw) != nil:
			fmt.Fprintf(w, "  ❌ %s: invalid value %q\n", check.key, raw)
			ok = false
		default:
			fmt.Fprintf(w, "  ✅ %s: %s\n", check.key, raw)
		}
	}
	return ok
}

// logsCommand lists session logs or prints the latest one.
func (c *cli) logsCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ticklist logs", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	list := fs.Bool("l", false, "List session logs instead of printing one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		runs, err := logging.FindLogRuns(c.cfg.LogDir)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(c.stdout, "No log files found.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(c.stdout, "%s  %s  %6d bytes\n", r.RunID, r.ModTime.Format("2006-01-02 15:04:05"), r.Size)
		}
		return nil
	}

	logPath, err := logging.FindLatestLog(c.cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(c.stdout, "No log files found.")
		return nil
	}

	fmt.Fprintf(c.stderr, "Showing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(c.stderr, "(Ctrl+C to stop)")
	}
	return logging.TailLog(ctx, c.stdout, logPath, *n, *follow)
}
