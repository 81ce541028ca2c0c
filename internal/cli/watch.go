package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rugi/jeplens/internal/jep"
	"github.com/rugi/jeplens/internal/loader"
)

var watchFilters filterFlags

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Watch a JEP dataset for changes",
		Long: `Monitor a JEP dataset file and reprint the filtered summary whenever
the file is rewritten.

The dataset is reloaded in full on every change; jeplens does not tail the
file. Press Ctrl+C to stop watching.

Examples:
  jeplens watch datos_jeps.csv
  jeplens watch --status Draft datos_jeps.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	watchFilters.register(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	path := resolveDatasetPath(args, cfg)
	opts := watchFilters.loaderOptions(cfg)

	if err := validateFilePath(path); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	criteria := watchFilters.criteria(cmd, cfg)

	// Print the initial state before waiting for changes.
	if err := reloadAndReport(path, opts, criteria); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer cleanupWatcher(watcher)

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", path)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	return runWatchLoop(watcher, path, opts, criteria)
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(watcher *fsnotify.Watcher, path string, opts loader.Options, criteria jep.Criteria) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := reloadAndReport(path, opts, criteria); err != nil {
				// A half-written file is expected mid-save; report and
				// keep watching.
				fmt.Fprintf(os.Stderr, "Warning: reload failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// reloadAndReport reloads the dataset and prints a compact filtered summary
func reloadAndReport(path string, opts loader.Options, criteria jep.Criteria) error {
	ds, err := loader.Load(path, opts)
	if err != nil {
		return err
	}

	filtered := jep.Apply(ds.Records, criteria)
	summary := jep.Summarize(filtered)

	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %d records, %d matching", timestamp, len(ds.Records), summary.Total)
	if top := jep.TopN(summary.TopStatuses, 3); len(top) > 0 {
		fmt.Print(" (")
		for i, count := range top {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%s: %d", count.Key, count.Count)
		}
		fmt.Print(")")
	}
	fmt.Println()

	return nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}
