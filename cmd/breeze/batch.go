package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"breeze/internal/driver"
	"breeze/internal/ui"
)

var (
	batchStubPath string
	batchJobs     int
	batchUIFlag   string
	batchNoCache  bool
)

func init() {
	batchCmd.Flags().StringVar(&batchStubPath, "stub", "", "stub file (default <dir>/classes.toml)")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	batchCmd.Flags().StringVar(&batchUIFlag, "ui", "auto", "progress UI (auto|on|off)")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "skip the universe snapshot cache")
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Resolve every query file under a directory",
	Long:  `Resolves all *.query.toml files under the directory against its class stub, in parallel`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		stubPath := batchStubPath
		if stubPath == "" {
			stubPath = filepath.Join(dir, "classes.toml")
		}
		withUI, err := useProgressUI(batchUIFlag)
		if err != nil {
			return err
		}

		var cache *driver.SnapshotCache
		if !batchNoCache {
			cache, err = driver.OpenSnapshotCache("breeze")
			if err != nil {
				return fmt.Errorf("open snapshot cache: %w", err)
			}
		}
		opts := driver.Options{Jobs: batchJobs, Cache: cache}

		var results []driver.BatchResult
		if withUI {
			results, err = runBatchWithUI(cmd.Context(), stubPath, dir, opts)
		} else {
			results, err = runBatchPlain(cmd, stubPath, dir, opts)
		}
		if err != nil {
			return err
		}
		return reportBatch(cmd, results)
	},
}

// useProgressUI decides whether batch runs with the live progress view.
// "auto" means a TTY on stdout gets the view and anything piped does not.
func useProgressUI(flag string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("--ui: unknown mode %q, want auto, on or off", flag)
}

// runBatchPlain prints one line per query, path-ordered regardless of
// completion order.
func runBatchPlain(cmd *cobra.Command, stubPath, dir string, opts driver.Options) ([]driver.BatchResult, error) {
	u, err := driver.LoadStub(stubPath, opts.Cache)
	if err != nil {
		return nil, err
	}
	results, err := driver.Run(cmd.Context(), u, dir, opts)
	if err != nil {
		return results, err
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Path, driver.FormatResult(u, res.Result))
	}
	return results, nil
}

type batchOutcome struct {
	results []driver.BatchResult
	err     error
}

// runBatchWithUI drives the resolution in the background and renders progress
// through the Bubble Tea model until the event channel closes.
func runBatchWithUI(ctx context.Context, stubPath, dir string, opts driver.Options) ([]driver.BatchResult, error) {
	files, err := driver.ListQueries(dir)
	if err != nil {
		return nil, err
	}
	u, err := driver.LoadStub(stubPath, opts.Cache)
	if err != nil {
		return nil, err
	}

	events := make(chan ui.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	runOpts := opts
	runOpts.Progress = func(done, total int, res driver.BatchResult) {
		ev := ui.Event{Path: res.Path, Status: ui.StatusDone}
		if res.Err != nil {
			ev.Status = ui.StatusError
			ev.Summary = res.Err.Error()
		} else {
			ev.Summary = driver.FormatResult(u, res.Result)
		}
		events <- ev
	}

	go func() {
		results, err := driver.Run(ctx, u, dir, runOpts)
		outcomeCh <- batchOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("resolving "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

func reportBatch(cmd *cobra.Command, results []driver.BatchResult) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(results))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d queries resolved\n", len(results))
	return nil
}
