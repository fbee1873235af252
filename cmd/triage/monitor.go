package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/scanner"
	"github.com/hejijunhao/triage/internal/tracker"
)

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Continuously rescan the log on an interval",
		Long: `Rescan the whole log file every monitor_interval seconds, drafting
payloads only for errors whose signature has not been seen during this
session. Stop with Ctrl+C; cancellation takes effect between scans.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonitor()
		},
	}
}

func runMonitor() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	sc := scanner.New(cfg.LogFile, engine.New(taxonomy.Default()), dedup.NewSet())
	integ := tracker.New(cfg.RepoOwner, cfg.RepoName)
	interval := cfg.Interval()

	fmt.Fprintf(os.Stderr, "triage: monitoring %s every %s (Ctrl+C to stop)\n", cfg.LogFile, interval)

	err = sc.Monitor(ctx, interval, func(batch []model.ErrorClassification) error {
		if len(batch) == 0 {
			slog.Debug("scan clean", "seen", sc.SeenCount())
			return nil
		}
		if cfg.MaxBatch > 0 && len(batch) > cfg.MaxBatch {
			printWarn(fmt.Sprintf("Limiting batch to %d of %d errors", cfg.MaxBatch, len(batch)))
			batch = batch[:cfg.MaxBatch]
		}
		if err := draftReports(ctx, integ, out, batch); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("%d new error(s) drafted", len(batch)))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	printSuccess("Monitoring stopped")
	return nil
}
