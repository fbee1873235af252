package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/scanner"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and current error counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(os.Stderr, "\n%s\n\n", cyan("=== triage status ==="))

	fmt.Fprintf(os.Stderr, "Config:      %s\n", cfgPath)
	fmt.Fprintf(os.Stderr, "Repository:  %s/%s\n", cfg.RepoOwner, cfg.RepoName)
	fmt.Fprintf(os.Stderr, "Log file:    %s\n", cfg.LogFile)
	fmt.Fprintf(os.Stderr, "Interval:    %s\n", cfg.Interval())
	fmt.Fprintf(os.Stderr, "Max batch:   %d\n", cfg.MaxBatch)
	fmt.Fprintf(os.Stderr, "Output:      %s\n\n", cfg.Output.Format)

	info, err := os.Stat(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log file:    %s\n", gray("NOT FOUND"))
	} else {
		fmt.Fprintf(os.Stderr, "Log size:    %d bytes\n", info.Size())
	}

	// Probe scan with a fresh signature set; does not affect a running
	// monitor session.
	sc := scanner.New(cfg.LogFile, engine.New(taxonomy.Default()), dedup.NewSet())
	errs, err := sc.Scan(context.Background())
	if err != nil {
		printError(fmt.Sprintf("Scan failed: %v", err))
		return err
	}
	fmt.Fprintf(os.Stderr, "Errors now:  %d\n", len(errs))
	return nil
}
