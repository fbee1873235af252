package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/scanner"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Write a default config and create the log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup()
		},
	}
}

func runSetup() error {
	if _, err := os.Stat(cfgPath); err == nil {
		printSuccess(fmt.Sprintf("Config already exists: %s", cfgPath))
	} else {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Created config: %s", cfgPath))
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("setup: mkdir %s: %w", dir, err)
		}
	}
	if _, err := os.Stat(cfg.LogFile); os.IsNotExist(err) {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("setup: create %s: %w", cfg.LogFile, err)
		}
		f.Close()
		printSuccess(fmt.Sprintf("Created log file: %s", cfg.LogFile))
	}

	// Probe scan to confirm the pipeline works end to end.
	sc := scanner.New(cfg.LogFile, engine.New(taxonomy.Default()), dedup.NewSet())
	errs, err := sc.Scan(context.Background())
	if err != nil {
		printError(fmt.Sprintf("Probe scan failed: %v", err))
		return err
	}
	printSuccess(fmt.Sprintf("Log monitor working, found %d error(s)", len(errs)))

	fmt.Fprintln(os.Stderr, "\nNext steps:")
	fmt.Fprintln(os.Stderr, "  triage simulate   # add test errors")
	fmt.Fprintln(os.Stderr, "  triage scan       # scan for errors")
	fmt.Fprintln(os.Stderr, "  triage monitor    # start monitoring")
	return nil
}
