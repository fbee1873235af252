package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/simulate"
)

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Append test errors to the log file",
		Long: `Append five canned error lines to the configured log file, one per
taxonomy kind, for exercising scan and monitor without a live
application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := simulate.Lines(time.Now())
			if err := simulate.Append(cfg.LogFile, lines); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Added %d test errors to %s", len(lines), cfg.LogFile))
			return nil
		},
	}
}
