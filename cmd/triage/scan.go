package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/dedup"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/output"
	"github.com/hejijunhao/triage/internal/scanner"
	"github.com/hejijunhao/triage/internal/tracker"
)

func newScanCmd() *cobra.Command {
	var full, pretty bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the log once and draft payloads for new errors",
		Long: `Run a single full pass over the configured log file, classify error
lines, and draft a GitHub issue and PR payload for each error not seen
before in this run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Output.Full = cfg.Output.Full || full
			cfg.Output.Pretty = cfg.Output.Pretty || pretty
			return runScan(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Include issue/PR bodies and fix text in reports")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON reports on stdout")

	return cmd
}

func runScan(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	sc := scanner.New(cfg.LogFile, engine.New(taxonomy.Default()), dedup.NewSet())
	integ := tracker.New(cfg.RepoOwner, cfg.RepoName)

	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " Scanning logs for errors..."
	sp.Start()
	errs, err := sc.Scan(ctx)
	sp.Stop()
	if err != nil {
		return err
	}

	if len(errs) == 0 {
		printSuccess("No errors found")
		return nil
	}

	if cfg.MaxBatch > 0 && len(errs) > cfg.MaxBatch {
		printWarn(fmt.Sprintf("Limiting batch to %d of %d errors", cfg.MaxBatch, len(errs)))
		errs = errs[:cfg.MaxBatch]
	}

	if err := draftReports(ctx, integ, out, errs); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("%d error(s) processed", len(errs)))
	return nil
}

// draftReports builds and writes a report for each error, echoing what
// would be created on a live tracker.
func draftReports(ctx context.Context, integ *tracker.Integrator, out output.Output, errs []model.ErrorClassification) error {
	bold := color.New(color.Bold).SprintFunc()
	for _, e := range errs {
		r := integ.Report(e)
		fmt.Fprintf(os.Stderr, "%s %s in %s\n", bold(string(e.Kind)), e.Severity, e.FilePath)
		fmt.Fprintf(os.Stderr, "   issue: would create %q\n", r.Issue.Title)
		fmt.Fprintf(os.Stderr, "   pr:    would open %q on %s\n", r.PR.Title, r.PR.Branch)
		if err := out.Write(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
