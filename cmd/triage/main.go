package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/logging"
	"github.com/hejijunhao/triage/internal/output"
	"github.com/hejijunhao/triage/internal/output/file"
	"github.com/hejijunhao/triage/internal/output/multi"
	"github.com/hejijunhao/triage/internal/output/stdout"
)

var (
	version = "v0.1.0" // overwritten at build time

	cfgPath string
	cfg     config.Config
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "triage",
		Short: "Log error triage and issue drafting",
		Long: `triage scans an application log for known error patterns, deduplicates
repeats, and drafts GitHub issue and pull request payloads with suggested
fixes. Payloads are simulated: written to stdout or a file, never sent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			logging.Setup(cfg.Output.Format, logging.ParseLevel(cfg.LogLevel))
			return nil
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Path to config file")

	rootCmd.AddCommand(
		newSetupCmd(),
		newSimulateCmd(),
		newScanCmd(),
		newMonitorCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("triage version %s\n", version)
		},
	}
}

// buildOutput resolves the configured report destination. Reports go to
// stdout, a file, or both; diagnostics stay on stderr either way.
func buildOutput(cfg config.Config) (output.Output, error) {
	switch cfg.Output.Format {
	case "stdout", "":
		return stdout.New(cfg.Output.Full, cfg.Output.Pretty), nil
	case "file":
		return file.New(cfg.Output.Path, cfg.Output.Full)
	case "both":
		f, err := file.New(cfg.Output.Path, cfg.Output.Full)
		if err != nil {
			return nil, err
		}
		return multi.New(stdout.New(cfg.Output.Full, cfg.Output.Pretty), f), nil
	}
	return nil, fmt.Errorf("unknown output format: %q", cfg.Output.Format)
}

// Status helpers print to stderr so stdout stays clean for reports.

func printSuccess(msg string) {
	color.New(color.FgGreen).Fprintf(os.Stderr, "✓ %s\n", msg)
}

func printWarn(msg string) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "! %s\n", msg)
}

func printError(msg string) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", msg)
}
