// Package main provides the CLI entry point for sheetinspect.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/output"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetinspect [input.xlsx]",
		Short: "Inspect a spreadsheet and export its first sheet as JSON",
		Long: `sheetinspect prints the sheet names, dimensions, preview rows, column types
and descriptive statistics of a spreadsheet, then writes the first sheet
as a JSON array of row objects.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Input, "input", "i", cfg.Input, "Input spreadsheet path")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output JSON path")
	rootCmd.Flags().IntVar(&cfg.HeadRows, "head", cfg.HeadRows, "Number of preview rows")
	rootCmd.Flags().StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Date encoding in JSON: epoch, iso")
	rootCmd.Flags().BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, cfg Config) error {
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	dateFormat, err := output.ParseDateFormat(cfg.DateFormat)
	if err != nil {
		return err
	}

	opts := sheetinspect.Options{
		HeadRows:   cfg.HeadRows,
		DateFormat: dateFormat,
		Pretty:     cfg.Pretty,
		Logger:     newLogger(cmd.ErrOrStderr(), cfg.LogLevel),
	}

	// Pipeline failures are reported on the console and do not change the exit status.
	out := cmd.OutOrStdout()
	if _, err := sheetinspect.Run(cfg.Input, cfg.Output, opts, out); err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "\n✅ Data was converted to %s.\n", filepath.Base(cfg.Output))
	return nil
}
