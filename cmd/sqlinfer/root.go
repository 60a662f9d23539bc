package main

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlinfer",
		Short:        "sqlinfer",
		SilenceUsage: true,
		Long:         `Infer a SQL schema from a delimited text file by sampling and statistically profiling its columns.`,
	}

	flagStrict    bool
	flagVerbose   bool
	flagReadLines int
	flagHeader    string
	flagSeparator string
)

// Execute runs the CLI entry point.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "append NOT NULL to columns observed with zero nulls")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "mirror diagnostics to the log as they're produced")
	rootCmd.PersistentFlags().IntVar(&flagReadLines, "read-lines", 0, "sample size cap; 0 uses the engine default")
	rootCmd.PersistentFlags().StringVar(&flagHeader, "header", "auto", `header mode: "auto", "present", or "absent"`)
	rootCmd.PersistentFlags().StringVar(&flagSeparator, "separator", "", "force a field separator instead of detecting one")
	return rootCmd.Execute()
}

func init() {}
