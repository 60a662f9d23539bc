package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/eltorocorp/sqlinfer"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a file and print its detected schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags()
		if err != nil {
			return err
		}

		result, err := sqlinfer.ScanFile(args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Printf("separator: %q\n", result.DetectedSeparator)
		fmt.Printf("header present: %v\n", result.HeaderPresent)
		fmt.Printf("estimated rows: %s\n", humanize.Comma(int64(result.EstimatedLines)))
		fmt.Println()
		for _, c := range result.Columns {
			name := c.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("  %-24s %-16s null=%.1f%%\n", name, c.SQLType, c.NullPct*100)
		}

		if len(result.Diagnostics) > 0 {
			fmt.Println()
			fmt.Println(result.Diagnostics.String())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
