package main

import (
	"fmt"

	"github.com/eltorocorp/sqlinfer"
	"github.com/spf13/cobra"
)

var flagNamesOnly bool

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "Print the inferred DDL-ready column list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags()
		if err != nil {
			return err
		}

		if flagNamesOnly {
			names, err := sqlinfer.InferColumnNames(args[0], cfg)
			if err != nil {
				return err
			}
			fmt.Println(names)
			return nil
		}

		list, err := sqlinfer.InferColumnList(args[0], cfg)
		if err != nil {
			return err
		}
		fmt.Println(list)
		return nil
	},
}

func init() {
	columnsCmd.Flags().BoolVar(&flagNamesOnly, "names-only", false, "print only column names, for a load statement's target list")
	rootCmd.AddCommand(columnsCmd)
}
