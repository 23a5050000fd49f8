package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sapling",
	Short: "Generate parsing code from compiled parse and lex tables",
	Long: `sapling provides two features:
- Generates the C source a parser runtime executes, from compiled tables.
- Prints a readable report of the tables.
  This feature is primarily aimed at debugging the tables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
