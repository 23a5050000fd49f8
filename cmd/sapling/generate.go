package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sapling-lang/sapling/codegen"
	"github.com/sapling-lang/sapling/table"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate C parsing code from compiled tables",
		Example: `  sapling generate grammar-tables.json -o grammar.c`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tables, err := readCompiledTables(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read the compiled tables: %w", err)
	}

	for _, c := range codegen.FindConflicts(tables.ParseTable) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", c)
	}

	src := codegen.Generate(tables.Name, tables.ParseTable, tables.LexTable)

	w := os.Stdout
	if *generateFlags.output != "" {
		f, err := os.OpenFile(*generateFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Failed to create an output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	_, err = io.WriteString(w, src)
	if err != nil {
		return fmt.Errorf("Failed to write the generated code: %v", err)
	}

	return nil
}

func readCompiledTables(path string) (*table.CompiledTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tables := &table.CompiledTables{}
	err = json.Unmarshal(d, tables)
	if err != nil {
		return nil, err
	}

	return tables, nil
}
