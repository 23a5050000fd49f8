package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/sapling-lang/sapling/table"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print compiled tables in a readable format",
		Example: `  sapling describe grammar-tables.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	tables, err := readCompiledTables(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read the compiled tables: %w", err)
	}

	err = writeDescription(os.Stdout, tables)
	if err != nil {
		return err
	}

	return nil
}

const descriptionTemplate = `# Grammar {{ .Name }}

# Symbols

{{ range .ParseTable.Symbols -}}
{{ printSymbol . }}
{{ end }}
# Parse states
{{ range $i, $s := .ParseTable.States }}
## Parse state {{ $i }}

lex state {{ $s.LexStateID }}
{{ range $s.Entries -}}
{{ printParseEntry . }}
{{ end -}}
{{ end }}
# Lex states
{{ range $i, $s := .LexTable.States }}
## Lex state {{ $i }}

{{ range $s.Entries -}}
{{ printLexEntry . }}
{{ end -}}
{{ printLexDefault $s.DefaultActions }}
{{ end }}`

func writeDescription(w io.Writer, tables *table.CompiledTables) error {
	printChars := func(set table.CharacterSet) string {
		var b strings.Builder
		for i, r := range set.Ranges {
			if i > 0 {
				fmt.Fprintf(&b, " ")
			}
			if r.Min == r.Max {
				fmt.Fprintf(&b, "%q", r.Min)
			} else {
				fmt.Fprintf(&b, "%q-%q", r.Min, r.Max)
			}
		}
		return b.String()
	}

	printParseAction := func(a table.ParseAction) string {
		switch a.Type {
		case table.ParseActionTypeAccept:
			return "accept"
		case table.ParseActionTypeShift:
			return fmt.Sprintf("shift  %4v", a.State)
		case table.ParseActionTypeReduce:
			return fmt.Sprintf("reduce %v (arity %v)", a.Symbol.Name, len(a.CollapseFlags))
		default:
			return "?"
		}
	}

	printLexAction := func(a table.LexAction) string {
		switch a.Type {
		case table.LexActionTypeAdvance:
			return fmt.Sprintf("advance %4v", a.State)
		case table.LexActionTypeAccept:
			return fmt.Sprintf("accept %v", a.Symbol.Name)
		default:
			return "error"
		}
	}

	fns := template.FuncMap{
		"printSymbol": func(sym table.Symbol) string {
			return fmt.Sprintf("%v (%v)", sym.Name, sym.Kind)
		},
		"printParseEntry": func(e table.ParseEntry) string {
			var b strings.Builder
			fmt.Fprintf(&b, "%v on %v", printParseAction(e.Actions[0]), e.Symbol.Name)
			if len(e.Actions) > 1 {
				fmt.Fprintf(&b, " (conflict: %v candidates)", len(e.Actions))
			}
			return b.String()
		},
		"printLexEntry": func(e table.LexEntry) string {
			var action string
			if len(e.Actions) > 0 {
				action = printLexAction(e.Actions[0])
			} else {
				action = "error"
			}
			return fmt.Sprintf("%v on %v", action, printChars(e.Chars))
		},
		"printLexDefault": func(actions []table.LexAction) string {
			if len(actions) == 0 {
				return "error otherwise"
			}
			return fmt.Sprintf("%v otherwise", printLexAction(actions[0]))
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(descriptionTemplate)
	if err != nil {
		return err
	}

	err = tmpl.Execute(w, tables)
	if err != nil {
		return err
	}

	return nil
}
