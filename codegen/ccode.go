// Package codegen turns a compiled parse table and lex table into the C
// source a parser runtime executes. Generation is a pure function of its
// inputs: it never mutates the tables, performs no I/O, and produces
// byte-identical output for identical input.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sapling-lang/sapling/table"
)

// Generate produces the complete C artifact for the named grammar: the
// runtime include, the symbol enumeration, the display-name table, the lexing
// and parsing entry points, and the exported parser descriptor, in that
// order, separated by blank lines and terminated by a newline.
func Generate(name string, parseTable *table.ParseTable, lexTable *table.LexTable) string {
	g := generator{
		name:       name,
		parseTable: parseTable,
		lexTable:   lexTable,
	}
	return g.code()
}

type generator struct {
	name       string
	parseTable *table.ParseTable
	lexTable   *table.LexTable
}

// symbolID returns the C identifier for a symbol. Auxiliary symbols live in
// the sap_aux_sym namespace so a generator-introduced symbol can never
// collide with a user-grammar symbol of the same name.
func symbolID(sym table.Symbol) string {
	if sym.IsAuxiliary() {
		return "sap_aux_sym_" + sym.Name
	}
	return "sap_sym_" + sym.Name
}

// characterCode renders a character for use inside a C char literal. Control
// characters and non-ASCII bytes are escaped so the literal is always
// well-formed.
func characterCode(c byte) string {
	switch c {
	case 0:
		return `\0`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	if c < 0x20 || c > 0x7e {
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string(rune(c))
}

func conditionForCharacterRange(r table.Range) string {
	lookahead := "LOOKAHEAD_CHAR()"
	if r.Min == r.Max {
		return lookahead + " == '" + characterCode(r.Min) + "'"
	}
	return "'" + characterCode(r.Min) + "' <= " + lookahead +
		" && " + lookahead + " <= '" + characterCode(r.Max) + "'"
}

func conditionForCharacterSet(set table.CharacterSet) string {
	if len(set.Ranges) == 1 {
		return conditionForCharacterRange(set.Ranges[0])
	}
	parts := make([]string, 0, len(set.Ranges))
	for _, r := range set.Ranges {
		parts = append(parts, "("+conditionForCharacterRange(r)+")")
	}
	return strings.Join(parts, " ||\n    ")
}

// conditionForCharacterRule compiles a character set into the boolean test
// guarding a lex branch. Whichever of the set and its complement has fewer
// ranges is encoded; the complement form is wrapped in a logical negation, so
// both forms accept exactly the characters of the original set.
func conditionForCharacterRule(rule table.CharacterSet) string {
	if rep, direct := rule.MostCompactRepresentation(); direct {
		return conditionForCharacterSet(rep)
	}
	return "!(" + conditionForCharacterSet(rule.Complement()) + ")"
}

func collapseFlags(flags []bool) string {
	var b strings.Builder
	for i, flag := range flags {
		if i > 0 {
			b.WriteString(", ")
		}
		if flag {
			b.WriteString("1")
		} else {
			b.WriteString("0")
		}
	}
	return b.String()
}

func (g generator) codeForParseActions(actions []table.ParseAction) string {
	action := firstParseAction(actions)
	switch action.Type {
	case table.ParseActionTypeAccept:
		return "ACCEPT_INPUT();"
	case table.ParseActionTypeShift:
		return fmt.Sprintf("SHIFT(%v);", action.State)
	case table.ParseActionTypeReduce:
		return fmt.Sprintf("REDUCE(%v, %v, COLLAPSE({%v}));",
			symbolID(action.Symbol), len(action.CollapseFlags), collapseFlags(action.CollapseFlags))
	default:
		return ""
	}
}

func (g generator) codeForLexActions(actions []table.LexAction) string {
	if len(actions) == 0 {
		return "LEX_ERROR();"
	}
	action := firstLexAction(actions)
	switch action.Type {
	case table.LexActionTypeAdvance:
		return fmt.Sprintf("ADVANCE(%v);", action.State)
	case table.LexActionTypeAccept:
		return fmt.Sprintf("ACCEPT_TOKEN(%v);", symbolID(action.Symbol))
	default:
		// The explicit error action emits nothing. The runtime reads an empty
		// branch body as the error path.
		return ""
	}
}

func (g generator) parseErrorCall(expectedInputs []table.Symbol) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PARSE_ERROR(%v, EXPECT({", len(expectedInputs))
	for i, sym := range expectedInputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(symbolID(sym))
	}
	b.WriteString("}));")
	return b.String()
}

// codeForParseState emits one parse state: a directive pinning the lexer to
// the state's associated lex state, then a dispatch on the lookahead symbol
// with one case per mapped symbol and a diagnostic error call on the default
// path.
func (g generator) codeForParseState(state *table.ParseState) string {
	var body strings.Builder
	for _, e := range state.Entries {
		body.WriteString(caseClause(symbolID(e.Symbol), g.codeForParseActions(e.Actions)))
	}
	body.WriteString(defaultClause(g.parseErrorCall(state.ExpectedInputs())))
	return fmt.Sprintf("SET_LEX_STATE(%v);\n", state.LexStateID) +
		switchStmt("LOOKAHEAD_SYM()", body.String())
}

// switchOnLookaheadChar emits one lex state: a sequential chain of guarded
// branches, one per character-set entry, followed unconditionally by the
// state's default actions. Branch order follows entry order and the first
// matching guard wins.
func (g generator) switchOnLookaheadChar(state *table.LexState) string {
	var b strings.Builder
	for _, e := range state.Entries {
		b.WriteString(ifStmt(conditionForCharacterRule(e.Chars), g.codeForLexActions(e.Actions)))
	}
	b.WriteString(g.codeForLexActions(state.DefaultActions))
	return b.String()
}

func (g generator) switchOnParseState() string {
	var body strings.Builder
	for i, state := range g.parseTable.States {
		body.WriteString(caseClause(strconv.Itoa(i), g.codeForParseState(state)))
	}
	body.WriteString(defaultClause("PARSE_PANIC();"))
	return switchStmt("PARSE_STATE()", body.String())
}

func (g generator) switchOnLexState() string {
	var body strings.Builder
	for i, state := range g.lexTable.States {
		body.WriteString(caseClause(strconv.Itoa(i), g.switchOnLookaheadChar(state)))
	}
	body.WriteString(caseClause("sap_lex_state_error", g.switchOnLookaheadChar(g.lexTable.ErrorState)))
	body.WriteString(defaultClause("LEX_PANIC();"))
	return switchStmt("LEX_STATE()", body.String())
}

func (g generator) symbolEnum() string {
	var b strings.Builder
	b.WriteString("enum {\n")
	for _, sym := range g.parseTable.Symbols {
		b.WriteString(indent(symbolID(sym)) + ",\n")
	}
	b.WriteString("};")
	return b.String()
}

func (g generator) symbolNamesList() string {
	var b strings.Builder
	b.WriteString("SYMBOL_NAMES {\n")
	for _, sym := range g.parseTable.Symbols {
		b.WriteString(indent(`"`+escapeString(sym.Name)) + "\",\n")
	}
	b.WriteString("};")
	return b.String()
}

func (g generator) includes() string {
	return `#include "sapling/parser.h"`
}

func (g generator) lexFunction() string {
	return strings.Join([]string{
		"LEX_FN() {",
		indent("START_LEXER();"),
		indent(g.switchOnLexState()),
		indent("FINISH_LEXER();"),
		"}",
	}, "\n")
}

func (g generator) parseFunction() string {
	return strings.Join([]string{
		"PARSE_FN() {",
		indent("START_PARSER();"),
		indent(g.switchOnParseState()),
		indent("FINISH_PARSER();"),
		"}",
	}, "\n")
}

func (g generator) parseConfig() string {
	return fmt.Sprintf("EXPORT_PARSER(sap_parse_config_%v);", g.name)
}

func (g generator) code() string {
	return strings.Join([]string{
		g.includes(),
		g.symbolEnum(),
		g.symbolNamesList(),
		g.lexFunction(),
		g.parseFunction(),
		g.parseConfig(),
	}, "\n\n") + "\n"
}
