package codegen

import "strings"

const tab = "    "

func indent(input string) string {
	return tab + strings.ReplaceAll(input, "\n", "\n"+tab)
}

func switchStmt(condition, body string) string {
	return strings.Join([]string{
		"switch (" + condition + ") {",
		indent(body),
		"}",
	}, "\n")
}

func caseClause(value, body string) string {
	return strings.Join([]string{
		"case " + value + ":",
		indent(body),
		"",
	}, "\n")
}

func defaultClause(body string) string {
	return strings.Join([]string{
		"default:",
		indent(body),
	}, "\n")
}

func ifStmt(condition, body string) string {
	return strings.Join([]string{
		"if (" + condition + ")",
		indent(body),
		"",
	}, "\n")
}

// escapeString makes a raw symbol name safe for embedding in a C string
// literal.
func escapeString(input string) string {
	input = strings.ReplaceAll(input, `\`, `\\`)
	return strings.ReplaceAll(input, `"`, `\"`)
}
