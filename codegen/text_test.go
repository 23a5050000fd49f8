package codegen

import "testing"

func TestIndent(t *testing.T) {
	tests := []struct {
		input    string
		indented string
	}{
		{
			input:    "a;",
			indented: "    a;",
		},
		{
			input:    "a;\nb;",
			indented: "    a;\n    b;",
		},
	}
	for _, tt := range tests {
		if s := indent(tt.input); s != tt.indented {
			t.Fatalf("unexpected indentation; want: %q, got: %q", tt.indented, s)
		}
	}
}

func TestSwitchStmt(t *testing.T) {
	body := caseClause("0", "a();") + defaultClause("b();")
	expected := "switch (X()) {\n    case 0:\n        a();\n    default:\n        b();\n}"
	if s := switchStmt("X()", body); s != expected {
		t.Fatalf("unexpected switch statement; want: %q, got: %q", expected, s)
	}
}

func TestIfStmt(t *testing.T) {
	expected := "if (c)\n    a();\n"
	if s := ifStmt("c", "a();"); s != expected {
		t.Fatalf("unexpected if statement; want: %q, got: %q", expected, s)
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		input   string
		escaped string
	}{
		{input: `plain`, escaped: `plain`},
		{input: `"`, escaped: `\"`},
		{input: `\"`, escaped: `\\\"`},
	}
	for _, tt := range tests {
		if s := escapeString(tt.input); s != tt.escaped {
			t.Fatalf("unexpected escape; want: %q, got: %q", tt.escaped, s)
		}
	}
}
