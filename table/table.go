// Package table defines the input contract of the code-generation backend:
// a shift/reduce parsing table and a character-driven lexical table, both
// produced by an upstream table-construction stage and consumed read-only.
//
// Mappings are ordered slices rather than Go maps. The order of entries is
// part of the contract with the generator: branch order in the generated code
// follows entry order, and generation must be byte-stable across runs.
package table

type SymbolKind string

const (
	SymbolKindTerminal    = SymbolKind("terminal")
	SymbolKindNonTerminal = SymbolKind("non-terminal")

	// SymbolKindAuxiliary marks generator-introduced symbols. They are named
	// in a namespace of their own so they can never collide with user-grammar
	// symbols of the same name.
	SymbolKindAuxiliary = SymbolKind("auxiliary")
)

func (k SymbolKind) String() string {
	return string(k)
}

// Symbol identifies a grammar symbol by name and kind.
type Symbol struct {
	Name string     `json:"name"`
	Kind SymbolKind `json:"kind"`
}

func (s Symbol) IsAuxiliary() bool {
	return s.Kind == SymbolKindAuxiliary
}

type ParseActionType string

const (
	ParseActionTypeAccept = ParseActionType("accept")
	ParseActionTypeShift  = ParseActionType("shift")
	ParseActionTypeReduce = ParseActionType("reduce")
)

// ParseAction is one candidate action of a parse state. Which fields are
// meaningful depends on Type: State for a shift, Symbol and CollapseFlags for
// a reduce. CollapseFlags holds one flag per child of the reduced production;
// its length is the production's arity. A set flag tells the runtime to
// splice that child's children into the parent instead of nesting them.
type ParseAction struct {
	Type          ParseActionType `json:"type"`
	State         int             `json:"state,omitempty"`
	Symbol        Symbol          `json:"symbol"`
	CollapseFlags []bool          `json:"collapse_flags,omitempty"`
}

// ParseEntry maps one lookahead symbol to its candidate actions. The
// candidate set is never empty for a mapped symbol; more than one candidate
// means an unresolved conflict.
type ParseEntry struct {
	Symbol  Symbol        `json:"symbol"`
	Actions []ParseAction `json:"actions"`
}

// ParseState is one state of the parse automaton. LexStateID names the
// lexical state that governs the next token scan while the parser sits in
// this state. A symbol without an entry has no transition and falls to the
// state's error path.
type ParseState struct {
	LexStateID int          `json:"lex_state_id"`
	Entries    []ParseEntry `json:"entries"`
}

// ExpectedInputs returns the symbols that have an explicit transition in this
// state. The result feeds diagnostic generation only, never control flow.
func (s *ParseState) ExpectedInputs() []Symbol {
	syms := make([]Symbol, 0, len(s.Entries))
	for _, e := range s.Entries {
		syms = append(syms, e.Symbol)
	}
	return syms
}

// ParseTable is the parse automaton. States are indexed 0..N-1 and state 0 is
// the initial state. Symbols lists every distinct symbol referenced anywhere
// in the table, in first-seen order; the generated symbol enumeration and
// display-name table follow this order.
type ParseTable struct {
	States  []*ParseState `json:"states"`
	Symbols []Symbol      `json:"symbols"`
}

type LexActionType string

const (
	LexActionTypeAdvance = LexActionType("advance")
	LexActionTypeAccept  = LexActionType("accept")
	LexActionTypeError   = LexActionType("error")
)

// LexAction is one candidate action of a lex state: advance to State, accept
// a token of Symbol, or the explicit error action, which carries no payload.
type LexAction struct {
	Type   LexActionType `json:"type"`
	State  int           `json:"state,omitempty"`
	Symbol Symbol        `json:"symbol"`
}

type LexEntry struct {
	Chars   CharacterSet `json:"chars"`
	Actions []LexAction  `json:"actions"`
}

// LexState is one state of the lex automaton. Entries are tried in order and
// the first matching character set wins. DefaultActions apply when no entry
// matches; an empty default set makes the fallback the lexical error path.
type LexState struct {
	Entries        []LexEntry  `json:"entries"`
	DefaultActions []LexAction `json:"default_actions"`
}

// ExpectedInputs returns the character sets that have an explicit transition
// in this state, in entry order.
func (s *LexState) ExpectedInputs() []CharacterSet {
	sets := make([]CharacterSet, 0, len(s.Entries))
	for _, e := range s.Entries {
		sets = append(sets, e.Chars)
	}
	return sets
}

// LexTable is the lex automaton. States are indexed 0..M-1. ErrorState is the
// designated state entered on an unrecoverable lexical condition; it is
// distinct from every indexed state and is dispatched under its own key.
type LexTable struct {
	States     []*LexState `json:"states"`
	ErrorState *LexState   `json:"error_state"`
}

// CompiledTables bundles everything the backend consumes: the grammar name
// (used only to derive the exported descriptor's identifier) and the two
// automata.
type CompiledTables struct {
	Name       string      `json:"name"`
	ParseTable *ParseTable `json:"parse_table"`
	LexTable   *LexTable   `json:"lex_table"`
}
