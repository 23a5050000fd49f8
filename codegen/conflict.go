package codegen

import (
	"fmt"
	"strings"

	"github.com/sapling-lang/sapling/table"
)

// A multi-candidate action set is an unresolved conflict that table
// construction chose not to settle. The generator still emits exactly one
// action, chosen under a documented total order so the output does not depend
// on how the producer happened to arrange the candidates:
//
//	accept < shift < reduce;
//	shifts by target state, ascending;
//	reduces by reduced symbol id, then by arity.

func parseActionPriority(t table.ParseActionType) int {
	switch t {
	case table.ParseActionTypeAccept:
		return 0
	case table.ParseActionTypeShift:
		return 1
	default:
		return 2
	}
}

func parseActionLess(a, b table.ParseAction) bool {
	if pa, pb := parseActionPriority(a.Type), parseActionPriority(b.Type); pa != pb {
		return pa < pb
	}
	switch a.Type {
	case table.ParseActionTypeShift:
		return a.State < b.State
	case table.ParseActionTypeReduce:
		if ia, ib := symbolID(a.Symbol), symbolID(b.Symbol); ia != ib {
			return ia < ib
		}
		return len(a.CollapseFlags) < len(b.CollapseFlags)
	}
	return false
}

func firstParseAction(actions []table.ParseAction) table.ParseAction {
	first := actions[0]
	for _, a := range actions[1:] {
		if parseActionLess(a, first) {
			first = a
		}
	}
	return first
}

// Lex candidates follow the same scheme: advance < accept < error, advances
// by target state, accepts by symbol id.

func lexActionPriority(t table.LexActionType) int {
	switch t {
	case table.LexActionTypeAdvance:
		return 0
	case table.LexActionTypeAccept:
		return 1
	default:
		return 2
	}
}

func lexActionLess(a, b table.LexAction) bool {
	if pa, pb := lexActionPriority(a.Type), lexActionPriority(b.Type); pa != pb {
		return pa < pb
	}
	switch a.Type {
	case table.LexActionTypeAdvance:
		return a.State < b.State
	case table.LexActionTypeAccept:
		return symbolID(a.Symbol) < symbolID(b.Symbol)
	}
	return false
}

func firstLexAction(actions []table.LexAction) table.LexAction {
	first := actions[0]
	for _, a := range actions[1:] {
		if lexActionLess(a, first) {
			first = a
		}
	}
	return first
}

// Conflict reports a parse-state entry with more than one candidate action.
type Conflict struct {
	State   int
	Symbol  table.Symbol
	Actions []table.ParseAction
}

func (c Conflict) String() string {
	descs := make([]string, 0, len(c.Actions))
	for _, a := range c.Actions {
		descs = append(descs, describeParseAction(a))
	}
	return fmt.Sprintf("state %v: conflict on %v (%v); %v adopted",
		c.State, symbolID(c.Symbol), strings.Join(descs, ", "),
		describeParseAction(firstParseAction(c.Actions)))
}

func describeParseAction(a table.ParseAction) string {
	switch a.Type {
	case table.ParseActionTypeAccept:
		return "accept"
	case table.ParseActionTypeShift:
		return fmt.Sprintf("shift %v", a.State)
	case table.ParseActionTypeReduce:
		return fmt.Sprintf("reduce %v", symbolID(a.Symbol))
	default:
		return "?"
	}
}

// FindConflicts scans a parse table for entries the generator will resolve
// silently, so a caller can surface them as build-time diagnostics.
// Generation itself never fails on a conflict.
func FindConflicts(parseTable *table.ParseTable) []Conflict {
	var conflicts []Conflict
	for i, state := range parseTable.States {
		for _, e := range state.Entries {
			if len(e.Actions) > 1 {
				conflicts = append(conflicts, Conflict{
					State:   i,
					Symbol:  e.Symbol,
					Actions: e.Actions,
				})
			}
		}
	}
	return conflicts
}
