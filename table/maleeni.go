package table

import (
	"fmt"

	mlspec "github.com/nihei9/maleeni/spec"
)

// LexTableFromMaleeni builds a LexTable from one mode of a compiled maleeni
// lexical specification. Each DFA state becomes a lex state: bytes sharing a
// successor are grouped into the ranges of a single entry carrying an advance
// action, and an accepting state gets a default accept action for its kind.
//
// maleeni numbers its states from 1 and reserves 0 for the dead state, so
// every state id is shifted down by one; the initial DFA state therefore
// lands on index 0.
func LexTableFromMaleeni(clspec *mlspec.CompiledLexSpec, mode mlspec.LexModeID) (*LexTable, error) {
	if mode.Int() <= 0 || mode.Int() >= len(clspec.Specs) {
		return nil, fmt.Errorf("lex mode %v is out of range", mode)
	}
	modeSpec := clspec.Specs[mode.Int()]
	dfa := modeSpec.DFA

	states := make([]*LexState, 0, dfa.RowCount-1)
	for row := 1; row < dfa.RowCount; row++ {
		state := &LexState{}

		var entries []LexEntry
		entryIdx := map[int]int{}
		for v := 0; v < dfa.ColCount; v++ {
			next := nextState(clspec, dfa, row, v)
			if next == mlspec.StateIDNil.Int() {
				continue
			}
			i, ok := entryIdx[next]
			if !ok {
				i = len(entries)
				entryIdx[next] = i
				entries = append(entries, LexEntry{
					Actions: []LexAction{
						{Type: LexActionTypeAdvance, State: next - 1},
					},
				})
			}
			ranges := entries[i].Chars.Ranges
			if n := len(ranges); n > 0 && int(ranges[n-1].Max) == v-1 {
				ranges[n-1].Max = byte(v)
			} else {
				ranges = append(ranges, Range{Min: byte(v), Max: byte(v)})
			}
			entries[i].Chars.Ranges = ranges
		}
		state.Entries = entries

		if kind := dfa.AcceptingStates[row]; kind != mlspec.LexModeKindIDNil {
			state.DefaultActions = []LexAction{
				{
					Type: LexActionTypeAccept,
					Symbol: Symbol{
						Name: modeSpec.KindNames[kind.Int()].String(),
						Kind: SymbolKindTerminal,
					},
				},
			}
		}

		states = append(states, state)
	}

	return &LexTable{
		States:     states,
		ErrorState: &LexState{},
	}, nil
}

func nextState(clspec *mlspec.CompiledLexSpec, dfa *mlspec.TransitionTable, state, v int) int {
	switch clspec.CompressionLevel {
	case 2:
		tran := dfa.Transition
		rowNum := tran.RowNums[state]
		d := tran.UniqueEntries.RowDisplacement[rowNum]
		if tran.UniqueEntries.Bounds[d+v] != rowNum {
			return tran.UniqueEntries.EmptyValue.Int()
		}
		return tran.UniqueEntries.Entries[d+v].Int()
	case 1:
		tran := dfa.Transition
		return tran.UncompressedUniqueEntries[tran.RowNums[state]*tran.OriginalColCount+v].Int()
	}

	return dfa.UncompressedTransition[state*dfa.ColCount+v].Int()
}
