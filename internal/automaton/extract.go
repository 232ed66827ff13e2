package automaton

import (
	"fmt"

	"github.com/dekarrin/lstar/internal/table"
)

// Extract derives a DFA from a closed, consistent observation table (spec
// §4.6). It does not itself check closedness/consistency; callers (the
// learner driver) are expected to have run table.Table.Close first.
//
// States are the distinct row vectors among S, named by enumerating S in
// insertion order: the first access string encountered for each distinct
// row vector becomes that state's representative, and is assigned the next
// unused integer id (spec §4.6, "Name assignment"). q0 is the state of
// row(ε). F is every state whose representative accepts (f(s, ε) = 1). δ is
// well-defined by consistency (row(s·σ) doesn't depend on which same-row s
// was chosen) and total by closedness (s·σ always has some S-representative).
func Extract(t *table.Table) (*DFA, error) {
	symbols := t.Alphabet().Symbols()
	symIndex := make(map[string]int, len(symbols))
	for i, s := range symbols {
		symIndex[s] = i
	}

	type stateInfo struct {
		access string
		row    table.Row
	}

	var states []stateInfo
	rowToState := map[string]int{}

	for _, s := range t.S() {
		row, err := t.Row(s)
		if err != nil {
			return nil, err
		}
		key := row.Key()
		if _, ok := rowToState[key]; ok {
			continue
		}
		rowToState[key] = len(states)
		states = append(states, stateInfo{access: s, row: row})
	}

	if len(states) == 0 {
		return nil, fmt.Errorf("automaton: cannot extract DFA from a table with an empty S")
	}

	d := &DFA{
		symbols:  symbols,
		symIndex: symIndex,
	}

	for _, st := range states {
		accepts, err := t.Accepts(st.access)
		if err != nil {
			return nil, err
		}
		d.accepting = append(d.accepting, accepts)
		d.row = append(d.row, st.row)
		d.access = append(d.access, st.access)
	}

	epsRow, err := t.Row(t.Alphabet().EmptyString())
	if err != nil {
		return nil, fmt.Errorf("automaton: table has no row for ε: %w", err)
	}
	startState, ok := rowToState[epsRow.Key()]
	if !ok {
		return nil, fmt.Errorf("automaton: internal error: row(ε) not among extracted states")
	}
	d.start = startState

	d.trans = make([][]int, len(states))
	for qIdx, st := range states {
		d.trans[qIdx] = make([]int, len(symbols))
		for symIdx, sigma := range symbols {
			succ := t.Alphabet().Concat(st.access, sigma)
			succRow, err := t.Row(succ)
			if err != nil {
				return nil, fmt.Errorf("automaton: table is not closed: no row for %q: %w", succ, err)
			}
			succState, ok := rowToState[succRow.Key()]
			if !ok {
				return nil, fmt.Errorf("automaton: table is not closed: row of %q matches no access string", succ)
			}
			d.trans[qIdx][symIdx] = succState
		}
	}

	return d, nil
}

