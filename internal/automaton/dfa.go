// Package automaton implements the DFA extractor (spec §4.6): deriving
// (Q, q0, F, δ) from a closed, consistent observation table by quotienting
// its access strings under row-vector equality.
//
// The DFA type itself is a dense, integer-indexed specialization of the
// teacher repo's generic map-based automaton.DFA[E] (states as a map keyed
// by name, an order counter, AddState/AddTransition/String methods) — per
// the Design Note in spec.md §9, states here are small dense integers and δ
// is a flat Q × Σ table rather than a map, since L* never needs to merge or
// rename states the way LALR construction does.
package automaton

import (
	"fmt"

	"github.com/dekarrin/lstar/internal/table"
	"github.com/dekarrin/rosed"
)

// DFA is a deterministic finite automaton (Q, q0, F, δ) over a fixed,
// ordered alphabet. States are named by their index into the slices below;
// index 0 is not guaranteed to be the start state (Start holds that).
type DFA struct {
	symbols  []string
	symIndex map[string]int

	start     int
	accepting []bool
	trans     [][]int // trans[state][symIndex] = next state

	// row is the observation-table row vector that named each state when it
	// was extracted, kept for debugging/traceability (the value a generic
	// automaton.DFA[E] would carry as E, specialized here to table.Row since
	// extraction never needs any other payload).
	row []table.Row

	// access is the first S-string that was found in each row-equivalence
	// class, used only for rendering and tests.
	access []string
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int {
	return len(d.accepting)
}

// Start returns q0.
func (d *DFA) Start() int {
	return d.start
}

// IsAccepting reports whether state is in F. Panics if state is out of
// range: callers should only ever pass states obtained from this DFA.
func (d *DFA) IsAccepting(state int) bool {
	return d.accepting[state]
}

// Symbols returns Σ in the order used to index δ.
func (d *DFA) Symbols() []string {
	return append([]string(nil), d.symbols...)
}

// Next returns δ(state, symbol) and true, or (0, false) if symbol ∉ Σ or
// state is out of range. δ is total over Σ for every valid state (spec §6),
// so a false result always means bad input, never an undefined transition.
func (d *DFA) Next(state int, symbol string) (int, bool) {
	if state < 0 || state >= len(d.trans) {
		return 0, false
	}
	idx, ok := d.symIndex[symbol]
	if !ok {
		return 0, false
	}
	return d.trans[state][idx], true
}

// Accepts runs w through the DFA from q0 and reports whether it ends in an
// accepting state. symbols must already be split (e.g. via the alphabet
// that produced this DFA); Accepts itself does no alphabet-aware parsing.
func (d *DFA) Accepts(symbols []string) (bool, error) {
	state := d.start
	for _, sym := range symbols {
		next, ok := d.Next(state, sym)
		if !ok {
			return false, fmt.Errorf("automaton: unknown symbol %q", sym)
		}
		state = next
	}
	return d.IsAccepting(state), nil
}

// Validate checks that every state is reachable from q0 and that δ is total
// over Σ for every state, mirroring the teacher automaton package's
// Validate. A DFA built by Extract always satisfies this; Validate exists
// for defense against manually constructed DFAs (e.g. in tests) and against
// future bugs in Extract.
func (d *DFA) Validate() error {
	if d.start < 0 || d.start >= d.NumStates() {
		return fmt.Errorf("automaton: start state %d out of range", d.start)
	}

	reachable := make([]bool, d.NumStates())
	queue := []int{d.start}
	reachable[d.start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range d.symbols {
			next, ok := d.Next(cur, sym)
			if !ok {
				return fmt.Errorf("automaton: state %d has no transition on %q", cur, sym)
			}
			if next < 0 || next >= d.NumStates() {
				return fmt.Errorf("automaton: state %d transitions to out-of-range state %d on %q", cur, next, sym)
			}
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}

	for i, ok := range reachable {
		if !ok {
			return fmt.Errorf("automaton: state %d is unreachable from start", i)
		}
	}

	return nil
}

// String renders the transition table using the same
// rosed.Edit("").InsertTableOpts(...) layout the teacher repo's LALR/SLR/
// CLR(1) parsers use for their action/goto tables.
func (d *DFA) String() string {
	header := append([]string{"state", "access", "accepting"}, d.symbols...)
	data := [][]string{header}

	for q := 0; q < d.NumStates(); q++ {
		name := fmt.Sprintf("q%d", q)
		if q == d.start {
			name = "->" + name
		}
		row := []string{name, d.AccessString(q), fmt.Sprintf("%v", d.accepting[q])}
		for symIdx := range d.symbols {
			row = append(row, fmt.Sprintf("q%d", d.trans[q][symIdx]))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// AccessString returns the observation-table access string that first named
// state q, for diagnostics.
func (d *DFA) AccessString(q int) string {
	return d.access[q]
}
