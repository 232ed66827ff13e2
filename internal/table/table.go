// Package table implements the observation table engine at the heart of L*:
// the (S, R, E, f) structure (spec §3), its closedness and consistency
// predicates and their repair actions (spec §4.3, §4.4), the fixed-point
// closure loop (spec §4.5), and the counterexample processor (spec §4.8).
//
// The table never talks to the equivalence oracle and never extracts a DFA;
// those are the learner driver's and the automaton package's jobs,
// respectively. It does own the single membership oracle it was built with,
// and is the only thing in the module allowed to call it.
package table

import (
	"fmt"

	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/dekarrin/lstar/internal/setutil"
)

// MembershipOracle answers "is w ∈ L?" for a single string w. It must be
// deterministic and total for the lifetime of a session (spec §4.1).
type MembershipOracle interface {
	Ask(w string) (bool, error)
}

// Table is the observation table T = (S, R, E, f) over a fixed Alphabet,
// backed by a single MembershipOracle. S and E are ordered sets (insertion
// order, §3's "S grows monotonically" / "E grows monotonically"); R is
// unordered for membership purposes but iterated in insertion order wherever
// the spec requires a stable tie-break (§4.3).
type Table struct {
	alpha alphabet.Alphabet
	ask   MembershipOracle

	s      []string          // access strings, prefix-closed, insertion order
	sIndex setutil.StringSet // S membership
	r      []string          // boundary strings, insertion order
	rIndex setutil.StringSet // R membership

	e      []string          // experiments, insertion order
	eIndex setutil.StringSet // E membership

	f map[string]map[string]bool // f[w][e] = w·e ∈ L
}

// New builds an empty Table over alpha, backed by oracle. Init must be
// called before any other operation.
func New(alpha alphabet.Alphabet, oracle MembershipOracle) *Table {
	return &Table{
		alpha:  alpha,
		ask:    oracle,
		sIndex: setutil.NewStringSet(),
		rIndex: setutil.NewStringSet(),
		eIndex: setutil.NewStringSet(),
		f:      map[string]map[string]bool{},
	}
}

// Alphabet returns the alphabet this table was constructed over.
func (t *Table) Alphabet() alphabet.Alphabet {
	return t.alpha
}

// S returns the access strings in insertion order. The returned slice is a
// copy; mutating it has no effect on the table.
func (t *Table) S() []string {
	return append([]string(nil), t.s...)
}

// R returns the boundary strings in insertion order. The returned slice is a
// copy; mutating it has no effect on the table.
func (t *Table) R() []string {
	return append([]string(nil), t.r...)
}

// E returns the experiments in insertion order. The returned slice is a
// copy; mutating it has no effect on the table.
func (t *Table) E() []string {
	return append([]string(nil), t.e...)
}

// HasRow reports whether w ∈ S ∪ R.
func (t *Table) HasRow(w string) bool {
	return t.sIndex.Has(w) || t.rIndex.Has(w)
}

// Row returns row(w) under the current column order. It is an error to call
// Row on a w that is not in S ∪ R (spec §4.2: "undefined if ¬has_row(w)").
func (t *Table) Row(w string) (Row, error) {
	cells, ok := t.f[w]
	if !ok {
		return nil, fmt.Errorf("table: no row for %q: not in S ∪ R", w)
	}
	row := make(Row, len(t.e))
	for i, e := range t.e {
		v, ok := cells[e]
		if !ok {
			panic(fmt.Sprintf("table: invariant I4 violated: f(%q, %q) undefined", w, e))
		}
		row[i] = v
	}
	return row, nil
}

// Accepts returns f(w, ε), i.e. whether w itself is in the hypothesized
// language. w must be in S ∪ R.
func (t *Table) Accepts(w string) (bool, error) {
	cells, ok := t.f[w]
	if !ok {
		return false, fmt.Errorf("table: no row for %q: not in S ∪ R", w)
	}
	v, ok := cells[t.alpha.EmptyString()]
	if !ok {
		panic(fmt.Sprintf("table: invariant I4 violated: f(%q, ε) undefined", w))
	}
	return v, nil
}

// fill fills f(w, e) by querying the membership oracle, short-circuiting if
// already filled (idempotent per spec §4.2).
func (t *Table) fill(w, e string) error {
	cells, ok := t.f[w]
	if !ok {
		cells = map[string]bool{}
		t.f[w] = cells
	}
	if _, ok := cells[e]; ok {
		return nil
	}
	we := t.alpha.Concat(w, e)
	v, err := t.ask.Ask(we)
	if err != nil {
		return fmt.Errorf("table: membership oracle failed on %q: %w", we, err)
	}
	cells[e] = v
	return nil
}

// fillAllColumns fills f(w, e) for every e currently in E.
func (t *Table) fillAllColumns(w string) error {
	for _, e := range t.e {
		if err := t.fill(w, e); err != nil {
			return err
		}
	}
	return nil
}

// fillAllRows fills f(w, e) for every w currently in S ∪ R.
func (t *Table) fillAllRows(e string) error {
	for _, w := range t.s {
		if err := t.fill(w, e); err != nil {
			return err
		}
	}
	for _, w := range t.r {
		if err := t.fill(w, e); err != nil {
			return err
		}
	}
	return nil
}

// addToS inserts w into S if it isn't already there. It does not touch R or
// fill any rows; callers are responsible for that (it exists so add_prefix
// and the initial ε insertion share one invariant-preserving code path).
func (t *Table) addToS(w string) {
	if t.sIndex.Has(w) {
		return
	}
	if t.rIndex.Has(w) {
		panic(fmt.Sprintf("table: invariant I3 violated: %q would be in both S and R", w))
	}
	t.sIndex.Add(w)
	t.s = append(t.s, w)
}

// addToR inserts w into R if it isn't already present in S ∪ R.
func (t *Table) addToR(w string) {
	if t.sIndex.Has(w) || t.rIndex.Has(w) {
		return
	}
	t.rIndex.Add(w)
	t.r = append(t.r, w)
}

// extendBoundary ensures every one-symbol extension of w (w·σ for σ ∈ Σ) is
// present in S ∪ R, adding missing ones to R and filling their rows. Used by
// Init, Promote, and AddPrefix, all of which need "w is now in S, make sure
// its boundary exists" (spec §4.2).
func (t *Table) extendBoundary(w string) error {
	for _, sigma := range t.alpha.Symbols() {
		succ := t.alpha.Concat(w, sigma)
		if t.sIndex.Has(succ) || t.rIndex.Has(succ) {
			continue
		}
		t.addToR(succ)
		if err := t.fillAllColumns(succ); err != nil {
			return err
		}
	}
	return nil
}

// Init sets S ← {ε}, E ← {ε}, R ← Σ, and fills f for all of (S∪R) × E by
// calling the membership oracle (spec §4.2, property P1).
func (t *Table) Init() error {
	if len(t.s) > 0 || len(t.e) > 0 {
		panic("table: Init called on a non-empty table")
	}

	eps := t.alpha.EmptyString()
	t.e = append(t.e, eps)
	t.eIndex.Add(eps)

	t.addToS(eps)
	if err := t.fillAllColumns(eps); err != nil {
		return err
	}

	if err := t.extendBoundary(eps); err != nil {
		return err
	}

	return nil
}

// AddColumn appends e to E (a no-op if already present) and fills f(w, e)
// for every w ∈ S ∪ R (spec §4.2).
func (t *Table) AddColumn(e string) error {
	if t.eIndex.Has(e) {
		return nil
	}
	t.eIndex.Add(e)
	t.e = append(t.e, e)
	return t.fillAllRows(e)
}

// Promote moves w from R into S. For every σ ∈ Σ such that w·σ ∉ S ∪ R, adds
// w·σ to R and fills its row across E. w must be in R (spec §4.2); promoting
// a w already in S is a no-op.
func (t *Table) Promote(w string) error {
	if t.sIndex.Has(w) {
		return nil
	}
	if !t.rIndex.Has(w) {
		panic(fmt.Sprintf("table: Promote precondition violated: %q not in R", w))
	}

	t.rIndex.Remove(w)
	// remove from the r slice, preserving order of the rest
	for i, v := range t.r {
		if v == w {
			t.r = append(t.r[:i], t.r[i+1:]...)
			break
		}
	}

	t.addToS(w)

	return t.extendBoundary(w)
}

// AddPrefix ensures w ∈ S ∪ R, promoting it from R or inserting it fresh into
// S as needed, and extends R by w's σ-successors. Used by the counterexample
// processor for every non-empty prefix of a counterexample, the
// counterexample itself included (spec §4.2, §4.8).
func (t *Table) AddPrefix(w string) error {
	if t.sIndex.Has(w) {
		return nil
	}
	if t.rIndex.Has(w) {
		return t.Promote(w)
	}

	t.addToS(w)
	if err := t.fillAllColumns(w); err != nil {
		return err
	}
	return t.extendBoundary(w)
}
