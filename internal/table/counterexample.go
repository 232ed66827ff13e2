package table

// ProcessCounterexample extends the table with a counterexample w and all of
// its non-empty prefixes, per Angluin's canonical policy (spec §4.8, §9):
// for each non-empty prefix p_i, add_prefix is called, which promotes p_i if
// it is already in R, inserts it fresh into S (extending R with its
// σ-successors) if it is in neither S nor R, or does nothing if it is
// already in S.
//
// This guarantees progress on every call: either a new row-equivalence
// class appears in S, or promoting/inserting a prefix exposes a row
// mismatch that the next consistency check turns into a new column.
func (t *Table) ProcessCounterexample(w string) error {
	prefixes, err := t.alpha.Prefixes(w)
	if err != nil {
		return err
	}

	for _, p := range prefixes {
		if err := t.AddPrefix(p); err != nil {
			return err
		}
	}

	return nil
}
