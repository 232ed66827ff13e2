package table

import "fmt"

// FindInconsistency enumerates ordered pairs (s1, s2) ∈ S × S with s1 ≠ s2
// and row(s1) == row(s2), in S's insertion order, and for each pair checks
// every σ ∈ Σ (in the alphabet's declared order) for a mismatch between
// row(s1·σ) and row(s2·σ). On the first mismatch it returns the new
// experiment σ·e, where e is the first column (in E's insertion order) on
// which the two successor rows differ — ε suffices if they differ on the ε
// column, since then the new experiment is simply σ (spec §4.4).
//
// This scans all σ ∈ Σ on every check, not just σ ∉ E: spec.md §9 resolves
// the source's ambiguity on this point explicitly in favor of the full scan.
func (t *Table) FindInconsistency() (newColumn string, ok bool, err error) {
	for i, s1 := range t.s {
		row1, rErr := t.Row(s1)
		if rErr != nil {
			return "", false, rErr
		}

		for j, s2 := range t.s {
			if i == j {
				continue
			}
			row2, rErr := t.Row(s2)
			if rErr != nil {
				return "", false, rErr
			}
			if !row1.Equal(row2) {
				continue
			}

			for _, sigma := range t.alpha.Symbols() {
				succ1 := t.alpha.Concat(s1, sigma)
				succ2 := t.alpha.Concat(s2, sigma)

				succRow1, ok1 := t.f[succ1]
				succRow2, ok2 := t.f[succ2]
				if !ok1 || !ok2 {
					panic(fmt.Sprintf("table: invariant violated: %q or %q (one-symbol extension of S) missing from S ∪ R", succ1, succ2))
				}

				for _, e := range t.e {
					if succRow1[e] != succRow2[e] {
						return t.alpha.Concat(sigma, e), true, nil
					}
				}
			}
		}
	}

	return "", false, nil
}

// IsConsistent reports whether I6 currently holds.
func (t *Table) IsConsistent() (bool, error) {
	_, ok, err := t.FindInconsistency()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// RepairConsistency adds the distinguishing column FindInconsistency
// identifies, per §4.4's repair action. It returns false if the table was
// already consistent.
func (t *Table) RepairConsistency() (repaired bool, err error) {
	col, ok, err := t.FindInconsistency()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := t.AddColumn(col); err != nil {
		return false, err
	}
	return true, nil
}
