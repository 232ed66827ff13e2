package table

// FindUnclosedRow scans R in insertion order and returns the first r ∈ R
// such that no s ∈ S has row(s) == row(r) (spec §4.3). ok is false if the
// table is closed (I5 holds).
func (t *Table) FindUnclosedRow() (witness string, ok bool, err error) {
	sRows := make([]Row, len(t.s))
	for i, s := range t.s {
		row, rErr := t.Row(s)
		if rErr != nil {
			return "", false, rErr
		}
		sRows[i] = row
	}

	for _, r := range t.r {
		rRow, rErr := t.Row(r)
		if rErr != nil {
			return "", false, rErr
		}

		found := false
		for _, sRow := range sRows {
			if sRow.Equal(rRow) {
				found = true
				break
			}
		}
		if !found {
			return r, true, nil
		}
	}

	return "", false, nil
}

// IsClosed reports whether I5 currently holds.
func (t *Table) IsClosed() (bool, error) {
	_, ok, err := t.FindUnclosedRow()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// RepairClosedness promotes the first unclosed row it finds, per §4.3's
// repair action. It returns false if the table was already closed.
func (t *Table) RepairClosedness() (repaired bool, err error) {
	witness, ok, err := t.FindUnclosedRow()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := t.Promote(witness); err != nil {
		return false, err
	}
	return true, nil
}
