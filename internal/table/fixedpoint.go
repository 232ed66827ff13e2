package table

// Close repeatedly repairs consistency and then closedness until both hold
// (spec §4.5):
//
//	repeat
//	    while not consistent: repair
//	    while not closed:     repair
//	until both hold
//
// The outer loop terminates because |S| and |E| are each bounded by the
// number of Myhill–Nerode classes of L, and every repair strictly grows one
// of them.
func (t *Table) Close() error {
	for {
		changedConsistency, err := t.repairAllInconsistencies()
		if err != nil {
			return err
		}

		changedClosedness, err := t.repairAllUnclosedRows()
		if err != nil {
			return err
		}

		if !changedConsistency && !changedClosedness {
			return nil
		}
	}
}

func (t *Table) repairAllInconsistencies() (changedAny bool, err error) {
	for {
		repaired, err := t.RepairConsistency()
		if err != nil {
			return changedAny, err
		}
		if !repaired {
			return changedAny, nil
		}
		changedAny = true
	}
}

func (t *Table) repairAllUnclosedRows() (changedAny bool, err error) {
	for {
		repaired, err := t.RepairClosedness()
		if err != nil {
			return changedAny, err
		}
		if !repaired {
			return changedAny, nil
		}
		changedAny = true
	}
}
