package table

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dekarrin/rosed"
)

// String renders the table as a human-readable grid: one row per access or
// boundary string, one column per experiment, using the same
// rosed.Edit("").InsertTableOpts(...) table layout the teacher repo's LALR,
// SLR, and CLR(1) parsers use to print their action/goto tables.
func (t *Table) String() string {
	headers := append([]string{"", ""}, t.e...)
	data := [][]string{headers}

	appendRows := func(kind string, rows []string) {
		for _, w := range rows {
			row, err := t.Row(w)
			if err != nil {
				// should never happen: every w in S ∪ R has a filled row
				panic(err)
			}
			line := make([]string, 0, len(row)+2)
			line = append(line, kind, displayString(w))
			for _, v := range row {
				line = append(line, boolCell(v))
			}
			data = append(data, line)
		}
	}

	appendRows("UPPER", t.s)
	appendRows("LOWER", t.r)

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func displayString(w string) string {
	if w == "" {
		return "ε"
	}
	return w
}

func boolCell(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// WriteCSV persists the table as a debugging artefact (spec §6): a CSV whose
// rows are indexed by (UPPER/LOWER, state-string) and whose columns are the
// experiments. This is not part of the learner's protocol; it exists purely
// so a session can be inspected after the fact.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{"type", "state"}, t.e...)
	if err := cw.Write(header); err != nil {
		return err
	}

	writeRows := func(kind string, rows []string) error {
		for _, s := range rows {
			row, err := t.Row(s)
			if err != nil {
				return err
			}
			record := make([]string, 0, len(row)+2)
			record = append(record, kind, displayString(s))
			for _, v := range row {
				record = append(record, strconv.FormatBool(v))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRows("UPPER", t.s); err != nil {
		return err
	}
	if err := writeRows("LOWER", t.r); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
