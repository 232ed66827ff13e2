package membership

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// outputColumn is the CSV column holding sample strings (spec §6).
const outputColumn = "output"

// epsilonToken is the escaped-ε token used in log files, replaced with the
// alphabet's own ε representation on load (grounded on lstart_from_logs.py's
// language.replace('\epsilon', EPSILON)).
const epsilonToken = `\epsilon`

// LogBacked is the membership oracle variant backed by a finite sample of
// strings read from a log file (spec §4.1): w ∈ L iff w appears in the
// sample. Rows are deduplicated on load.
type LogBacked struct {
	sample map[string]bool
}

// NewLogBacked reads a CSV log from r and builds a LogBacked oracle over its
// "output" column. epsilon is substituted for any cell holding the literal
// \epsilon token, so the resulting set uses the same empty-string
// representation as the alphabet the learner is run with.
func NewLogBacked(r io.Reader, epsilon string) (*LogBacked, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("membership: read log: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("membership: log has no header row")
	}

	colIdx := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == outputColumn {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("membership: log has no %q column", outputColumn)
	}

	sample := make(map[string]bool)
	for _, row := range records[1:] {
		if colIdx >= len(row) {
			continue
		}
		cell := row[colIdx]
		if cell == epsilonToken {
			cell = epsilon
		}
		sample[cell] = true
	}

	return &LogBacked{sample: sample}, nil
}

// Ask reports whether w is among the sample's strings.
func (o *LogBacked) Ask(w string) (bool, error) {
	return o.sample[w], nil
}

// Len returns the number of distinct strings in the sample.
func (o *LogBacked) Len() int {
	return len(o.sample)
}
