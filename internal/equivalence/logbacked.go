package equivalence

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const outputColumn = "output"
const epsilonToken = `\epsilon`

// Splitter turns a sample string back into a symbol sequence a Hypothesis
// can run. It is the same operation as internal/alphabet.Alphabet.Split,
// narrowed to the one method this package needs.
type Splitter interface {
	Split(w string) ([]string, error)
}

// LogBacked is the equivalence oracle variant that checks a hypothesis
// against a finite sample of strings read from a log file (spec §4.7). It
// is one-sided: it only detects strings the sample says belong to L but the
// hypothesis rejects, which suffices when the sample is L restricted to a
// finite set of strings (Lsample = L ↾ finite).
type LogBacked struct {
	sample   []string
	splitter Splitter
}

// NewLogBacked reads a CSV log from r and builds a LogBacked oracle over its
// "output" column, using splitter to turn each sample string into symbols
// before running it through a hypothesis. epsilon is substituted for any
// cell holding the literal \epsilon token.
func NewLogBacked(r io.Reader, splitter Splitter, epsilon string) (*LogBacked, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("equivalence: read log: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("equivalence: log has no header row")
	}

	colIdx := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == outputColumn {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("equivalence: log has no %q column", outputColumn)
	}

	seen := make(map[string]bool)
	var sample []string
	for _, row := range records[1:] {
		if colIdx >= len(row) {
			continue
		}
		cell := row[colIdx]
		if cell == epsilonToken {
			cell = epsilon
		}
		if seen[cell] {
			continue
		}
		seen[cell] = true
		sample = append(sample, cell)
	}

	return &LogBacked{sample: sample, splitter: splitter}, nil
}

// Check runs h over every sample string in order and returns the first one
// the sample says belongs to L but h rejects.
func (o *LogBacked) Check(h Hypothesis) (Result, error) {
	for _, w := range o.sample {
		symbols, err := o.splitter.Split(w)
		if err != nil {
			return Result{}, fmt.Errorf("equivalence: sample string %q: %w", w, err)
		}

		accepts, err := h.Accepts(symbols)
		if err != nil {
			return Result{}, err
		}
		if !accepts {
			return Result{Ok: false, Counterexample: w}, nil
		}
	}

	return Result{Ok: true}, nil
}
