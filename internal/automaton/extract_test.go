package automaton

import (
	"testing"

	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/dekarrin/lstar/internal/table"
	"github.com/stretchr/testify/assert"
)

func TestExtractFailsOnUnclosedTable(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	// endsInA is not closed after a bare Init: row("a") has no S-representative yet.
	endsInA := func(w string) bool {
		return len(w) > 0 && w[len(w)-1] == 'a'
	}
	tbl := table.New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())

	_, err := Extract(tbl)
	assert.Error(err)
}

func TestExtractedDFAMatchesOracleOnAllRows(t *testing.T) {
	assert := assert.New(t)

	// spec §8 P4: the extracted DFA's acceptance equals the oracle on every
	// string in S ∪ R · E.
	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	endsInA := func(w string) bool {
		return len(w) > 0 && w[len(w)-1] == 'a'
	}
	tbl := table.New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())
	assert.NoError(tbl.Close())

	d, err := Extract(tbl)
	assert.NoError(err)

	for _, s := range append(tbl.S(), tbl.R()...) {
		for _, e := range tbl.E() {
			w := a.Concat(s, e)
			symbols, err := a.Split(w)
			assert.NoError(err)

			accepts, err := d.Accepts(symbols)
			assert.NoError(err)
			assert.Equal(endsInA(w), accepts, "mismatch on %q", w)
		}
	}
}
