package table

import (
	"strings"
	"testing"

	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/stretchr/testify/assert"
)

// evenZeros is the membership oracle for L = { w : |w|_0 is even } over the
// token alphabet {0,1}, end-to-end scenario 4 of spec.md §8.
func evenZeros(w string) bool {
	if w == alphabet.Epsilon || w == "" {
		return true
	}
	count := 0
	for _, sym := range strings.Fields(w) {
		if sym == "0" {
			count++
		}
	}
	return count%2 == 0
}

func TestCloseReachesFixedPoint(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewTokenAlphabet([]string{"0", "1"})
	tbl := New(a, funcOracle{belongs: evenZeros})
	assert.NoError(tbl.Init())

	assert.NoError(tbl.Close())

	closed, err := tbl.IsClosed()
	assert.NoError(err)
	assert.True(closed)

	consistent, err := tbl.IsConsistent()
	assert.NoError(err)
	assert.True(consistent)

	// L = even number of 0s has exactly 2 Myhill-Nerode classes, so S should
	// stabilize at 2 access strings.
	assert.Len(tbl.S(), 2)
}

func TestCloseIsIdempotentOnceFixed(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewTokenAlphabet([]string{"0", "1"})
	tbl := New(a, funcOracle{belongs: evenZeros})
	assert.NoError(tbl.Init())
	assert.NoError(tbl.Close())

	sBefore := tbl.S()
	eBefore := tbl.E()

	assert.NoError(tbl.Close())

	assert.Equal(sBefore, tbl.S())
	assert.Equal(eBefore, tbl.E())
}

func TestProcessCounterexampleGrowsTable(t *testing.T) {
	assert := assert.New(t)

	// L = { w : |w|_1 is odd } (scenario 6 of spec.md §8). The counterexample
	// "1 1 1" is fed to an already closed table; its prefixes "1 1" and
	// "1 1 1" get promoted into S, and the table must still close to a
	// consistent fixed point afterwards.
	oddOnes := func(w string) bool {
		if w == alphabet.Epsilon || w == "" {
			return false
		}
		count := 0
		for _, sym := range strings.Fields(w) {
			if sym == "1" {
				count++
			}
		}
		return count%2 == 1
	}

	a := alphabet.NewTokenAlphabet([]string{"0", "1"})
	tbl := New(a, funcOracle{belongs: oddOnes})
	assert.NoError(tbl.Init())
	assert.NoError(tbl.Close())
	sizeBefore := len(tbl.S())

	assert.NoError(tbl.ProcessCounterexample("1 1 1"))
	assert.NoError(tbl.Close())
	assert.Greater(len(tbl.S()), sizeBefore)

	closed, err := tbl.IsClosed()
	assert.NoError(err)
	assert.True(closed)

	consistent, err := tbl.IsConsistent()
	assert.NoError(err)
	assert.True(consistent)
}
