package table

import (
	"strings"
	"testing"

	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/stretchr/testify/assert"
)

// funcOracle adapts a predicate function to the MembershipOracle interface
// for tests, mirroring the teacher's "mock" oracle variants.
type funcOracle struct {
	belongs func(w string) bool
}

func (o funcOracle) Ask(w string) (bool, error) {
	return o.belongs(w), nil
}

func endsInA(w string) bool {
	return strings.HasSuffix(w, "a")
}

func TestInit(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})

	assert.NoError(tbl.Init())

	assert.Equal([]string{""}, tbl.S())
	assert.Equal([]string{""}, tbl.E())
	assert.ElementsMatch([]string{"a", "b"}, tbl.R())

	for _, w := range []string{"", "a", "b"} {
		assert.True(tbl.HasRow(w))
		row, err := tbl.Row(w)
		assert.NoError(err)
		assert.Len(row, 1)
	}
}

func TestAddColumnIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())

	assert.NoError(tbl.AddColumn("a"))
	assert.Equal([]string{"", "a"}, tbl.E())

	assert.NoError(tbl.AddColumn("a"))
	assert.Equal([]string{"", "a"}, tbl.E(), "adding an existing column must be a no-op")
}

func TestPromoteMovesFromRToS(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())

	assert.NoError(tbl.Promote("a"))

	assert.Contains(tbl.S(), "a")
	assert.NotContains(tbl.R(), "a")
	// successors of "a" should now be in the boundary
	assert.Contains(tbl.R(), "aa")
	assert.Contains(tbl.R(), "ab")
}

func TestPromoteOnSMemberIsNoOp(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())
	assert.NoError(tbl.Promote("a"))

	assert.NoError(tbl.Promote("a")) // already in S, must not panic
	assert.Equal(1, countOccurrences(tbl.S(), "a"))
}

func TestAddPrefixInsertsNewAccessString(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())

	assert.NoError(tbl.AddPrefix("aba"))
	assert.Contains(tbl.S(), "aba")
	assert.Contains(tbl.R(), "abaa")
	assert.Contains(tbl.R(), "abab")
}

func TestRowUndefinedForUnknownString(t *testing.T) {
	assert := assert.New(t)

	a := alphabet.NewRuneAlphabet([]rune{'a', 'b'})
	tbl := New(a, funcOracle{belongs: endsInA})
	assert.NoError(tbl.Init())

	_, err := tbl.Row("bbbb")
	assert.Error(err)
}

func countOccurrences(sl []string, target string) int {
	n := 0
	for _, s := range sl {
		if s == target {
			n++
		}
	}
	return n
}
