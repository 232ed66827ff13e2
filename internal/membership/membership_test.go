package membership

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingOracle struct {
	belongs func(w string) bool
	calls   int
}

func (o *countingOracle) Ask(w string) (bool, error) {
	o.calls++
	return o.belongs(w), nil
}

func TestCacheShortCircuitsOnRepeatedQuery(t *testing.T) {
	assert := assert.New(t)

	inner := &countingOracle{belongs: func(w string) bool { return w == "a" }}
	c := NewCache(inner)

	got, err := c.Ask("a")
	assert.NoError(err)
	assert.True(got)

	got, err = c.Ask("a")
	assert.NoError(err)
	assert.True(got)

	assert.Equal(1, inner.calls, "second Ask of the same string must not reach the wrapped oracle")
	assert.Equal(1, c.Queries())
}

func TestCacheDistinguishesDistinctStrings(t *testing.T) {
	assert := assert.New(t)

	inner := &countingOracle{belongs: func(w string) bool { return w == "a" }}
	c := NewCache(inner)

	_, err := c.Ask("a")
	assert.NoError(err)
	_, err = c.Ask("b")
	assert.NoError(err)

	assert.Equal(2, inner.calls)
	assert.Equal(2, c.Queries())
}

type fixedReader struct {
	answers []string
	i       int
	prompts []string
}

func (r *fixedReader) ReadAnswer(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	a := r.answers[r.i]
	r.i++
	return a, nil
}

func (r *fixedReader) Close() error { return nil }

func TestInteractiveInterpretsYesNo(t *testing.T) {
	assert := assert.New(t)

	r := &fixedReader{answers: []string{"y", "n", "Y", "nope", ""}}
	o := NewInteractive(r)

	for _, want := range []bool{true, false, true, false, false} {
		got, err := o.Ask("whatever")
		assert.NoError(err)
		assert.Equal(want, got)
	}
}

func TestLogBackedLoadsSampleAndSubstitutesEpsilon(t *testing.T) {
	assert := assert.New(t)

	log := "output\n" + epsilonToken + "\na\na\na b\n"
	o, err := NewLogBacked(strings.NewReader(log), "ε")
	assert.NoError(err)

	assert.Equal(3, o.Len(), "duplicate rows must be deduplicated")

	belongs, err := o.Ask("ε")
	assert.NoError(err)
	assert.True(belongs)

	belongs, err = o.Ask("a b")
	assert.NoError(err)
	assert.True(belongs)

	belongs, err = o.Ask("not in sample")
	assert.NoError(err)
	assert.False(belongs)
}

func TestLogBackedRejectsMissingColumn(t *testing.T) {
	assert := assert.New(t)

	_, err := NewLogBacked(strings.NewReader("notoutput\nfoo\n"), "ε")
	assert.Error(err)
}
