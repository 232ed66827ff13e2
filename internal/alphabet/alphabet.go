// Package alphabet implements the symbol/string model that the observation
// table engine is parametric over (spec §2 item 1, §3). A session picks one
// concrete Alphabet at construction time; the table, checker, extractor, and
// counterexample processor only ever go through the Alphabet interface, never
// assuming a particular string encoding.
//
// Two implementations are provided, mirroring the two conventions used across
// the L* source this module was distilled from: RuneAlphabet, where symbols
// are single characters and concatenation is juxtaposition ("ab"+"c" ==
// "abc"), and TokenAlphabet, where symbols are space-separated tokens and
// concatenation joins with a space ("0 1"+"1" == "0 1 1").
package alphabet

import (
	"strings"

	"github.com/dekarrin/lstar/internal/setutil"
)

// Epsilon is the conventional display form of the empty string, used by both
// Alphabet implementations' String/error output. It is never itself a valid
// symbol.
const Epsilon = "ε"

// Alphabet is a finite, ordered set of symbols together with the string
// operations (concatenation, decomposition into symbols, prefixes) the
// observation table engine needs. All methods must be pure and total over
// well-formed input; Split and Prefixes are the only ones that can reject
// input.
type Alphabet interface {
	// Symbols returns Σ in a fixed, stable order. Implementations must always
	// return the same order across calls within a session: it is the tie-break
	// order for closedness and consistency scans (spec §4.3, §4.4).
	Symbols() []string

	// EmptyString returns the representation of ε for this alphabet (the
	// identity for Concat).
	EmptyString() string

	// Concat returns w1 · w2.
	Concat(w1, w2 string) string

	// Split decomposes w into its constituent symbols, in order. Returns an
	// error if w contains anything that isn't ε or a sequence of symbols from
	// Σ.
	Split(w string) ([]string, error)

	// Prefixes returns every non-empty prefix of w (w itself included),
	// shortest first, by successively concatenating one more symbol from
	// Split(w). Used by the counterexample processor (spec §4.8).
	Prefixes(w string) ([]string, error)
}

// RuneAlphabet is an Alphabet whose symbols are single characters and whose
// concatenation is ordinary string concatenation. ε is represented as "".
type RuneAlphabet struct {
	symbols []string
	valid   map[string]bool
}

// NewRuneAlphabet builds a RuneAlphabet over the given symbols, which must
// each be exactly one rune. Order is preserved; duplicates are collapsed to
// their first occurrence.
func NewRuneAlphabet(symbols []rune) RuneAlphabet {
	a := RuneAlphabet{valid: map[string]bool{}}
	seen := map[rune]bool{}
	for _, r := range symbols {
		if seen[r] {
			continue
		}
		seen[r] = true
		s := string(r)
		a.symbols = append(a.symbols, s)
		a.valid[s] = true
	}
	return a
}

func (a RuneAlphabet) Symbols() []string    { return append([]string(nil), a.symbols...) }
func (a RuneAlphabet) EmptyString() string  { return "" }
func (a RuneAlphabet) Concat(w1, w2 string) string { return w1 + w2 }

func (a RuneAlphabet) Split(w string) ([]string, error) {
	if w == "" {
		return nil, nil
	}
	syms := make([]string, 0, len(w))
	for _, r := range w {
		s := string(r)
		if !a.valid[s] {
			return nil, &InvalidSymbolError{Symbol: s, Source: w, Valid: a.Symbols()}
		}
		syms = append(syms, s)
	}
	return syms, nil
}

func (a RuneAlphabet) Prefixes(w string) ([]string, error) {
	syms, err := a.Split(w)
	if err != nil {
		return nil, err
	}
	prefixes := make([]string, 0, len(syms))
	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(s)
		prefixes = append(prefixes, sb.String())
	}
	return prefixes, nil
}

// TokenAlphabet is an Alphabet whose symbols are arbitrary space-separated
// tokens. ε is represented as the literal string "ε" so that it can appear
// unambiguously inside join-with-space strings and CSV log cells (spec §6).
type TokenAlphabet struct {
	symbols []string
	valid   map[string]bool
}

// NewTokenAlphabet builds a TokenAlphabet over the given symbols. None of the
// symbols may contain whitespace or equal Epsilon. Order is preserved;
// duplicates are collapsed to their first occurrence.
func NewTokenAlphabet(symbols []string) TokenAlphabet {
	a := TokenAlphabet{valid: map[string]bool{}}
	for _, s := range symbols {
		if a.valid[s] {
			continue
		}
		a.valid[s] = true
		a.symbols = append(a.symbols, s)
	}
	return a
}

func (a TokenAlphabet) Symbols() []string   { return append([]string(nil), a.symbols...) }
func (a TokenAlphabet) EmptyString() string { return Epsilon }

func (a TokenAlphabet) Concat(w1, w2 string) string {
	if w1 == Epsilon || w1 == "" {
		return w2
	}
	if w2 == Epsilon || w2 == "" {
		return w1
	}
	return w1 + " " + w2
}

func (a TokenAlphabet) Split(w string) ([]string, error) {
	if w == "" || w == Epsilon {
		return nil, nil
	}
	parts := strings.Split(w, " ")
	syms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if !a.valid[p] {
			return nil, &InvalidSymbolError{Symbol: p, Source: w, Valid: a.Symbols()}
		}
		syms = append(syms, p)
	}
	return syms, nil
}

func (a TokenAlphabet) Prefixes(w string) ([]string, error) {
	syms, err := a.Split(w)
	if err != nil {
		return nil, err
	}
	prefixes := make([]string, 0, len(syms))
	cur := a.EmptyString()
	for _, s := range syms {
		cur = a.Concat(cur, s)
		prefixes = append(prefixes, cur)
	}
	return prefixes, nil
}

// InvalidSymbolError reports a symbol outside of Σ encountered while
// splitting a string. It backs the InvalidCounterexample error kind (spec
// §7) once wrapped by the caller; the DFA's own unknown-symbol error is a
// separate plain error raised by automaton.DFA.Accepts.
type InvalidSymbolError struct {
	Symbol string
	Source string
	Valid  []string
}

func (e *InvalidSymbolError) Error() string {
	msg := "symbol " + quote(e.Symbol) + " not in alphabet (from string " + quote(e.Source) + ")"
	if len(e.Valid) > 0 {
		quoted := make([]string, len(e.Valid))
		for i, s := range e.Valid {
			quoted[i] = quote(s)
		}
		msg += "; valid symbols are " + setutil.MakeTextList(quoted)
	}
	return msg
}

func quote(s string) string {
	return "\"" + s + "\""
}
