// Package setutil contains small helpers shared by the table and alphabet
// packages. It is intentionally narrow: just the set primitive the table
// uses and the text-list formatter the alphabet uses, not a general-purpose
// collections library.
package setutil

import (
	"sort"
	"strings"
)

// StringSet is a set of strings, implemented as a map[string]bool with
// convenience methods. It does not preserve insertion order; callers that
// need a deterministic iteration order keep a parallel []string, which is
// how table.Table tracks S, R, and E.
type StringSet map[string]bool

// NewStringSet creates a StringSet containing the given initial elements.
func NewStringSet(initial ...string) StringSet {
	s := StringSet{}
	for _, v := range initial {
		s.Add(v)
	}
	return s
}

// Add adds value to the set. Has no effect if value is already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Remove removes value from the set. Has no effect if it is not present.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Elements returns the elements of s in unspecified order.
func (s StringSet) Elements() []string {
	el := make([]string, 0, len(s))
	for k := range s {
		el = append(el, k)
	}
	return el
}

// Sorted returns the elements of s in ascending lexicographic order.
func (s StringSet) Sorted() []string {
	el := s.Elements()
	sort.Strings(el)
	return el
}

// String shows the contents of the set in sorted order so output is
// deterministic across runs.
func (s StringSet) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	sorted := s.Sorted()
	for i, v := range sorted {
		sb.WriteString(v)
		if i+1 < len(sorted) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}
