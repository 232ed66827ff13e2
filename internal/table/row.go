package table

import "strings"

// Row is the bitvector ⟨f(w,e) : e ∈ E⟩ under the table's current column
// order (spec §3). Row equality is exact bit equality; there is no notion of
// approximate or weighted comparison (spec §9, "Numerical semantics").
type Row []bool

// Equal reports whether r and o have the same length and bits.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying the bit pattern of r, suitable
// for use as a map key when grouping access strings into row-equivalence
// classes (spec §4.6).
func (r Row) Key() string {
	b := make([]byte, len(r))
	for i, v := range r {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range r {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i+1 < len(r) {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
