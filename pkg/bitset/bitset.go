// Package bitset implements a fixed-domain set of small integers.
//
// A BitSet holds membership for the integers 0..127 in two 64-bit words.
// The zero value is an empty set and ready to use.
//
// # Aliasing
//
// The binary operations compute every output bit from the same bit position
// of the inputs only. The result may therefore alias either operand:
//
//	a.Union(a, b) // a = a | b
//
// produces exactly what computing into a fresh BitSet and copying would.
package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

// Size is the number of representable members; valid members are 0..Size-1.
const Size = 128

// Max is the largest representable member.
const Max = Size - 1

const words = Size / 64

// BitSet represents a set of integers from [0..127].
type BitSet [words]uint64

// InRange reports whether i can be a member of a BitSet.
func InRange(i int) bool {
	return i >= 0 && i <= Max
}

// Set turns on membership of i. Callers validate i with InRange first;
// an index outside the domain panics by intention.
func (b *BitSet) Set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// Test reports whether i is a member. Indices outside the domain are never members.
func (b *BitSet) Test(i int) bool {
	if !InRange(i) {
		return false
	}
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// Clear empties the set.
func (b *BitSet) Clear() {
	*b = BitSet{}
}

// Union sets b = x | y.
func (b *BitSet) Union(x, y *BitSet) {
	for i := range b {
		b[i] = x[i] | y[i]
	}
}

// Intersection sets b = x & y.
func (b *BitSet) Intersection(x, y *BitSet) {
	for i := range b {
		b[i] = x[i] & y[i]
	}
}

// Difference sets b = x &^ y (members of x that are not in y).
func (b *BitSet) Difference(x, y *BitSet) {
	for i := range b {
		b[i] = x[i] &^ y[i]
	}
}

// SymmetricDifference sets b = x ^ y.
func (b *BitSet) SymmetricDifference(x, y *BitSet) {
	for i := range b {
		b[i] = x[i] ^ y[i]
	}
}

// Count returns the number of members.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (b *BitSet) IsEmpty() bool {
	return b[0]|b[1] == 0
}

// Members returns the members in ascending order, or nil for an empty set.
func (b *BitSet) Members() []int {
	var out []int
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi<<6+tz)
			w &= w - 1
		}
	}
	return out
}

// Join renders the members in ascending order separated by sep.
func (b *BitSet) Join(sep string) string {
	members := b.Members()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, sep)
}
