package domain

// SetName identifies one of the six sets.
type SetName string

const (
	SetA SetName = "SETA"
	SetB SetName = "SETB"
	SetC SetName = "SETC"
	SetD SetName = "SETD"
	SetE SetName = "SETE"
	SetF SetName = "SETF"
)

// SetNames lists every set name in registry order.
var SetNames = [...]SetName{SetA, SetB, SetC, SetD, SetE, SetF}

// Index returns the registry slot for n, or -1 if n is not a set name.
// The comparison is exact and case-sensitive.
func (n SetName) Index() int {
	for i, s := range SetNames {
		if s == n {
			return i
		}
	}
	return -1
}
