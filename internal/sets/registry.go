// Package sets owns the six named sets the interpreter operates on.
package sets

import (
	"strings"

	"github.com/bft-labs/setcalc/internal/domain"
	"github.com/bft-labs/setcalc/pkg/bitset"
)

// Registry maps the fixed set names to their BitSets. The zero value holds
// six empty sets and is ready to use. There is no dynamic registration.
type Registry struct {
	sets [len(domain.SetNames)]bitset.BitSet
}

// New returns a registry with all sets empty.
func New() *Registry {
	return &Registry{}
}

// Resolve returns the set named name. Surrounding whitespace is trimmed
// before the exact, case-sensitive comparison. Unknown names fail with
// an UndefinedSetName error carrying the trimmed name.
func (r *Registry) Resolve(name string) (*bitset.BitSet, error) {
	name = strings.TrimSpace(name)
	idx := domain.SetName(name).Index()
	if idx < 0 {
		return nil, domain.NewError(domain.KindUndefinedSetName, name)
	}
	return &r.sets[idx], nil
}

// Get returns the set for a known name. It panics on an unknown name.
func (r *Registry) Get(name domain.SetName) *bitset.BitSet {
	return &r.sets[name.Index()]
}
