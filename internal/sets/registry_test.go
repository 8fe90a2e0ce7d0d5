package sets

import (
	"errors"
	"testing"

	"github.com/bft-labs/setcalc/internal/domain"
)

func TestResolve_KnownNames(t *testing.T) {
	r := New()
	seen := map[any]bool{}
	for _, n := range domain.SetNames {
		b, err := r.Resolve(string(n))
		if err != nil {
			t.Fatalf("Resolve(%s) error: %v", n, err)
		}
		if seen[b] {
			t.Fatalf("Resolve(%s) returned a set shared with another name", n)
		}
		seen[b] = true
		if b != r.Get(n) {
			t.Errorf("Resolve(%s) and Get(%s) disagree", n, n)
		}
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	r := New()
	b, err := r.Resolve(" \tSETC  ")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if b != r.Get(domain.SetC) {
		t.Error("trimmed name resolved to the wrong set")
	}
}

func TestResolve_Undefined(t *testing.T) {
	r := New()
	for _, name := range []string{"seta", "SETG", "", "SET A"} {
		_, err := r.Resolve(name)
		if !errors.Is(err, domain.ErrUndefinedSetName) {
			t.Errorf("Resolve(%q) err = %v, want UndefinedSetName", name, err)
		}
	}

	_, err := r.Resolve("  SETZ ")
	if err == nil || err.Error() != "Undefined set name: SETZ" {
		t.Errorf("Resolve(\"  SETZ \") err = %v, want trimmed name in message", err)
	}
}

func TestNew_AllEmpty(t *testing.T) {
	r := New()
	for _, n := range domain.SetNames {
		if !r.Get(n).IsEmpty() {
			t.Errorf("%s not empty in a new registry", n)
		}
	}
}
