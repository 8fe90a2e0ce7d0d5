package interp

import (
	"fmt"
	"strings"

	"github.com/bft-labs/setcalc/pkg/bitset"
)

const readSetName = "read_set"

func turnOn(in *Interpreter, call Call) error {
	set, err := in.sets.Resolve(call.Args[0])
	if err != nil {
		return err
	}
	bit, err := parseMember(call.Args[1])
	if err != nil {
		return err
	}
	if !bitset.InRange(bit) {
		return outOfRange(bit)
	}
	set.Set(bit)
	return nil
}

func printSet(in *Interpreter, call Call) error {
	name := strings.TrimSpace(call.Args[0])
	set, err := in.sets.Resolve(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(in.out, "%s: %s\n", name, set.Join(", "))
	return err
}

// setOp writes the combination of x and y into r; r may alias x or y.
type setOp func(r, x, y *bitset.BitSet)

var (
	opUnion     setOp = (*bitset.BitSet).Union
	opIntersect setOp = (*bitset.BitSet).Intersection
	opSub       setOp = (*bitset.BitSet).Difference
	opSymDiff   setOp = (*bitset.BitSet).SymmetricDifference
)

// algebra builds the handler for "<op> A,B,R". All three names are resolved
// before anything is written.
func algebra(op setOp) Handler {
	return func(in *Interpreter, call Call) error {
		operands := make([]*bitset.BitSet, 0, 3)
		for _, name := range call.Args {
			set, err := in.sets.Resolve(name)
			if err != nil {
				return err
			}
			operands = append(operands, set)
		}
		op(operands[2], operands[0], operands[1])
		return nil
	}
}

func stop(in *Interpreter, _ Call) error {
	in.running = false
	return nil
}
