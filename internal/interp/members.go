package interp

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bft-labs/setcalc/internal/domain"
	"github.com/bft-labs/setcalc/internal/lexer"
	"github.com/bft-labs/setcalc/pkg/bitset"
	"github.com/bft-labs/setcalc/pkg/log"
)

// Sentinel terminates a read_set member list.
const Sentinel = -1

// readSet handles "read_set NAME m1,m2,...,-1".
//
// The target is emptied as soon as its name resolves. Members are staged in a
// scratch set and copied into the target only when the list is complete, so a
// rejected read_set leaves the target empty.
func readSet(in *Interpreter, call Call) error {
	if len(call.Args) == 0 {
		return domain.NewError(domain.KindMissingParameter, "")
	}
	target, err := in.sets.Resolve(call.Args[0])
	if err != nil {
		return err
	}
	target.Clear()

	members := call.Args[1:]
	if len(members) == 0 {
		return domain.NewError(domain.KindMissingMembers, "")
	}

	// one comma between members, plus one if the name is followed by a comma
	required := len(members) - 1
	if lexer.CommaAfter(call.Line.Raw, 1) {
		required++
	}
	if err := checkCommas(required, call.Line.Commas()); err != nil {
		return err
	}

	var staged bitset.BitSet
	for i, tok := range members {
		v, err := parseMember(tok)
		if err != nil {
			return err
		}
		if v == Sentinel {
			if i != len(members)-1 {
				return domain.NewError(domain.KindExtraText, "")
			}
			*target = staged
			in.logger.Debug("set read",
				log.String("set", strings.TrimSpace(call.Args[0])),
				log.Int("members", target.Count()),
			)
			return nil
		}
		if !bitset.InRange(v) {
			return outOfRange(v)
		}
		staged.Set(v)
	}
	return domain.NewError(domain.KindUnterminatedMemberList, "")
}

// parseMember parses a trimmed base-10 integer. The whole token must match;
// an explicit plus sign is rejected. Values too large for an int are reported
// as out of range.
func parseMember(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "+") {
		return 0, domain.NewError(domain.KindMemberNotInteger, tok)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.NewError(domain.KindMemberOutOfRange, tok)
		}
		return 0, domain.NewError(domain.KindMemberNotInteger, tok)
	}
	return v, nil
}

func outOfRange(v int) error {
	return domain.NewError(domain.KindMemberOutOfRange, strconv.Itoa(v))
}
