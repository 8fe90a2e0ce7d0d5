package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/setcalc/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "print_set SETA", "print_set SETA"},
		{"collapses runs", "print_set  \t  SETA", "print_set SETA"},
		{"no leading space", "   stop", "stop"},
		{"keeps one trailing space", "stop   ", "stop "},
		{"tabs become spaces", "union_set\tSETA,SETB,SETC", "union_set SETA,SETB,SETC"},
		{"no space after comma", "union_set SETA,   SETB, SETC", "union_set SETA,SETB,SETC"},
		{"space before comma kept", "union_set SETA ,SETB ,SETC", "union_set SETA ,SETB ,SETC"},
		{"leading comma", ",stop", ",stop"},
		{"blank comma blank", "3 , , 4", "3 ,,4"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestScan_Tokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"fixed arity", "union_set SETA, SETB ,SETC", []string{"union_set", "SETA", "SETB", "SETC"}},
		{"member list", "read_set SETA 3,4,5,-1", []string{"read_set", "SETA", "3", "4", "5", "-1"}},
		{"trailing comma yields no token", "print_set SETA,", []string{"print_set", "SETA"}},
		{"leading comma yields no token", ", stop", []string{"stop"}},
		{"blank", " \t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Scan(tt.in, DefaultMaxTokens)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, l.Tokens, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.in, l.Raw)
			assert.Equal(t, len(tt.want) == 0, l.Empty())
		})
	}
}

func TestScan_MultipleConsecutiveCommas(t *testing.T) {
	for _, in := range []string{
		"read_set SETA 3,4,,5,-1",
		"read_set SETA 3, ,4,-1",
		"union_set SETA , , SETB",
		",,stop",
	} {
		_, err := Scan(in, DefaultMaxTokens)
		assert.Truef(t, errors.Is(err, domain.ErrMultipleConsecutiveCommas), "Scan(%q) err = %v", in, err)
	}
}

func TestScan_MaxTokens(t *testing.T) {
	l, err := Scan("a b c d e", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l.Tokens)
	assert.Equal(t, 2, l.Dropped)

	l, err = Scan("a b c d e", 0)
	require.NoError(t, err)
	assert.Len(t, l.Tokens, 5)
	assert.Zero(t, l.Dropped)
}

func TestLine_Commas(t *testing.T) {
	l, err := Scan("union_set SETA , SETB,SETC", DefaultMaxTokens)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Commas())
}

func TestCommaAfter(t *testing.T) {
	tests := []struct {
		raw  string
		n    int
		want bool
	}{
		{"read_set SETA,1,-1", 1, true},
		{"read_set SETA 1,-1", 1, false},
		{"read_set SETA ,1,-1", 1, true},
		{"read_set SETA\t, 1,-1", 1, true},
		{"read_set SETA", 1, false},
		{"read_set", 3, false},
		{"read_set, SETA", 0, true},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, CommaAfter(tt.raw, tt.n), "CommaAfter(%q, %d)", tt.raw, tt.n)
	}
}
