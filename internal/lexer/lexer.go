// Package lexer turns a raw command line into its canonical token sequence.
//
// Scanning happens in two steps. Normalize collapses whitespace while keeping
// every comma, so comma placement conventions like "a, b" and "a ,b" both
// survive. Tokens then splits the normalized text on spaces and commas.
// A normalized line that contains two adjacent commas is rejected before
// any token is produced.
package lexer

import (
	"strings"

	"github.com/bft-labs/setcalc/internal/domain"
)

// DefaultMaxTokens is the number of tokens kept from a single line.
const DefaultMaxTokens = 20

// Line is a scanned command line.
type Line struct {
	// Raw is the line as read, used for comma cross-checks.
	Raw string
	// Normalized is Raw with whitespace runs collapsed.
	Normalized string
	// Tokens are the non-empty fields of Normalized.
	Tokens []string
	// Dropped counts the fields cut off by the token limit.
	Dropped int
}

// Empty reports whether the line carries no tokens.
func (l Line) Empty() bool {
	return len(l.Tokens) == 0
}

// Commas returns the number of commas in the raw line.
func (l Line) Commas() int {
	return strings.Count(l.Raw, ",")
}

// Scan normalizes raw, rejects doubled commas and splits the result into
// at most maxTokens tokens (no limit when maxTokens <= 0). Tokens past the
// limit are dropped.
func Scan(raw string, maxTokens int) (Line, error) {
	l := Line{Raw: raw, Normalized: Normalize(raw)}
	if strings.Contains(l.Normalized, ",,") {
		return l, domain.NewError(domain.KindMultipleConsecutiveCommas, "")
	}
	l.Tokens = Tokens(l.Normalized, 0)
	if maxTokens > 0 && len(l.Tokens) > maxTokens {
		l.Dropped = len(l.Tokens) - maxTokens
		l.Tokens = l.Tokens[:maxTokens]
	}
	return l, nil
}

// Normalize collapses each run of spaces and tabs into a single space.
// No space is emitted at the start of the line or directly after a space
// or a comma. Commas and all other characters pass through unchanged.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	var last byte
	emit := func(c byte) {
		b.WriteByte(c)
		last = c
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ',' && (i == 0 || isBlank(raw[i-1])):
			// leading comma convention: " ,b"
			emit(',')
		case c == ',' && i+1 < len(raw) && raw[i+1] == ' ':
			// trailing comma convention: "a, "
			emit(',')
		case isBlank(c):
			if b.Len() > 0 && last != ' ' && last != ',' {
				emit(' ')
			}
		default:
			emit(c)
		}
	}
	return b.String()
}

// Tokens splits s on spaces, tabs and commas, dropping empty fields.
func Tokens(s string, maxTokens int) []string {
	fields := strings.FieldsFunc(s, isDelimiter)
	if maxTokens > 0 && len(fields) > maxTokens {
		fields = fields[:maxTokens]
	}
	return fields
}

// CommaAfter reports whether the first delimiter run that follows token n
// (zero-based) of raw contains a comma. It returns false when raw has no
// token n or nothing follows it.
func CommaAfter(raw string, n int) bool {
	i := 0
	for tok := 0; ; tok++ {
		for i < len(raw) && isDelimiter(rune(raw[i])) {
			i++
		}
		if i == len(raw) {
			return false
		}
		for i < len(raw) && !isDelimiter(rune(raw[i])) {
			i++
		}
		if tok == n {
			break
		}
	}
	for ; i < len(raw) && isDelimiter(rune(raw[i])); i++ {
		if raw[i] == ',' {
			return true
		}
	}
	return false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}
