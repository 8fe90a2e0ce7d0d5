// Package lines implements ports.LineSource over an io.Reader.
package lines

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/bft-labs/setcalc/pkg/log"
)

// DefaultMaxLength is the longest line kept, in bytes.
const DefaultMaxLength = 255

// Reader reads newline-terminated lines and truncates overlong ones.
type Reader struct {
	r      *bufio.Reader
	max    int
	logger log.Logger
	n      int
}

// NewReader wraps r. Lines longer than maxLength bytes are cut to maxLength
// (no limit when maxLength <= 0).
func NewReader(r io.Reader, maxLength int, logger log.Logger) *Reader {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Reader{r: bufio.NewReader(r), max: maxLength, logger: logger}
}

// ReadLine returns the next line with any trailing "\n" or "\r\n" removed.
// A final line without a terminator is returned before io.EOF. At most
// maxLength+1 bytes of a line are buffered; the rest is discarded while
// reading. Truncation never splits a UTF-8 sequence.
func (r *Reader) ReadLine() (string, error) {
	var (
		kept   []byte
		length int
		last   byte
	)
	for {
		chunk, err := r.r.ReadSlice('\n')
		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}
		if len(chunk) > 0 {
			last = chunk[len(chunk)-1]
		}
		length += len(chunk)
		kept = r.keep(kept, chunk)

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if err != nil && length == 0 {
			return "", io.EOF
		}
		break
	}
	r.n++

	if last == '\r' {
		length--
		if len(kept) > length {
			kept = kept[:length]
		}
	}
	if r.max > 0 && length > r.max {
		r.logger.Warn("line truncated",
			log.Int("line", r.n),
			log.Int("length", length),
			log.Int("max", r.max),
		)
		cut := r.max
		for cut > 0 && !utf8.RuneStart(kept[cut]) {
			cut--
		}
		kept = kept[:cut]
	}
	return string(kept), nil
}

// keep appends chunk to kept up to one byte past the limit, so a trailing
// "\r" on a line of exactly maxLength bytes can still be recognized.
func (r *Reader) keep(kept, chunk []byte) []byte {
	if r.max <= 0 {
		return append(kept, chunk...)
	}
	room := r.max + 1 - len(kept)
	if room <= 0 {
		return kept
	}
	if len(chunk) > room {
		chunk = chunk[:room]
	}
	return append(kept, chunk...)
}
