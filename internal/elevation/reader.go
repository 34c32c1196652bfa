package elevation

// reader.go adapts raw asset bytes before they reach the parser:
//
//   - bomSkippingReader drops a leading UTF-8 BOM written by spreadsheet exports
//   - utf8Sanitizer replaces invalid UTF-8 bytes with '?'
//   - limitedReader stops with ErrTooLarge once the configured size is exceeded
//
// The parser itself works on the whole buffer; these readers only guard what is
// loaded into it.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrTooLarge is returned by ParseReader when the input exceeds the byte limit.
var ErrTooLarge = errors.New("file too large")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseReader reads all of r and parses it with ParseTable. A limit <= 0
// disables the size check. Only I/O failures and ErrTooLarge are returned;
// malformed CSV content never is.
func ParseReader(r io.Reader, limit int64) (Table, error) {
	src := io.Reader(newUTF8Sanitizer(newBOMSkippingReader(r)))
	if limit > 0 {
		src = &limitedReader{r: src, remaining: limit, limit: limit}
	}

	var b strings.Builder
	if _, err := io.Copy(&b, src); err != nil {
		return Table{}, fmt.Errorf("read elevation csv: %w", err)
	}

	return ParseTable(b.String()), nil
}

// bomSkippingReader discards a UTF-8 BOM at the very start of the stream.
type bomSkippingReader struct {
	br      *bufio.Reader
	checked bool
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{br: bufio.NewReader(r)}
}

func (r *bomSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true
		head, err := r.br.Peek(len(utf8BOM))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if len(head) == len(utf8BOM) && string(head) == string(utf8BOM) {
			_, _ = r.br.Discard(len(utf8BOM))
		}
	}
	return r.br.Read(p)
}

// utf8Sanitizer replaces invalid UTF-8 bytes with '?'. Multi-byte sequences
// split across reads are carried over to the next call.
type utf8Sanitizer struct {
	r       io.Reader
	pending []byte
}

func newUTF8Sanitizer(r io.Reader) *utf8Sanitizer {
	return &utf8Sanitizer{r: r, pending: make([]byte, 0, utf8.UTFMax)}
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := copy(p, s.pending)
	s.pending = s.pending[:0]

	n, err := s.r.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	if isASCII(p[:n]) {
		return n, err
	}
	return s.sanitize(p[:n], err == io.EOF), err
}

// sanitize rewrites data in place and returns the number of bytes to hand out.
// An incomplete rune at the tail is kept back unless the stream has ended.
func (s *utf8Sanitizer) sanitize(data []byte, atEOF bool) int {
	write := 0
	for read := 0; read < len(data); {
		if !atEOF && !utf8.FullRune(data[read:]) {
			s.pending = append(s.pending, data[read:]...)
			return write
		}

		r, size := utf8.DecodeRune(data[read:])
		if r == utf8.RuneError && size == 1 {
			data[write] = '?'
			write++
			read++
			continue
		}

		copy(data[write:], data[read:read+size])
		write += size
		read += size
	}
	return write
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// limitedReader fails with ErrTooLarge once more than limit bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
	limit     int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, l.limit)
	}
	// Read one byte past the limit so an exact-size file is still accepted.
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return 0, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, l.limit)
	}
	return n, err
}
