package optargs

import (
	"strings"
	"unicode"
)

// eof is the sentinel returned by the stream once the source is exhausted.
// Reading past the end is idempotent and keeps returning it.
const eof = rune(-1)

// charStream is a lazy, single-pass cursor over a command line. The
// position starts before the first character; there is no rewind beyond
// the single-character lookback provided by the current character.
type charStream struct {
	src []rune
	pos int // index of the current rune, -1 before the first read
	cur rune
}

func newCharStream(source string) *charStream {
	return &charStream{src: []rune(source), pos: -1, cur: eof}
}

// next advances the cursor by one character and returns it, or eof if
// the stream is exhausted.
func (s *charStream) next() rune {
	if s.pos+1 >= len(s.src) {
		s.pos = len(s.src)
		s.cur = eof
		return eof
	}
	s.pos++
	s.cur = s.src[s.pos]
	return s.cur
}

// nextNonSpace advances until a non-whitespace character or eof.
func (s *charStream) nextNonSpace() rune {
	for {
		c := s.next()
		if c == eof || !unicode.IsSpace(c) {
			return c
		}
	}
}

// currentNonSpace returns the current character if it is non-whitespace,
// otherwise advances like nextNonSpace. Before the first read it behaves
// like nextNonSpace.
func (s *charStream) currentNonSpace() rune {
	if s.pos < 0 || (s.cur != eof && unicode.IsSpace(s.cur)) {
		return s.nextNonSpace()
	}
	return s.cur
}

// currentLiteral accumulates characters starting at the current one until
// whitespace, the optional stop predicate, or the end of the stream. The
// stopping character is not consumed; the cursor is left positioned on it.
func (s *charStream) currentLiteral(stop func(rune) bool) (string, bool) {
	if s.pos < 0 {
		s.next()
	}
	if s.cur == eof {
		return "", false
	}
	var b strings.Builder
	for s.cur != eof && !unicode.IsSpace(s.cur) && (stop == nil || !stop(s.cur)) {
		b.WriteRune(s.cur)
		s.next()
	}
	return b.String(), true
}

// nextLiteral advances once, then accumulates like currentLiteral.
func (s *charStream) nextLiteral(stop func(rune) bool) (string, bool) {
	s.next()
	return s.currentLiteral(stop)
}

// currentString reads a possibly quoted string starting at the current
// character. A double quote opens a quoted string in which a backslash
// escapes the quote character only; the closing quote is consumed and the
// cursor ends up on the character after it. Anything else is read as a
// plain literal. An opening quote that is never closed yields
// ErrUnterminatedString.
func (s *charStream) currentString() (string, bool, error) {
	if s.pos < 0 {
		s.next()
	}
	if s.cur == eof {
		return "", false, nil
	}
	if s.cur != '"' {
		lit, ok := s.currentLiteral(nil)
		return lit, ok, nil
	}
	var b strings.Builder
	escaped := false
	for {
		c := s.next()
		if c == eof {
			return "", false, ErrUnterminatedString
		}
		if escaped {
			if c != '"' {
				b.WriteRune('\\')
			}
			b.WriteRune(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			s.next()
			return b.String(), true, nil
		default:
			b.WriteRune(c)
		}
	}
}

// nextString advances once, then reads like currentString.
func (s *charStream) nextString() (string, bool, error) {
	s.next()
	return s.currentString()
}
