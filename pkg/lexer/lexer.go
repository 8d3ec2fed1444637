// Package lexer turns the statement text of a Commodore BASIC line into
// its tokenized byte form.
//
// Control mnemonics such as {clr} are replaced in every state. Keywords are
// replaced only outside string literals and remarks. Every other character
// is copied as one byte, with a-z folded to A-Z.
package lexer

import (
	"fmt"

	"typein/pkg/tokens"
)

// CharacterError reports a character that has no single-byte encoding.
type CharacterError struct {
	Char   rune
	Column int // 1-based, within the statement text
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at column %d cannot be encoded as a byte", e.Char, e.Char, e.Column)
}

// Lexer tokenizes statements against a fixed pair of tables. It holds no
// per-line state and is safe for concurrent use.
type Lexer struct {
	controls *tokens.Table
	keywords *tokens.Table
}

// New returns a Lexer using the canonical control table and keywords.
func New(keywords *tokens.Table) *Lexer {
	return &Lexer{controls: tokens.Controls, keywords: keywords}
}

// Tokenize returns the bytes for text, terminated by a single 0x00.
func (lx *Lexer) Tokenize(text string) ([]byte, error) {
	out, _, err := lx.Scan(text)
	return out, err
}

// Scan is Tokenize that also reports the state the line ended in.
func (lx *Lexer) Scan(text string) ([]byte, State, error) {
	s := &scanner{
		lx:  lx,
		src: []rune(text),
		out: make([]byte, 0, len(text)+1),
	}
	for s.pos < len(s.src) {
		if err := s.next(); err != nil {
			return nil, s.state, err
		}
	}
	s.out = append(s.out, 0)
	return s.out, s.state, nil
}

// scanner holds the mutable state of a single Scan call.
type scanner struct {
	lx    *Lexer
	src   []rune
	pos   int
	state State
	out   []byte
}

// advance consumes one rune and returns it.
func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

func (s *scanner) next() error {
	if e, n, ok := s.lx.controls.Match(s.src, s.pos); ok {
		s.out = append(s.out, e.Code)
		s.pos += n
		return nil
	}

	if s.state == Normal {
		if e, n, ok := s.lx.keywords.Match(s.src, s.pos); ok {
			s.out = append(s.out, e.Code)
			s.pos += n
			if e.Code == tokens.REM {
				s.state = InRemark
			}
			return nil
		}
	}

	col := s.pos + 1
	r := s.advance()
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0 || r > 0xFF {
		return &CharacterError{Char: r, Column: col}
	}
	s.out = append(s.out, byte(r))
	if r == tokens.QuoteChar {
		s.state = s.state.Quote()
	}
	return nil
}
