package prg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// FormatError reports malformed program file input.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// A Reader parses a program file line by line.
type Reader struct {
	org  uint16
	addr uint16 // address of the next link word
	buf  *bufio.Reader
	pos  int
	done bool
}

// NewReader consumes the load address from r.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{buf: bufio.NewReader(r)}
	org, err := rd.word()
	if err != nil {
		return nil, rd.fail("reading load address: %v", err)
	}
	rd.org = org
	rd.addr = org
	return rd, nil
}

// Origin returns the load address from the file header.
func (r *Reader) Origin() uint16 { return r.org }

// word returns the next little-endian word and advances the offset.
func (r *Reader) word() (uint16, error) {
	var w [2]byte
	if _, err := io.ReadFull(r.buf, w[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	r.pos += 2
	return uint16(w[1])<<8 | uint16(w[0]), nil
}

func (r *Reader) fail(msg string, args ...interface{}) error {
	return &FormatError{Offset: r.pos, Msg: fmt.Sprintf(msg, args...)}
}

// Line returns the next program line, or io.EOF after the end marker.
func (r *Reader) Line() (Line, error) {
	if r.done {
		return Line{}, io.EOF
	}

	link, err := r.word()
	if err != nil {
		return Line{}, r.fail("reading line link: %v", err)
	}
	if link == 0 {
		r.done = true
		return Line{}, io.EOF
	}

	num, err := r.word()
	if err != nil {
		return Line{}, r.fail("reading line number: %v", err)
	}

	tokens, err := r.buf.ReadBytes(0)
	r.pos += len(tokens)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Line{}, r.fail("reading line %d: %v", num, err)
	}

	l := Line{Addr: r.addr, Next: link, Number: num, Tokens: tokens}
	if want := uint32(r.addr) + uint32(l.Size()); uint32(link) != want {
		return Line{}, r.fail("line %d links to 0x%04X, expected 0x%04X", num, link, want)
	}
	r.addr = link
	return l, nil
}

// ReadProgram parses a complete program file.
func ReadProgram(r io.Reader) (*Program, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	p := &Program{LoadAddress: rd.Origin()}
	for {
		l, err := rd.Line()
		if err == io.EOF {
			return p, nil
		}
		if err != nil {
			return nil, err
		}
		p.Lines = append(p.Lines, l)
	}
}

// Parse is ReadProgram over an in-memory image.
func Parse(b []byte) (*Program, error) {
	p, err := ReadProgram(bytes.NewReader(b))
	return p, errors.Wrap(err, "parse program")
}
