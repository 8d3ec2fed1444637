// Package prg assembles tokenized BASIC lines into the Commodore program
// file layout and reads such files back.
//
// File layout, all words little-endian:
//
//	load address
//	for each line: next-line address, line number, tokens..., 0x00
//	0x00 0x00
package prg

import (
	"fmt"

	"github.com/pkg/errors"

	"typein/pkg/lexer"
)

// DefaultLoadAddress is the start of BASIC memory on the C64.
const DefaultLoadAddress uint16 = 0x0801

// lineHeader is the link word plus the line number word.
const lineHeader = 4

// Line is one framed program line.
type Line struct {
	Addr   uint16 // address of the link word
	Next   uint16 // address of the following line
	Number uint16
	Tokens []byte // ends with the 0x00 terminator
}

// Size is the number of bytes the line occupies in memory.
func (l Line) Size() int { return lineHeader + len(l.Tokens) }

// Program is an assembled BASIC program.
type Program struct {
	LoadAddress uint16
	Lines       []Line
}

// End returns the address of the two-byte end marker.
func (p *Program) End() uint16 {
	if len(p.Lines) == 0 {
		return p.LoadAddress
	}
	return p.Lines[len(p.Lines)-1].Next
}

// Tokenizer produces the terminated token bytes for one statement.
type Tokenizer interface {
	Tokenize(text string) ([]byte, error)
}

// ProgramTooLargeError reports a line whose end passes the top of memory.
type ProgramTooLargeError struct {
	LineNumber uint16
	Address    uint32
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("program too large near line %d: next line address 0x%X exceeds 0xFFFF", e.LineNumber, e.Address)
}

// Assembler frames statements into program lines starting at a load address.
type Assembler struct {
	tok  Tokenizer
	load uint16
}

func NewAssembler(tok Tokenizer, load uint16) *Assembler {
	return &Assembler{tok: tok, load: load}
}

// Assemble tokenizes every line in order and links each to the next.
// Line numbers are taken as given; their order is not checked.
func Assemble(tok Tokenizer, load uint16, lines []lexer.ParsedLine) (*Program, error) {
	return NewAssembler(tok, load).Assemble(lines)
}

func (a *Assembler) Assemble(lines []lexer.ParsedLine) (*Program, error) {
	p := &Program{
		LoadAddress: a.load,
		Lines:       make([]Line, 0, len(lines)),
	}

	cursor := uint32(a.load)
	for _, pl := range lines {
		b, err := a.tok.Tokenize(pl.Text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", pl.Number)
		}

		next := cursor + lineHeader + uint32(len(b))
		if next > 0xFFFF {
			return nil, &ProgramTooLargeError{LineNumber: pl.Number, Address: next}
		}

		p.Lines = append(p.Lines, Line{
			Addr:   uint16(cursor),
			Next:   uint16(next),
			Number: pl.Number,
			Tokens: b,
		})
		cursor = next
	}

	return p, nil
}
