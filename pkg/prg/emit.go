package prg

import (
	"encoding/binary"
	"io"
)

// Size is the length in bytes of the emitted file.
func (p *Program) Size() int {
	n := 2 + 2 // load address, end marker
	for _, l := range p.Lines {
		n += l.Size()
	}
	return n
}

// Bytes returns the program file image.
func (p *Program) Bytes() []byte {
	out := make([]byte, 0, p.Size())
	out = binary.LittleEndian.AppendUint16(out, p.LoadAddress)
	for _, l := range p.Lines {
		out = appendLine(out, l)
	}
	return append(out, 0x00, 0x00)
}

// WriteTo writes the program file image to w, one line at a time.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(b []byte) error {
		n, err := w.Write(b)
		total += int64(n)
		return err
	}

	var word [2]byte
	binary.LittleEndian.PutUint16(word[:], p.LoadAddress)
	if err := write(word[:]); err != nil {
		return total, err
	}

	buf := make([]byte, 0, 256)
	for _, l := range p.Lines {
		buf = appendLine(buf[:0], l)
		if err := write(buf); err != nil {
			return total, err
		}
	}

	err := write([]byte{0x00, 0x00})
	return total, err
}

func appendLine(out []byte, l Line) []byte {
	out = binary.LittleEndian.AppendUint16(out, l.Next)
	out = binary.LittleEndian.AppendUint16(out, l.Number)
	return append(out, l.Tokens...)
}
