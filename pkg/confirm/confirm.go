// Package confirm asks yes/no questions on the console.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter reads answers from In and writes questions to Out. With Raw set
// it takes a single key press from the controlling terminal instead of a
// line from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	Raw bool

	lines *bufio.Reader
}

// Terminal returns a Prompter on stdin/stderr, using single-key input when
// stdin is a terminal.
func Terminal() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr, Raw: isTerminal(os.Stdin)}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Ask prints question and reports whether the answer was y or Y.
func (p *Prompter) Ask(question string) (bool, error) {
	fmt.Fprint(p.Out, question)

	if p.Raw {
		if key, err := readKey(); err == nil {
			fmt.Fprintf(p.Out, "%c\n", key)
			return key == 'y' || key == 'Y', nil
		}
	}

	if p.lines == nil {
		p.lines = bufio.NewReader(p.In)
	}
	answer, err := p.lines.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// Overwrite asks whether an existing output file may be replaced.
func (p *Prompter) Overwrite(path string) (bool, error) {
	return p.Ask(fmt.Sprintf("Output file %q already exists. Overwrite? (Y = yes) ", path))
}
