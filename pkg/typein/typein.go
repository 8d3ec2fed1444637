// Package typein converts type-in BASIC listings into Commodore program
// files.
//
// Pipeline: source lines → Normalize → SplitLine → Tokenize → Assemble → Bytes
package typein

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"typein/pkg/lexer"
	"typein/pkg/mnemonic"
	"typein/pkg/prg"
	"typein/pkg/tokens"
)

// ReadLines returns the non-blank lines of r, right-trimmed and lowercased.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.ToLower(line))
	}
	return lines, errors.Wrap(sc.Err(), "read source")
}

// Result holds both artifacts of a conversion.
type Result struct {
	Normalized []string // one program line per entry
	Lines      []lexer.ParsedLine
	Program    *prg.Program
	Issues     []prg.Issue // line-number irregularities; informational
}

// Source returns the normalized listing, newline terminated.
func (r *Result) Source() string {
	if len(r.Normalized) == 0 {
		return ""
	}
	return strings.Join(r.Normalized, "\n") + "\n"
}

// Converter runs conversions for one set of options. It is safe for
// concurrent use.
type Converter struct {
	opts     Options
	keywords *tokens.Table
	lexer    *lexer.Lexer
}

// New resolves the keyword table for opts. An accepted BASIC version with no
// table fails here, before any line is tokenized.
func New(opts Options) (*Converter, error) {
	if _, err := mnemonic.ParseDialect(string(opts.Source)); err != nil {
		return nil, err
	}
	kw, err := tokens.Keywords(opts.Version)
	if err != nil {
		return nil, err
	}
	return &Converter{opts: opts, keywords: kw, lexer: lexer.New(kw)}, nil
}

// Options returns the options the converter was built with.
func (c *Converter) Options() Options { return c.opts }

// Keywords returns the active keyword table.
func (c *Converter) Keywords() *tokens.Table { return c.keywords }

// Normalize rewrites placeholders in every line. The first malformed line
// aborts the whole conversion.
func (c *Converter) Normalize(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		n, err := mnemonic.Normalize(line, c.opts.Source)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Split parses the line number of every normalized line.
func (c *Converter) Split(lines []string) ([]lexer.ParsedLine, error) {
	out := make([]lexer.ParsedLine, 0, len(lines))
	for i, line := range lines {
		pl, err := lexer.SplitLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "program line %d", i+1)
		}
		out = append(out, pl)
	}
	return out, nil
}

// Tokenize returns the terminated token bytes of one statement.
func (c *Converter) Tokenize(text string) ([]byte, error) {
	return c.lexer.Tokenize(text)
}

// Convert runs the full pipeline over lowercased source lines.
func (c *Converter) Convert(lines []string) (*Result, error) {
	normalized, err := c.Normalize(lines)
	if err != nil {
		return nil, err
	}
	parsed, err := c.Split(normalized)
	if err != nil {
		return nil, err
	}
	program, err := prg.Assemble(c.lexer, c.opts.LoadAddress, parsed)
	if err != nil {
		return nil, err
	}
	return &Result{
		Normalized: normalized,
		Lines:      parsed,
		Program:    program,
		Issues:     prg.CheckLineNumbers(parsed),
	}, nil
}

// ConvertReader reads a source listing from r and converts it.
func (c *Converter) ConvertReader(r io.Reader) (*Result, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return c.Convert(lines)
}

// Convert is a one-shot conversion with opts.
func Convert(r io.Reader, opts Options) (*Result, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.ConvertReader(r)
}
