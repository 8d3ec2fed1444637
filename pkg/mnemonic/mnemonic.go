// Package mnemonic rewrites control-character placeholders written in a
// source dialect into the canonical mnemonics understood by the lexer.
package mnemonic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"typein/pkg/tokens"
)

// Dialect names the placeholder convention used by a source listing.
type Dialect string

const (
	// Pet sources already use canonical mnemonics such as {clr}.
	Pet Dialect = "pet"
	// Ahoy sources use Ahoy! magazine two-letter placeholders such as {SC}.
	Ahoy Dialect = "ahoy"
)

// Dialects lists the accepted dialect names.
func Dialects() []Dialect { return []Dialect{Pet, Ahoy} }

// Description is the help text for d.
func (d Dialect) Description() string {
	switch d {
	case Pet:
		return "standard pet control character mnemonics"
	case Ahoy:
		return "Ahoy! magazine control character mnemonics"
	}
	return "unknown source format"
}

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(s)); d {
	case Pet, Ahoy:
		return d, nil
	}
	return "", errors.Errorf("unknown source format %q (want pet or ahoy)", s)
}

var ahoyPlaceholder = regexp.MustCompile(`(?i)\{\w{2}\}`)

// FormatError reports a brace that is not part of a well-formed placeholder.
type FormatError struct {
	Line string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("loose brace in line %q: special characters should be enclosed in two braces", e.Line)
}

// UnknownMnemonicError reports a well-formed placeholder with no translation.
type UnknownMnemonicError struct {
	Mnemonic string
	Line     string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown mnemonic %s in line %q", e.Mnemonic, e.Line)
}

// Normalize returns line with every placeholder of dialect d replaced by its
// canonical mnemonic. Text between placeholders is kept verbatim.
func Normalize(line string, d Dialect) (string, error) {
	switch d {
	case Pet:
		return line, nil
	case Ahoy:
		return normalizeAhoy(line)
	}
	return "", errors.Errorf("unknown source format %q", string(d))
}

func normalizeAhoy(line string) (string, error) {
	locs := ahoyPlaceholder.FindAllStringIndex(line, -1)

	// Brace checks run over the whole line before any lookup.
	prev := 0
	for _, loc := range locs {
		if strings.ContainsAny(line[prev:loc[0]], "{}") {
			return "", &FormatError{Line: line}
		}
		prev = loc[1]
	}
	if strings.ContainsAny(line[prev:], "{}") {
		return "", &FormatError{Line: line}
	}
	if len(locs) == 0 {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line) + 2*len(locs))
	prev = 0
	for _, loc := range locs {
		b.WriteString(line[prev:loc[0]])
		code := strings.ToUpper(line[loc[0]:loc[1]])
		canonical, ok := tokens.AhoyControls[code]
		if !ok {
			return "", &UnknownMnemonicError{Mnemonic: code, Line: line}
		}
		b.WriteString(canonical)
		prev = loc[1]
	}
	b.WriteString(line[prev:])
	return b.String(), nil
}
