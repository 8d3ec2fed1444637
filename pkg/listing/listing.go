// Package listing turns tokenized program lines back into readable text.
package listing

import (
	"fmt"
	"io"
	"strings"

	"typein/pkg/lexer"
	"typein/pkg/prg"
	"typein/pkg/tokens"
)

// Detokenize renders the token bytes of one line in the lowercase source
// form accepted by the lexer. Reading stops at the first 0x00.
//
// Outside strings and remarks, bytes from the keyword range print as
// keywords; inside them, control bytes print as canonical mnemonics.
// Other bytes from 0xA1 up print as the Latin-1 character of the same
// code, which the lexer reads back to the same byte. The remaining bytes
// print as {$xx}; the lexer has no reading for that form, so lines
// holding them do not survive a second tokenization.
func Detokenize(b []byte, kw *tokens.Table) string {
	var sb strings.Builder
	state := lexer.Normal

	for _, c := range b {
		if c == 0 {
			break
		}
		if state == lexer.Normal && c >= 0x80 {
			if e, ok := kw.Lookup(c); ok {
				sb.WriteString(e.Text)
				if c == tokens.REM {
					state = lexer.InRemark
				}
				continue
			}
		}

		switch {
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(c + ('a' - 'A'))
		case c >= 0x20 && c < 0x7F:
			sb.WriteByte(c)
			if c == tokens.QuoteChar {
				state = state.Quote()
			}
		default:
			if e, ok := tokens.Controls.Lookup(c); ok {
				sb.WriteString(e.Text)
			} else if c > 0xA0 {
				sb.WriteRune(rune(c))
			} else {
				fmt.Fprintf(&sb, "{$%02x}", c)
			}
		}
	}
	return sb.String()
}

// FormatLine renders one program line as "number text".
func FormatLine(l prg.Line, kw *tokens.Table) string {
	text := Detokenize(l.Tokens, kw)
	if text == "" {
		return fmt.Sprintf("%d", l.Number)
	}
	return fmt.Sprintf("%d %s", l.Number, text)
}

// Program lists every line of p.
func Program(p *prg.Program, kw *tokens.Table) []string {
	out := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		out = append(out, FormatLine(l, kw))
	}
	return out
}

// Read lists a program file as it is parsed.
func Read(r io.Reader, kw *tokens.Table) ([]string, error) {
	p, err := prg.ReadProgram(r)
	if err != nil {
		return nil, err
	}
	return Program(p, kw), nil
}
