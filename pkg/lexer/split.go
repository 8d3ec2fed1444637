package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// ParsedLine is a program line split into its number and statement text.
type ParsedLine struct {
	Number   uint16
	Text     string
	Numbered bool // false when the line had no leading digits
}

// LineNumberError reports leading digits that do not fit in 16 bits.
type LineNumberError struct {
	Text string
}

func (e *LineNumberError) Error() string {
	return fmt.Sprintf("line number out of range (0-65535) in %q", e.Text)
}

// SplitLine consumes the leading run of ASCII digits of line as its number.
// A line without digits gets number 0 and keeps all of its text.
func SplitLine(line string) (ParsedLine, error) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)

	end := 0
	var n uint32
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		n = n*10 + uint32(line[end]-'0')
		if n > 0xFFFF {
			return ParsedLine{}, &LineNumberError{Text: line}
		}
		end++
	}

	return ParsedLine{
		Number:   uint16(n),
		Text:     strings.TrimLeftFunc(line[end:], unicode.IsSpace),
		Numbered: end > 0,
	}, nil
}
