package lexer

import "fmt"

// State is the lexer mode while scanning one statement.
type State int

const (
	Normal   State = iota // keywords are tokenized
	InQuote               // inside a string literal
	InRemark              // after REM, up to end of line
)

var stateNames = [...]string{
	Normal:   "NORMAL",
	InQuote:  "IN_QUOTE",
	InRemark: "IN_REMARK",
}

func (s State) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Quote returns the state after a literal double quote. A remark absorbs
// quotes.
func (s State) Quote() State {
	switch s {
	case Normal:
		return InQuote
	case InQuote:
		return Normal
	}
	return s
}
