package prg

import (
	"fmt"

	"github.com/google/btree"

	"typein/pkg/lexer"
)

// IssueKind classifies a line-number irregularity.
type IssueKind int

const (
	Duplicate  IssueKind = iota // number already used by an earlier line
	OutOfOrder                  // number lower than an earlier line's
	Unnumbered                  // no leading digits; stored as line 0
)

var issueNames = [...]string{
	Duplicate:  "duplicate line number",
	OutOfOrder: "line number out of order",
	Unnumbered: "missing line number",
}

func (k IssueKind) String() string {
	if int(k) >= 0 && int(k) < len(issueNames) {
		return issueNames[k]
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// Issue describes one irregular line. Index is the 0-based position of the
// line in the program; Other is the earlier line number it conflicts with.
type Issue struct {
	Kind   IssueKind
	Index  int
	Number uint16
	Other  uint16
}

func (i Issue) String() string {
	switch i.Kind {
	case Duplicate:
		return fmt.Sprintf("program line %d: %s %d", i.Index+1, i.Kind, i.Number)
	case OutOfOrder:
		return fmt.Sprintf("program line %d: %s: %d follows %d", i.Index+1, i.Kind, i.Number, i.Other)
	}
	return fmt.Sprintf("program line %d: %s", i.Index+1, i.Kind)
}

type numberItem uint16

func (a numberItem) Less(b btree.Item) bool { return a < b.(numberItem) }

// CheckLineNumbers reports duplicate, descending, and missing line numbers.
// The interpreter keeps lines sorted and unique, so such programs load but
// may not list or run as written. Nothing is rejected here.
func CheckLineNumbers(lines []lexer.ParsedLine) []Issue {
	var issues []Issue
	seen := btree.New(4)

	for i, l := range lines {
		if !l.Numbered {
			issues = append(issues, Issue{Kind: Unnumbered, Index: i})
			continue
		}
		key := numberItem(l.Number)
		if seen.Has(key) {
			issues = append(issues, Issue{Kind: Duplicate, Index: i, Number: l.Number, Other: l.Number})
			continue
		}
		if last := seen.Max(); last != nil && last.(numberItem) > key {
			issues = append(issues, Issue{Kind: OutOfOrder, Index: i, Number: l.Number, Other: uint16(last.(numberItem))})
		}
		seen.ReplaceOrInsert(key)
	}
	return issues
}
