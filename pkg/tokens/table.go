package tokens

import "sort"

// Entry maps a piece of source text to the byte that replaces it.
type Entry struct {
	Text string
	Code byte
}

// Table is an immutable set of entries matched longest-first.
type Table struct {
	decl    []Entry  // declaration order
	entries []Entry  // longest text first
	runes   [][]rune // entries[i].Text as runes
	byCode  map[byte]Entry
}

// NewTable builds a Table. Entries are reordered by descending text length,
// so a keyword that is a prefix of another never shadows it.
func NewTable(entries []Entry) *Table {
	t := &Table{
		decl:    append([]Entry(nil), entries...),
		entries: append([]Entry(nil), entries...),
		byCode:  make(map[byte]Entry, len(entries)),
	}
	sort.SliceStable(t.entries, func(i, j int) bool {
		return len([]rune(t.entries[i].Text)) > len([]rune(t.entries[j].Text))
	})
	t.runes = make([][]rune, len(t.entries))
	for i, e := range t.entries {
		t.runes[i] = []rune(e.Text)
	}
	for _, e := range entries {
		if _, dup := t.byCode[e.Code]; !dup {
			t.byCode[e.Code] = e
		}
	}
	return t
}

// Match returns the longest entry whose text starts at src[pos], and the
// number of runes it covers.
func (t *Table) Match(src []rune, pos int) (Entry, int, bool) {
	rest := src[pos:]
	for i, r := range t.runes {
		if hasPrefix(rest, r) {
			return t.entries[i], len(r), true
		}
	}
	return Entry{}, 0, false
}

// Lookup finds the first declared entry for code.
func (t *Table) Lookup(code byte) (Entry, bool) {
	e, ok := t.byCode[code]
	return e, ok
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.decl...)
}

func (t *Table) Len() int { return len(t.decl) }

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) == 0 || len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
