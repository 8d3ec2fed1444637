package tokens

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLongest(t *testing.T) {
	kw, err := Keywords(V2)
	require.NoError(t, err)

	tests := []struct {
		src    string
		pos    int
		want   byte
		length int
	}{
		{"print#1,a", 0, 152, 6},
		{"print a", 0, 153, 5},
		{"input#2", 0, 132, 6},
		{"input a", 0, 133, 5},
		{"gosub 100", 0, 141, 5},
		{"goto 10", 0, 137, 4},
		{"go to 10", 0, 203, 2},
		{"x=left$(a$,1)", 2, 200, 5},
		{"a<>b", 1, 179, 1},
	}
	for _, tc := range tests {
		e, n, ok := kw.Match([]rune(tc.src), tc.pos)
		require.True(t, ok, "Match(%q, %d)", tc.src, tc.pos)
		assert.Equal(t, tc.want, e.Code, "Match(%q, %d) code", tc.src, tc.pos)
		assert.Equal(t, tc.length, n, "Match(%q, %d) length", tc.src, tc.pos)
	}

	_, _, ok := kw.Match([]rune("xyz"), 0)
	assert.False(t, ok)
}

func TestMatchIndependentOfDeclarationOrder(t *testing.T) {
	tbl := NewTable([]Entry{{"go", 1}, {"gosub", 2}, {"goto", 3}})
	e, n, ok := tbl.Match([]rune("gosub"), 0)
	require.True(t, ok)
	assert.Equal(t, byte(2), e.Code)
	assert.Equal(t, 5, n)

	e, _, ok = tbl.Match([]rune("gox"), 0)
	require.True(t, ok)
	assert.Equal(t, byte(1), e.Code)

	// declaration order is still reported as given
	assert.Equal(t, "go", tbl.Entries()[0].Text)
}

func TestNoEntryIsShadowedByAPrefix(t *testing.T) {
	kw, err := Keywords(V2)
	require.NoError(t, err)

	for _, tbl := range []*Table{kw, Controls} {
		for _, e := range tbl.Entries() {
			got, n, ok := tbl.Match([]rune(e.Text), 0)
			require.True(t, ok, e.Text)
			assert.Equal(t, e.Code, got.Code, "entry %q", e.Text)
			assert.Equal(t, len([]rune(e.Text)), n, "entry %q", e.Text)
		}
	}
}

func TestLookup(t *testing.T) {
	kw, err := Keywords(V2)
	require.NoError(t, err)

	e, ok := kw.Lookup(REM)
	require.True(t, ok)
	assert.Equal(t, "rem", e.Text)

	e, ok = Controls.Lookup(147)
	require.True(t, ok)
	assert.Equal(t, "{clr}", e.Text)

	_, ok = kw.Lookup(0x41)
	assert.False(t, ok)
}

func TestTableSizes(t *testing.T) {
	kw, err := Keywords(V2)
	require.NoError(t, err)
	assert.Equal(t, 76, kw.Len())
	assert.Equal(t, 34, Controls.Len())
	assert.Len(t, AhoyControls, 34)

	// every keyword code is unique and sits in the token range
	seen := map[byte]bool{}
	for _, e := range kw.Entries() {
		assert.False(t, seen[e.Code], "duplicate code %d", e.Code)
		seen[e.Code] = true
		assert.GreaterOrEqual(t, e.Code, byte(128))
	}
}

func TestAhoyControlsResolve(t *testing.T) {
	for ahoy, canonical := range AhoyControls {
		assert.Len(t, ahoy, 4, ahoy)
		assert.Equal(t, strings.ToUpper(ahoy), ahoy)
		_, n, ok := Controls.Match([]rune(canonical), 0)
		assert.True(t, ok, "%s -> %s has no control code", ahoy, canonical)
		assert.Equal(t, len([]rune(canonical)), n)
	}
}

func TestKeywordsVersions(t *testing.T) {
	for _, v := range Versions() {
		tbl, err := Keywords(v)
		if v == V2 {
			require.NoError(t, err)
			assert.NotNil(t, tbl)
			continue
		}
		var ude *UnsupportedDialectError
		require.True(t, errors.As(err, &ude), "version %s: %v", v, err)
		assert.Equal(t, string(v), ude.Version)
		assert.Nil(t, tbl)
	}

	_, err := Keywords("9")
	require.Error(t, err)
	var ude *UnsupportedDialectError
	assert.False(t, errors.As(err, &ude))
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("7")
	require.NoError(t, err)
	assert.Equal(t, V7, v)
	assert.Equal(t, "Basic v7.0  C128", v.String())

	_, err = ParseVersion("")
	assert.Error(t, err)
	_, err = ParseVersion("2.0")
	assert.Error(t, err)
}
