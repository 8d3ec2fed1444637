package typein

import (
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typein/pkg/mnemonic"
	"typein/pkg/prg"
	"typein/pkg/tokens"
)

const ahoySource = `
10 PRINT "{SC}{RD}HELLO"

20 GOTO 10   
`

func TestConvertAhoy(t *testing.T) {
	res, err := Convert(strings.NewReader(ahoySource), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{`10 print "{clr}{red}hello"`, "20 goto 10"}, res.Normalized)
	assert.Equal(t, "10 print \"{clr}{red}hello\"\n20 goto 10\n", res.Source())
	assert.Empty(t, res.Issues)

	want := []byte{
		0x01, 0x08,
		0x11, 0x08, 0x0A, 0x00, 153, ' ', '"', 147, 28, 'H', 'E', 'L', 'L', 'O', '"', 0,
		0x1A, 0x08, 0x14, 0x00, 137, ' ', '1', '0', 0,
		0x00, 0x00,
	}
	assert.Equal(t, want, res.Program.Bytes())
}

func TestConvertPet(t *testing.T) {
	opts := DefaultOptions()
	opts.Source = mnemonic.Pet
	opts.LoadAddress = 0x1001

	res, err := Convert(strings.NewReader("10 print \"{CLR}\"\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{`10 print "{clr}"`}, res.Normalized)
	assert.Equal(t, []byte{0x01, 0x10}, res.Program.Bytes()[:2])
	assert.Equal(t, []byte{153, ' ', '"', 147, '"', 0}, res.Program.Lines[0].Tokens)
}

func TestConvertFormatErrorAborts(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)

	res, err := c.Convert([]string{"10 print", `20 print "{cl"`, "30 end"})
	var fe *mnemonic.FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, `20 print "{cl"`, fe.Line)
	assert.Nil(t, res)
}

func TestUnsupportedVersion(t *testing.T) {
	for _, v := range []tokens.Version{tokens.V1, tokens.V3, tokens.V4, tokens.V7} {
		opts := DefaultOptions()
		opts.Version = v
		_, err := New(opts)
		var ude *tokens.UnsupportedDialectError
		assert.True(t, errors.As(err, &ude), "version %s: %v", v, err)
	}

	opts := DefaultOptions()
	opts.Source = "basic"
	_, err := New(opts)
	assert.Error(t, err)
}

func TestAhoyMnemonicRoundTrip(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)

	for ahoy, canonical := range tokens.AhoyControls {
		want, _, ok := tokens.Controls.Match([]rune(canonical), 0)
		require.True(t, ok)

		for _, wrap := range []string{"%s", `x"%s"y`, "rem a%sb"} {
			src := strings.Replace(wrap, "%s", strings.ToLower(ahoy), 1)
			norm, err := c.Normalize([]string{src})
			require.NoError(t, err)
			b, err := c.Tokenize(norm[0])
			require.NoError(t, err)

			plain, err := c.Tokenize(strings.Replace(wrap, "%s", "", 1))
			require.NoError(t, err)
			assert.Equal(t, len(plain)+1, len(b), "%s in %q", ahoy, wrap)
			assert.Contains(t, b, want.Code)
		}
	}
}

func TestReportsLineNumberIssues(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)

	res, err := c.Convert([]string{"20 a=1", "10 b=2", "print c"})
	require.NoError(t, err)
	require.Len(t, res.Issues, 2)
	assert.Equal(t, prg.OutOfOrder, res.Issues[0].Kind)
	assert.Equal(t, prg.Unnumbered, res.Issues[1].Kind)
	assert.Equal(t, uint16(0), res.Program.Lines[2].Number)
}

func TestLineNumberOverflow(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)
	_, err = c.Convert([]string{"70000 end"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "program line 1")
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("  10 PRINT \"A\"  \r\n\n   \n20 End\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{`  10 print "a"`, "20 end"}, lines)
}

func TestConvertersAreIndependent(t *testing.T) {
	pet := DefaultOptions()
	pet.Source = mnemonic.Pet
	pet.LoadAddress = 0x0401

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts := DefaultOptions()
			src := `10 print "{cl}"`
			if i%2 == 1 {
				opts = pet
				src = `10 print "{left}"`
			}
			res, err := Convert(strings.NewReader(src), opts)
			if assert.NoError(t, err) {
				results[i] = res.Program.Bytes()
			}
		}(i)
	}
	wg.Wait()

	for i, b := range results {
		require.NotNil(t, b)
		assert.Equal(t, byte(157), b[9], "run %d", i)
		if i%2 == 1 {
			assert.Equal(t, []byte{0x01, 0x04}, b[:2])
		} else {
			assert.Equal(t, []byte{0x01, 0x08}, b[:2])
		}
	}
}

func TestParseLoadAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"0x0801", 0x0801, false},
		{"0X1001", 0x1001, false},
		{"1201", 0x1201, false},
		{"ffff", 0xFFFF, false},
		{"0x10000", 0, true},
		{"", 0, true},
		{"0x", 0, true},
		{"zz", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseLoadAddress(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
