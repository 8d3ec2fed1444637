package typein

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"typein/pkg/mnemonic"
	"typein/pkg/prg"
	"typein/pkg/tokens"
)

// Options configures a conversion.
type Options struct {
	LoadAddress uint16
	Version     tokens.Version
	Source      mnemonic.Dialect
}

// DefaultOptions targets a C64 with BASIC 2.0 and Ahoy! listings.
func DefaultOptions() Options {
	return Options{
		LoadAddress: prg.DefaultLoadAddress,
		Version:     tokens.V2,
		Source:      mnemonic.Ahoy,
	}
}

// Targets lists well known load addresses.
var Targets = []struct {
	Address uint16
	Machine string
}{
	{0x0801, "C64 (default)"},
	{0x1001, "VIC20 Unexpanded"},
	{0x0401, "VIC20 +3K"},
	{0x1201, "VIC20 +8K"},
	{0x1201, "VIC20 +16K"},
	{0x1201, "VIC20 +24K"},
}

// ParseLoadAddress reads a hexadecimal address, with or without 0x.
func ParseLoadAddress(s string) (uint16, error) {
	h := strings.TrimSpace(s)
	if len(h) > 1 && h[0] == '0' && (h[1] == 'x' || h[1] == 'X') {
		h = h[2:]
	}
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, errors.Errorf("invalid load address %q: want a hex value from 0x0000 to 0xFFFF", s)
	}
	return uint16(v), nil
}
