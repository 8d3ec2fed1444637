// Command tokdump prints every stage of tokenizing a listing: the source,
// the normalized lines, each framed line and the final file image.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"typein/pkg/listing"
	"typein/pkg/mnemonic"
	"typein/pkg/tokens"
	"typein/pkg/typein"
)

const testSource = `10 PRINT "{SC}{RV}HELLO{RO}"
20 FOR I=1 TO 10:PRINT I;:NEXT
30 REM "{CL}" GOTO
40 GOTO 10
`

func main() {
	loadAddr := flag.String("l", "0x0801", "load address")
	source := flag.String("s", string(mnemonic.Ahoy), "source format (pet or ahoy)")
	version := flag.String("v", string(tokens.V2), "BASIC version")
	flag.Parse()

	src := testSource
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	opts := typein.DefaultOptions()
	var err error
	if opts.LoadAddress, err = typein.ParseLoadAddress(*loadAddr); err != nil {
		fmt.Fprintln(os.Stderr, "options error:", err)
		os.Exit(2)
	}
	if opts.Source, err = mnemonic.ParseDialect(*source); err != nil {
		fmt.Fprintln(os.Stderr, "options error:", err)
		os.Exit(2)
	}
	opts.Version = tokens.Version(*version)

	conv, err := typein.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "options error:", err)
		os.Exit(2)
	}

	fmt.Printf("Source:\n%s\n", src)

	lines, err := typein.ReadLines(strings.NewReader(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	normalized, err := conv.Normalize(lines)
	if err != nil {
		fmt.Fprintln(os.Stderr, "normalize error:", err)
		os.Exit(1)
	}
	fmt.Println("Normalized")
	for _, l := range normalized {
		fmt.Println(" ", l)
	}
	fmt.Println()

	res, err := conv.Convert(lines)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tokenize error:", err)
		os.Exit(1)
	}

	fmt.Println("Lines")
	for _, l := range res.Program.Lines {
		fmt.Printf("  0x%04X -> 0x%04X  %5d  % X\n", l.Addr, l.Next, l.Number, l.Tokens)
		fmt.Printf("  %*s%s\n", 26, "", listing.FormatLine(l, conv.Keywords()))
	}
	for _, issue := range res.Issues {
		fmt.Println("  warning:", issue)
	}
	fmt.Println()

	fmt.Printf("Image (%d bytes)\n", res.Program.Size())
	fmt.Print(hex.Dump(res.Program.Bytes()))
}
