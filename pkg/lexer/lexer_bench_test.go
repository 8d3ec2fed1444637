package lexer

import "testing"

const benchLine = `print "{clr}{rvon}hello, world{rvof}";:fori=1to100:a$=mid$(b$,i,1):next:rem done`

func BenchmarkTokenize(b *testing.B) {
	lx := newV2(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := lx.Tokenize(benchLine); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSplitLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := SplitLine("  1000 " + benchLine); err != nil {
			b.Fatal(err)
		}
	}
}
