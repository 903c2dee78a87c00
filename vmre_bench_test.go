package vmre

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkLiteral(b *testing.B) {
	re := MustCompile("abc")
	text := "xabcy"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(text)
	}
}

func BenchmarkAlternation(b *testing.B) {
	re := MustCompile("foo|bar|baz")
	text := "aaaaaaaaaa baz"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(text)
	}
}

func BenchmarkStar(b *testing.B) {
	re := MustCompile("a*b")
	text := strings.Repeat("a", 64) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.IsMatch(text)
	}
}

// BenchmarkScanPrefiltered measures the unanchored scan when literal
// prefixes let the Aho-Corasick prefilter skip candidate offsets.
func BenchmarkScanPrefiltered(b *testing.B) {
	re := MustCompile("(needle|spindle)x")
	text := strings.Repeat("hay ", 1024) + "needlex"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(text)
	}
}

// BenchmarkScanExhaustive measures the same haystack with a pattern that
// has no literal prefix, forcing the machine to run at every offset.
func BenchmarkScanExhaustive(b *testing.B) {
	re := MustCompile(".eedlex")
	text := strings.Repeat("hay ", 1024) + "needlex"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.MatchString(text)
	}
}

// BenchmarkPathological exercises the exponential worst case of the
// backtracking design: a?^n a^n matched against a^n.
func BenchmarkPathological(b *testing.B) {
	for n := 1; n <= 8; n++ {
		pattern := strings.Repeat("a?", n) + strings.Repeat("a", n)
		text := strings.Repeat("a", n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				re := MustCompile(pattern)
				re.IsMatch(text)
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MustCompile("Hel+o (Wo*rld|R.+st)!?")
	}
}
