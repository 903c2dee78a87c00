package vmre

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// prefilter finds candidate start offsets for the unanchored scan. Any
// match of the pattern must begin with one of its literals, so offsets
// between candidates can be skipped without running the machine.
//
// For literal sets an Aho-Corasick automaton rejects candidate-free
// haystacks in one pass; candidate enumeration itself walks the literals
// with bytes.Index. Automaton.Find reports the match reaching a match
// state first, i.e. the earliest *end*, which for overlapping literals
// is not necessarily the earliest start, so it cannot drive the scan.
type prefilter struct {
	lits [][]byte
	auto *ahocorasick.Automaton
}

// newPrefilter extracts the mandatory prefix literals of node and builds
// a prefilter over them. It returns nil when the pattern has no usable
// literal prefixes; the caller then falls back to scanning every offset.
func newPrefilter(node Node) *prefilter {
	prefixes, ok := prefixLiterals(node)
	if !ok || len(prefixes) == 0 {
		return nil
	}

	f := &prefilter{lits: prefixes}
	if len(prefixes) > 1 {
		builder := ahocorasick.NewBuilder()
		for _, p := range prefixes {
			builder.AddPattern(p)
		}
		if auto, err := builder.Build(); err == nil {
			f.auto = auto
		}
	}
	return f
}

// hasCandidate reports whether any prefix literal occurs in haystack.
// With a single literal next already answers this in one Index call.
func (f *prefilter) hasCandidate(haystack []byte) bool {
	if f.auto == nil {
		return true
	}
	return f.auto.IsMatch(haystack)
}

// next returns the smallest candidate offset at or after at, or -1 when
// no candidate remains.
func (f *prefilter) next(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	best := -1
	for _, lit := range f.lits {
		i := bytes.Index(haystack[at:], lit)
		if i < 0 {
			continue
		}
		if best < 0 || at+i < best {
			best = at + i
		}
	}
	return best
}
