package vmre

// Limits for prefix extraction. Without a cap, a deeply nested alternation
// could blow the prefix set up combinatorially.
const (
	maxPrefixLiterals = 64
	maxPrefixLen      = 64
)

// prefixLiterals extracts the set of mandatory prefix literals of node:
// every match of node must start with one of the returned byte strings.
// It reports ok=false when no such non-empty set exists (for example when
// an alternative can start with a wildcard or an optional element), or
// when the set would exceed the extraction limits.
func prefixLiterals(node Node) ([][]byte, bool) {
	switch n := node.(type) {
	case *Literal:
		return [][]byte{[]byte(string(n.Rune))}, true

	case *Concat:
		// A leading run of literals forms a single longer prefix.
		var lit []rune
		for _, child := range n.Nodes {
			l, isLit := child.(*Literal)
			if !isLit || len(lit) >= maxPrefixLen {
				break
			}
			lit = append(lit, l.Rune)
		}
		if len(lit) > 0 {
			return [][]byte{[]byte(string(lit))}, true
		}
		return prefixLiterals(n.Nodes[0])

	case *Alternate:
		left, ok := prefixLiterals(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := prefixLiterals(n.Right)
		if !ok {
			return nil, false
		}
		if len(left)+len(right) > maxPrefixLiterals {
			return nil, false
		}
		return append(left, right...), true

	case *Plus:
		// The body occurs at least once, so its prefixes are mandatory.
		return prefixLiterals(n.Body)
	}

	// Question, Star, AnyChar: no mandatory literal prefix.
	return nil, false
}
