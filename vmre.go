// Package vmre implements a small regular expression engine. A pattern is
// parsed into an AST, lowered to a bytecode program, and executed by a
// backtracking virtual machine.
//
// Supported syntax: literals, concatenation, alternation (|), grouping
// with parentheses, the quantifiers ? * +, the wildcard . (one rune, never
// empty), and backslash escapes of the metacharacters * + \ ? ( ) |.
// Matching is leftmost-first with greedy quantifiers. Pathological
// patterns such as nested optional quantifiers can take exponential time.
package vmre

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// SyntaxError wraps the parse or code generation error that made a
// pattern uncompilable. The cause is reachable through errors.Unwrap.
type SyntaxError struct {
	Expr string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("vmre: parsing %q: %v", e.Expr, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Regexp is a compiled pattern. It is immutable and safe for concurrent
// use by multiple goroutines.
type Regexp struct {
	expr    string
	prog    *Prog
	machine *Machine
	filter  *prefilter
}

// Compile parses and compiles a pattern. On failure it returns a
// *SyntaxError wrapping the underlying cause.
func Compile(expr string) (*Regexp, error) {
	parser := NewParser(expr)
	node, err := parser.Parse()
	if err != nil {
		return nil, &SyntaxError{Expr: expr, Err: err}
	}

	prog, err := NewCompiler().Compile(node)
	if err != nil {
		return nil, &SyntaxError{Expr: expr, Err: err}
	}

	return &Regexp{
		expr:    expr,
		prog:    prog,
		machine: NewMachine(prog),
		filter:  newPrefilter(node),
	}, nil
}

func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("vmre: Compile(%q): %v", expr, err))
	}
	return re
}

// String returns the source text used to compile the pattern.
func (re *Regexp) String() string {
	return re.expr
}

// Prog returns the compiled program, for inspection and code generation.
func (re *Regexp) Prog() *Prog {
	return re.prog
}

// IsMatch reports whether the program accepts a prefix of text starting
// at position 0. Most callers want MatchString, which searches all
// starting offsets.
func (re *Regexp) IsMatch(text string) (bool, error) {
	return re.machine.IsMatch([]rune(text))
}

// MatchString reports whether text contains a match of the pattern at any
// starting offset. When the pattern has mandatory literal prefixes, the
// scan skips directly between candidate offsets found by the prefilter.
func (re *Regexp) MatchString(text string) (bool, error) {
	if re.filter != nil {
		return re.matchFiltered(text)
	}

	runes := []rune(text)
	for sp := 0; sp <= len(runes); sp++ {
		ok, err := re.machine.IsMatch(runes[sp:])
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func (re *Regexp) matchFiltered(text string) (bool, error) {
	haystack := []byte(text)
	if !re.filter.hasCandidate(haystack) {
		return false, nil
	}
	at := 0
	for at < len(haystack) {
		pos := re.filter.next(haystack, at)
		if pos < 0 {
			return false, nil
		}
		ok, err := re.machine.IsMatch([]rune(text[pos:]))
		if err != nil || ok {
			return ok, err
		}
		_, w := utf8.DecodeRune(haystack[pos:])
		if w == 0 {
			break
		}
		at = pos + w
	}
	return false, nil
}

// Match reports whether b contains a match of the pattern.
func (re *Regexp) Match(b []byte) (bool, error) {
	return re.MatchString(string(b))
}

// MatchReader reports whether the text read from r contains a match of
// the pattern. The input is read fully into memory to support
// backtracking.
func (re *Regexp) MatchReader(r io.Reader) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	return re.Match(data)
}
