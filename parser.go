package vmre

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Parse errors. InvalidEscapeError carries the offending rune and is
// matched with errors.As; the rest are sentinels matched with errors.Is.
var (
	ErrMissingOperand        = errors.New("missing operand")
	ErrUnclosedParenthesis   = errors.New("unclosed parenthesis")
	ErrUnexpectedParenthesis = errors.New("unexpected parenthesis")
	ErrEmpty                 = errors.New("empty expression")
)

// InvalidEscapeError reports a backslash followed by a character that is
// not an escapable metacharacter. A pattern ending in a bare backslash is
// reported with Char set to utf8.RuneError.
type InvalidEscapeError struct {
	Char rune
}

func (e *InvalidEscapeError) Error() string {
	if e.Char == utf8.RuneError {
		return "invalid escape at end of pattern"
	}
	return fmt.Sprintf("invalid escape character %q", e.Char)
}

// Parser parses a pattern string into an AST in a single left-to-right
// scan. It keeps a buffer of completed sub-expressions at the current
// grouping level (concat), a buffer of completed alternatives (alt), and a
// stack of saved buffer pairs, one entry per open group.
type Parser struct {
	input string
	pos   int

	concat []Node
	alt    []Node
	stack  []groupState
}

type groupState struct {
	concat []Node
	alt    []Node
}

func NewParser(input string) *Parser {
	return &Parser{input: input}
}

func (p *Parser) Parse() (Node, error) {
	for p.pos < len(p.input) {
		ch := p.consume()
		switch ch {
		case '|':
			if len(p.concat) == 0 {
				return nil, ErrMissingOperand
			}
			p.pushAlternative()
		case '?':
			if err := p.wrapLast(func(body Node) Node { return &Question{Body: body} }); err != nil {
				return nil, err
			}
		case '*':
			if err := p.wrapLast(func(body Node) Node { return &Star{Body: body} }); err != nil {
				return nil, err
			}
		case '+':
			if err := p.wrapLast(func(body Node) Node { return &Plus{Body: body} }); err != nil {
				return nil, err
			}
		case '(':
			p.stack = append(p.stack, groupState{concat: p.concat, alt: p.alt})
			p.concat = nil
			p.alt = nil
		case ')':
			if len(p.stack) == 0 {
				return nil, ErrUnexpectedParenthesis
			}
			prev := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]

			// An empty group contributes nothing.
			if len(p.concat) == 0 {
				p.concat = prev.concat
				p.alt = prev.alt
				continue
			}

			p.pushAlternative()
			inner := foldAlternatives(p.alt)
			p.concat = append(prev.concat, inner)
			p.alt = prev.alt
		case '.':
			p.concat = append(p.concat, &AnyChar{})
		case '\\':
			if p.pos >= len(p.input) {
				return nil, &InvalidEscapeError{Char: utf8.RuneError}
			}
			esc := p.consume()
			switch esc {
			case '*', '+', '\\', '?', '(', ')', '|':
				p.concat = append(p.concat, &Literal{Rune: esc})
			default:
				return nil, &InvalidEscapeError{Char: esc}
			}
		default:
			p.concat = append(p.concat, &Literal{Rune: ch})
		}
	}

	if len(p.stack) > 0 {
		return nil, ErrUnclosedParenthesis
	}

	if len(p.concat) == 0 {
		// A pending alternative with no right operand, e.g. "a|".
		if len(p.alt) > 0 {
			return nil, ErrMissingOperand
		}
	} else {
		p.pushAlternative()
	}

	if len(p.alt) == 0 {
		return nil, ErrEmpty
	}
	return foldAlternatives(p.alt), nil
}

// pushAlternative collapses the concat buffer into a single node and moves
// it to the alt buffer. A singleton is hoisted rather than wrapped.
func (p *Parser) pushAlternative() {
	if len(p.concat) == 1 {
		p.alt = append(p.alt, p.concat[0])
	} else {
		p.alt = append(p.alt, &Concat{Nodes: p.concat})
	}
	p.concat = nil
}

// wrapLast replaces the most recent node in the concat buffer with a
// quantifier node around it.
func (p *Parser) wrapLast(wrap func(Node) Node) error {
	if len(p.concat) == 0 {
		return ErrMissingOperand
	}
	last := p.concat[len(p.concat)-1]
	p.concat[len(p.concat)-1] = wrap(last)
	return nil
}

// foldAlternatives chains completed alternatives into a right-leaning
// Alternate tree. A single alternative is returned as-is.
func foldAlternatives(alt []Node) Node {
	node := alt[len(alt)-1]
	for i := len(alt) - 2; i >= 0; i-- {
		node = &Alternate{Left: alt[i], Right: node}
	}
	return node
}

func (p *Parser) consume() rune {
	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += w
	return r
}
