package vmre

import (
	"errors"
	"math"
)

// Match-time errors. These indicate a malformed program or a text too long
// to index, never an ordinary non-match, and abort the whole search.
var (
	ErrSpOverflow          = errors.New("string pointer overflow")
	ErrInstructionNotFound = errors.New("instruction not found")
)

// Sp is an index into the rune sequence of the text being matched.
type Sp uint32

func (sp Sp) inc() (Sp, error) {
	if sp == math.MaxUint32 {
		return sp, ErrSpOverflow
	}
	return sp + 1, nil
}

// Machine executes a compiled program against a text. It holds no mutable
// state between calls and is safe for concurrent use: each call walks the
// program with its own pc/sp cursors.
type Machine struct {
	prog *Prog
}

func NewMachine(prog *Prog) *Machine {
	return &Machine{prog: prog}
}

// IsMatch reports whether the program accepts a prefix of text, starting
// at position 0. It does not require the whole text to be consumed.
func (m *Machine) IsMatch(text []rune) (bool, error) {
	return m.isMatching(text, 0, 0)
}

// isMatching is the recursive backtracking walk. A failed path returns
// (false, nil); only malformed programs produce errors. The first branch
// of a split is explored to exhaustion before the second is tried, which
// encodes leftmost-first, greedy-preferred semantics.
func (m *Machine) isMatching(text []rune, pc Pc, sp Sp) (bool, error) {
	for {
		if int(pc) >= len(m.prog.Insts) {
			return false, ErrInstructionNotFound
		}
		inst := m.prog.Insts[pc]

		switch inst.Op {
		case OpMatch:
			return true, nil

		case OpChar:
			if int(sp) >= len(text) || text[sp] != inst.Val {
				return false, nil
			}
			var err error
			if pc, err = pc.inc(); err != nil {
				return false, err
			}
			if sp, err = sp.inc(); err != nil {
				return false, err
			}

		case OpAny:
			// Matches any rune but never the empty string.
			if int(sp) >= len(text) {
				return false, nil
			}
			var err error
			if pc, err = pc.inc(); err != nil {
				return false, err
			}
			if sp, err = sp.inc(); err != nil {
				return false, err
			}

		case OpJmp:
			pc = inst.Out

		case OpSplit:
			ok, err := m.isMatching(text, inst.Out, sp)
			if err != nil || ok {
				return ok, err
			}
			return m.isMatching(text, inst.Out1, sp)

		default:
			return false, ErrInstructionNotFound
		}
	}
}
