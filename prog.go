package vmre

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrPcOverflow is returned when the program counter would exceed its
// addressable range, during either compilation or matching.
var ErrPcOverflow = errors.New("program counter overflow")

// Pc is an index into a program's instruction sequence.
type Pc uint32

// inc returns pc advanced by one. Wraparound is an error, never silent.
func (pc Pc) inc() (Pc, error) {
	if pc == math.MaxUint32 {
		return pc, ErrPcOverflow
	}
	return pc + 1, nil
}

type OpCode int

const (
	OpMatch OpCode = iota // Terminate with success
	OpChar                // Match a specific rune
	OpAny                 // Match any rune (never zero-width)
	OpJmp                 // Jump to Out
	OpSplit               // Try Out first, then Out1
)

// Inst is a single instruction of a compiled program.
type Inst struct {
	Op   OpCode
	Val  rune // For OpChar
	Out  Pc   // Jump target (primary)
	Out1 Pc   // Jump target (alternative, for OpSplit)
}

// Prog is a compiled pattern program. It is immutable after compilation
// and may be shared across concurrent matching calls.
type Prog struct {
	Insts []Inst
}

func (i Inst) String() string {
	switch i.Op {
	case OpMatch:
		return "match"
	case OpChar:
		return fmt.Sprintf("char %q", i.Val)
	case OpAny:
		return "any"
	case OpJmp:
		return fmt.Sprintf("jmp %d", i.Out)
	case OpSplit:
		return fmt.Sprintf("split %d, %d", i.Out, i.Out1)
	}
	return "?"
}

// String returns a numbered listing of the program.
func (p *Prog) String() string {
	var b strings.Builder
	for i, inst := range p.Insts {
		fmt.Fprintf(&b, "%3d: %s\n", i, inst)
	}
	return b.String()
}
