package vmre

import "fmt"

// Compiler lowers an AST into a flat instruction sequence.
//
// The pc field always equals len(insts): pc is the index of the next
// instruction to be emitted. Forward jump targets are emitted as
// placeholders and patched by index once the destination is known.
type Compiler struct {
	pc    Pc
	insts []Inst
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) Compile(node Node) (*Prog, error) {
	c.pc = 0
	c.insts = nil

	if err := c.compileNode(node); err != nil {
		return nil, err
	}
	if _, err := c.emit(Inst{Op: OpMatch}); err != nil {
		return nil, err
	}
	return &Prog{Insts: c.insts}, nil
}

// emit appends an instruction and returns the slot it was placed at.
func (c *Compiler) emit(i Inst) (Pc, error) {
	at := c.pc
	next, err := c.pc.inc()
	if err != nil {
		return 0, err
	}
	c.pc = next
	c.insts = append(c.insts, i)
	return at, nil
}

func (c *Compiler) compileNode(node Node) error {
	switch n := node.(type) {
	case *Literal:
		_, err := c.emit(Inst{Op: OpChar, Val: n.Rune})
		return err

	case *AnyChar:
		_, err := c.emit(Inst{Op: OpAny})
		return err

	case *Concat:
		for _, child := range n.Nodes {
			if err := c.compileNode(child); err != nil {
				return err
			}
		}
		return nil

	case *Alternate:
		return c.compileAlternate(n)

	case *Question:
		return c.compileQuestion(n)

	case *Star:
		return c.compileStar(n)

	case *Plus:
		return c.compilePlus(n)
	}
	panic(fmt.Sprintf("vmre: unknown AST node %T", node))
}

// lhs|rhs
//
//	    split L1, L2
//	L1: lhs
//	    jmp L3
//	L2: rhs
//	L3:
func (c *Compiler) compileAlternate(n *Alternate) error {
	split, err := c.emit(Inst{Op: OpSplit})
	if err != nil {
		return err
	}
	c.insts[split].Out = c.pc // L1
	if err := c.compileNode(n.Left); err != nil {
		return err
	}
	jmp, err := c.emit(Inst{Op: OpJmp})
	if err != nil {
		return err
	}
	c.patchSplit(split, c.pc) // L2
	if err := c.compileNode(n.Right); err != nil {
		return err
	}
	c.patchJmp(jmp, c.pc) // L3
	return nil
}

// e?
//
//	    split L1, L2
//	L1: e
//	L2:
func (c *Compiler) compileQuestion(n *Question) error {
	split, err := c.emit(Inst{Op: OpSplit})
	if err != nil {
		return err
	}
	c.insts[split].Out = c.pc // L1
	if err := c.compileNode(n.Body); err != nil {
		return err
	}
	c.patchSplit(split, c.pc) // L2
	return nil
}

// e*
//
//	L1: split L2, L3
//	L2: e
//	    jmp L1
//	L3:
func (c *Compiler) compileStar(n *Star) error {
	l1, err := c.emit(Inst{Op: OpSplit})
	if err != nil {
		return err
	}
	c.insts[l1].Out = c.pc // L2
	if err := c.compileNode(n.Body); err != nil {
		return err
	}
	if _, err := c.emit(Inst{Op: OpJmp, Out: l1}); err != nil {
		return err
	}
	c.patchSplit(l1, c.pc) // L3
	return nil
}

// e+
//
//	L1: e
//	    split L1, L2
//	L2:
func (c *Compiler) compilePlus(n *Plus) error {
	l1 := c.pc
	if err := c.compileNode(n.Body); err != nil {
		return err
	}
	split, err := c.emit(Inst{Op: OpSplit, Out: l1})
	if err != nil {
		return err
	}
	c.insts[split].Out1 = c.pc // L2
	return nil
}

// patchSplit fills in the second target of a previously emitted OpSplit.
// A different instruction kind at the slot is a compiler bug.
func (c *Compiler) patchSplit(at, target Pc) {
	if c.insts[at].Op != OpSplit {
		panic(fmt.Sprintf("vmre: expected split at %d, found %s", at, c.insts[at]))
	}
	c.insts[at].Out1 = target
}

// patchJmp fills in the target of a previously emitted OpJmp.
func (c *Compiler) patchJmp(at, target Pc) {
	if c.insts[at].Op != OpJmp {
		panic(fmt.Sprintf("vmre: expected jmp at %d, found %s", at, c.insts[at]))
	}
	c.insts[at].Out = target
}
