package vmre

import (
	"fmt"
	"io"
	"unicode"

	"github.com/dave/jennifer/jen"
)

// modulePath is the import path emitted into generated files.
const modulePath = "vmre"

// GenerateGo writes a Go source file that embeds the compiled program of
// re as a package-level machine, so a fixed pattern can be compiled once
// at build time instead of on every process start. The file declares:
//
//	var <name> = vmre.NewMachine(...)
//	func Match<name>(text string) (bool, error)
//
// name must be a valid exported Go identifier.
func GenerateGo(w io.Writer, pkg, name string, re *Regexp) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("vmre: generated name %q must be an exported identifier", name)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by vmregen. DO NOT EDIT.")

	insts := make([]jen.Code, 0, len(re.prog.Insts))
	for _, inst := range re.prog.Insts {
		insts = append(insts, instValue(inst))
	}

	progVar := unexport(name) + "Prog"
	f.Var().Id(progVar).Op("=").Op("&").Qual(modulePath, "Prog").Values(jen.Dict{
		jen.Id("Insts"): jen.Index().Qual(modulePath, "Inst").Values(insts...),
	})

	f.Commentf("%s is the compiled machine for the pattern %q.", name, re.expr)
	f.Var().Id(name).Op("=").Qual(modulePath, "NewMachine").Call(jen.Id(progVar))

	f.Commentf("Match%s reports whether the pattern %q accepts a prefix of text.", name, re.expr)
	f.Func().Id("Match"+name).Params(jen.Id("text").String()).Params(jen.Bool(), jen.Error()).Block(
		jen.Return(jen.Id(name).Dot("IsMatch").Call(jen.Index().Rune().Parens(jen.Id("text")))),
	)

	return f.Render(w)
}

func instValue(inst Inst) jen.Code {
	d := jen.Dict{
		jen.Id("Op"): jen.Qual(modulePath, opName(inst.Op)),
	}
	switch inst.Op {
	case OpChar:
		d[jen.Id("Val")] = jen.LitRune(inst.Val)
	case OpJmp:
		d[jen.Id("Out")] = jen.Lit(int(inst.Out))
	case OpSplit:
		d[jen.Id("Out")] = jen.Lit(int(inst.Out))
		d[jen.Id("Out1")] = jen.Lit(int(inst.Out1))
	}
	return jen.Values(d)
}

func opName(op OpCode) string {
	switch op {
	case OpMatch:
		return "OpMatch"
	case OpChar:
		return "OpChar"
	case OpAny:
		return "OpAny"
	case OpJmp:
		return "OpJmp"
	case OpSplit:
		return "OpSplit"
	}
	panic(fmt.Sprintf("vmre: unknown opcode %d", op))
}

func unexport(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
