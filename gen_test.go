package vmre

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGo(t *testing.T) {
	re := MustCompile("a|b")

	var buf strings.Builder
	require.NoError(t, GenerateGo(&buf, "patterns", "AorB", re))
	src := buf.String()

	assert.Contains(t, src, "Code generated by vmregen. DO NOT EDIT.")
	assert.Contains(t, src, "package patterns")
	assert.Contains(t, src, `"vmre"`)
	assert.Contains(t, src, "var aorBProg = &vmre.Prog{")
	assert.Contains(t, src, "vmre.OpSplit")
	assert.Contains(t, src, "vmre.OpChar")
	assert.Contains(t, src, "vmre.OpJmp")
	assert.Contains(t, src, "vmre.OpMatch")
	assert.Contains(t, src, "var AorB = vmre.NewMachine(aorBProg)")
	assert.Contains(t, src, "func MatchAorB(text string) (bool, error)")
}

func TestGenerateGoEmitsAllInstructions(t *testing.T) {
	re := MustCompile("xy?")

	var buf strings.Builder
	require.NoError(t, GenerateGo(&buf, "p", "XY", re))
	src := buf.String()

	// One instruction literal per compiled instruction.
	assert.Equal(t, len(re.Prog().Insts), strings.Count(src, "Op:"))
	assert.Contains(t, src, "'x'")
	assert.Contains(t, src, "'y'")
}

func TestGenerateGoRejectsUnexportedName(t *testing.T) {
	re := MustCompile("a")
	var buf strings.Builder
	assert.Error(t, GenerateGo(&buf, "p", "aorb", re))
	assert.Error(t, GenerateGo(&buf, "p", "", re))
}
