/*
File: cc/main_test.go
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingPositionalArgumentExitsNonZero(t *testing.T) {
	assert.Equal(t, 1, run(nil))
	assert.Equal(t, 1, run([]string{"--lex"}))
}

func TestRun_AdvisoryFlagsAreAcceptedAndIgnored(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.i")
	require.NoError(t, os.WriteFile(input, []byte("int main(void) { return 2; }"), 0644))

	code := run([]string{"--lex", "--parse", "--codegen", input})
	assert.Equal(t, 0, code)
}

func TestCompile_EndToEndProducesExpectedAssembly(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.i")
	require.NoError(t, os.WriteFile(input, []byte("int main(void) { return 2; }"), 0644))

	code := compile(input)
	require.Equal(t, 0, code)

	out, err := os.ReadFile(filepath.Join(dir, "prog.s"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "  .globl main\n")
	assert.Contains(t, string(out), "  movl $2, %eax\n")
	assert.Contains(t, string(out), ".section .note.GNU-stack,\"\",@progbits\n")
}

func TestCompile_UnknownLexemeExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.i")
	require.NoError(t, os.WriteFile(input, []byte("int main(void) { return 123bar; }"), 0644))

	assert.Equal(t, 1, compile(input))
}

func TestCompile_MissingInputFileExitsNonZero(t *testing.T) {
	assert.Equal(t, 1, compile(filepath.Join(t.TempDir(), "missing.i")))
}
