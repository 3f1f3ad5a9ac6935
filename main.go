/*
File: cc/main.go
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/go-mini-cc/cc/asmgen"
	"github.com/go-mini-cc/cc/file"
	"github.com/go-mini-cc/cc/ir"
	"github.com/go-mini-cc/cc/lexer"
	"github.com/go-mini-cc/cc/parser"
)

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses CLI arguments and drives the compile, returning the
// process exit code. The --lex/--parse/--codegen flags are
// advisory/future-reserved per the CLI contract: they are accepted but
// never change the output of the current pipeline.
func run(args []string) int {
	fs := flag.NewFlagSet("compiler", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Bool("lex", false, "stop after lexing (advisory; does not change output)")
	fs.Bool("parse", false, "stop after parsing (advisory; does not change output)")
	fs.Bool("codegen", false, "stop after codegen (advisory; does not change output)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	positional := fs.Args()
	if len(positional) < 1 {
		redColor.Fprintln(os.Stderr, "error: the following required arguments were not provided: <filepath>")
		return 1
	}

	return compile(positional[0])
}

// compile runs the full pipeline for a single input file. Every stage
// signals failure by panicking with a typed error (lexer.LexicalError,
// parser.ExpectedError/TrailingError/ExpressionError, asmgen.InternalError,
// file.IOError); this is the single point where any of them is recovered.
func compile(inputPath string) (exitCode int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "%v\n", recovered)
			exitCode = 1
		}
	}()

	src := file.ReadSource(inputPath)
	tokens := lexer.Lex(src)
	program := parser.Parse(tokens)
	irProgram := ir.Lower(program)

	virtual := asmgen.Lower(irProgram)
	concrete := asmgen.Rewrite(virtual)
	text := asmgen.Emit(concrete)

	outputPath := file.OutputPath(inputPath)
	file.WriteOutput(outputPath, text)

	fmt.Fprintf(os.Stdout, "%s -> %s\n", inputPath, outputPath)
	return 0
}
