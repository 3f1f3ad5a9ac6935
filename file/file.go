/*
File    : cc/file/file.go
*/

// Package file performs the compiler's only two file-system
// operations: reading the source text and writing the emitted
// assembly. Both are scoped acquisitions with guaranteed closure on
// all exit paths, including panics.
package file

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// IOError signals that the input could not be read or the output
// could not be written.
type IOError struct {
	Text string
}

func (e *IOError) Error() string {
	return e.Text
}

// ReadSource reads the full contents of the file at path, panicking
// with an *IOError if it cannot be opened or read.
func ReadSource(path string) string {
	f, err := os.Open(path)
	if err != nil {
		panic(&IOError{Text: fmt.Sprintf("Failed to read input file '%s': %v", path, err)})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		panic(&IOError{Text: fmt.Sprintf("Failed to read input file '%s': %v", path, err)})
	}
	return string(data)
}

// WriteOutput writes content to the file at path, creating or
// truncating it, and panics with an *IOError on any failure.
func WriteOutput(path string, content string) {
	f, err := os.Create(path)
	if err != nil {
		panic(&IOError{Text: fmt.Sprintf("Failed to write output file '%s': %v", path, err)})
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		panic(&IOError{Text: fmt.Sprintf("Failed to write output file '%s': %v", path, err)})
	}
}

// OutputPath derives the assembly output path from the input path: a
// trailing ".i" suffix is rewritten to ".s"; any other suffix (or no
// suffix) simply gets ".s" appended.
func OutputPath(inputPath string) string {
	if strings.HasSuffix(inputPath, ".i") {
		return strings.TrimSuffix(inputPath, ".i") + ".s"
	}
	return inputPath + ".s"
}
