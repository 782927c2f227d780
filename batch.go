package infix

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// EvalFunc evaluates a single expression. EvalStack and EvalRecursive are
// both EvalFuncs.
type EvalFunc func(string) (Value, error)

// maxLineLen is the longest batch input line Process accepts, in bytes.
const maxLineLen = 16 << 20

// Process reads one expression per line from r and writes, for each, an
// echo of the input, the result or the error, and a blank separator line:
//
//	Input:  4!-5^2/1*3==-51
//	Output: true
//
// A failure to evaluate one line never aborts the batch; it is written as
// "Output: Error: <message>" and processing continues with the next line.
// The returned error reports read or write failures only.
func Process(r io.Reader, w io.Writer, eval EvalFunc) error {
	sc := bufio.NewScanner(r)
	// The default 64KiB line cap would abort the whole batch on one
	// oversized expression.
	sc.Buffer(nil, maxLineLen)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		line := sc.Text()
		fmt.Fprintf(bw, "Input:  %s\n", line)
		v, err := eval(line)
		if err != nil {
			fmt.Fprintf(bw, "Output: Error: %v\n\n", err)
		} else {
			fmt.Fprintf(bw, "Output: %v\n\n", v)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// OverwriteError indicates a refusal to write batch output over the batch
// input file.
type OverwriteError struct {
	// Path is the input path that was also given as the output path.
	Path string
}

func (err *OverwriteError) Error() string {
	return "output would overwrite input " + err.Path + " without the overwrite flag"
}

// ProcessFile runs Process from one file to another. Unless overwrite is
// set, out must name a different path than in.
func ProcessFile(in, out string, eval EvalFunc, overwrite bool) error {
	if !overwrite && in == out {
		return &OverwriteError{Path: in}
	}
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := Process(src, dst, eval); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
