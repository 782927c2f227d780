package infix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calclab/infix"
)

func TestProcess(t *testing.T) {
	in := strings.Join([]string{
		"4!-5^2/1*3==-51",
		"1/0",
		"0^0",
		"",
		"(2+3)*4",
	}, "\n")
	want := "Input:  4!-5^2/1*3==-51\n" +
		"Output: true\n" +
		"\n" +
		"Input:  1/0\n" +
		"Output: +Inf\n" +
		"\n" +
		"Input:  0^0\n" +
		"Output: Error: 2: 0^0 is undefined\n" +
		"\n" +
		"Input:  \n" +
		"Output: Error: empty expression\n" +
		"\n" +
		"Input:  (2+3)*4\n" +
		"Output: 20\n" +
		"\n"
	for _, e := range evaluators {
		t.Run(e.name, func(t *testing.T) {
			var b strings.Builder
			err := infix.Process(strings.NewReader(in), &b, e.eval)
			require.NoError(t, err)
			require.Equal(t, want, b.String())
		})
	}
}

func TestProcessLongLine(t *testing.T) {
	// One expression longer than the default bufio.Scanner line cap must
	// still be read, and the lines after it still processed.
	expr := "1" + strings.Repeat("+1", 40000)
	var b strings.Builder
	err := infix.Process(strings.NewReader(expr+"\n1+1\n"), &b, infix.EvalStack)
	require.NoError(t, err)
	want := "Input:  " + expr + "\nOutput: 40001\n\n" +
		"Input:  1+1\nOutput: 2\n\n"
	require.Equal(t, want, b.String())
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte("5-10\n"), 0o644))

	err := infix.ProcessFile(in, out, infix.EvalStack, false)
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "Input:  5-10\nOutput: -5\n\n", string(b))
}

func TestProcessFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(in, []byte("1+1\n"), 0o644))

	err := infix.ProcessFile(in, in, infix.EvalStack, false)
	require.IsType(t, &infix.OverwriteError{}, err)

	// The input must be untouched after the refusal.
	b, err := os.ReadFile(in)
	require.NoError(t, err)
	require.Equal(t, "1+1\n", string(b))
}
