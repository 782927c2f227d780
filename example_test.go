package infix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/calclab/infix"
)

func ExampleEvalStack() {
	v, _ := infix.EvalStack("4!-5^2/1*3==-51")
	fmt.Println(v)
	// Output: true
}

func ExampleEvalRecursive() {
	v, _ := infix.EvalRecursive("(2+3)*4")
	fmt.Println(v)
	// Output: 20
}

func ExampleProcess() {
	in := strings.NewReader("3!\n2^")
	infix.Process(in, os.Stdout, infix.EvalStack)
	// Output:
	// Input:  3!
	// Output: 6
	//
	// Input:  2^
	// Output: Error: 2: operator "^" is missing an operand
	//
}
