// Package infix evaluates arithmetic and boolean infix expressions given as
// flat strings, such as "4!-5^2/1*3==-51".
//
// The package provides two independent evaluation strategies over the same
// token stream: EvalStack runs a single left-to-right pass with an operand
// stack and an operator stack, and EvalRecursive splits the token sequence
// at parentheses and at the loosest-binding operator, divide-and-conquer
// style. The two must produce identical results for every valid input; they
// exist side by side so each can check the other.
//
// Results are tagged values: arithmetic operators produce numbers (IEEE
// float64, so "1/0" is +Inf rather than an error), comparison and equality
// operators produce booleans. Every failure caused by the input is a typed
// error implementing EvalError.
package infix
