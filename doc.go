// Package calcbrain implements the model of a keypad RPN calculator.
//
// An Engine accumulates key presses as a stack of tokens: numbers, variable
// and constant names, and operators. Every push evaluates the stack from the
// most recent token backward, so pushing 5, then 3, then "−" gives 2. The
// engine can also describe its stack as conventional infix text, e.g.
// "(3.0+4.0)×5.0=", with parentheses only where precedence needs them.
//
// Errors such as division by zero do not stop evaluation. The engine still
// computes a result (possibly Inf or NaN) and reports the first error it
// found alongside it.
//
package calcbrain
