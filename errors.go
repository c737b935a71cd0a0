package main

import "fmt"

// UndefinedWordError reports a token that is neither a known name nor a
// valid number in the current base.
type UndefinedWordError struct{ Token string }

func (err UndefinedWordError) Error() string {
	return fmt.Sprintf("Undefined word: %s", err.Token)
}

// StackUnderflowError reports a callee whose declared lin exceeds the
// current data-stack depth.
type StackUnderflowError struct {
	Name string
	Lin  int
	Have int
}

func (err StackUnderflowError) Error() string {
	return fmt.Sprintf("Data stack underflow: %s needs %d, have %d", err.Name, err.Lin, err.Have)
}

// OutputSizeError reports a post-execution data-stack depth disagreeing
// with the declared effect of the word that just ran.
type OutputSizeError struct {
	Name     string
	Expected int
	Got      int
}

func (err OutputSizeError) Error() string {
	return fmt.Sprintf("Word output size error: %s expected depth %d, got %d", err.Name, err.Expected, err.Got)
}

// UnterminatedCommentError reports end of input within a `( ... )` comment.
type UnterminatedCommentError struct{}

func (UnterminatedCommentError) Error() string { return "Incomplete ( comment" }

// IncompleteProgramError reports end of input while still in Compile mode.
type IncompleteProgramError struct{}

func (IncompleteProgramError) Error() string { return "Incomplete program" }

// ReturnStackNotEmptyError reports R non-empty at the end of a driver call.
type ReturnStackNotEmptyError struct{ Depth int }

func (err ReturnStackNotEmptyError) Error() string {
	return fmt.Sprintf("Return stack must be emptied: %d item(s) left", err.Depth)
}

// InvalidReturnItemError reports a PC on R that does not decode to any
// entry/offset.
type InvalidReturnItemError struct{ PC Cell }

func (err InvalidReturnItemError) Error() string {
	return fmt.Sprintf("Invalid return stack item: %d", int64(err.PC))
}

// ReturnLookupError reports a failed lookup of a value beneath the top of R
// (the `>r`/`r>` slot).
type ReturnLookupError struct{}

func (ReturnLookupError) Error() string { return "Return stack lookup failure" }

// FileNotFoundError reports an include target that could not be read.
type FileNotFoundError struct{ Path string }

func (err FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", err.Path)
}

// NoCreateTargetError reports `word` invoked with no remaining input.
type NoCreateTargetError struct{}

func (NoCreateTargetError) Error() string { return "No target for create" }

// DivisionByZeroError reports «/» with a zero divisor.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string { return "division by zero" }

// InvalidAddressError reports a negative address passed to «!» («@» reads
// a negative address as 0 instead).
type InvalidAddressError struct{ Addr Cell }

func (err InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid memory address: %d", int64(err.Addr))
}

// NotCompilingError reports a compile-only word (literal, postpone, ;,
// ;im, ;r, ;imr) invoked with no active builder.
type NotCompilingError struct{ Word string }

func (err NotCompilingError) Error() string {
	return fmt.Sprintf("%s used outside a definition", err.Word)
}

// TraceUnknownError reports `trace` given a name with no binding. It is a
// query, not a mutation: the interpreter state is left untouched, unlike
// every other error kind here.
type TraceUnknownError struct{ Token string }

func (err TraceUnknownError) Error() string {
	return fmt.Sprintf("Undefined word: %s", err.Token)
}
