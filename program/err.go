package program

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("program not defined"))
	ErrProgramSize    = errors.New(f("program does not fit in memory"))
	ErrElementType    = errors.New(f("element not an int or list"))
	ErrElementByte    = errors.New(f("element not a byte"))
	ErrValueType      = errors.New(f("value not an int"))
	ErrValueRange     = errors.New(f("value out of range"))
)

// ErrProgram reports the program file an error was found in.
type ErrProgram struct {
	Name string
	Err  error
}

func (err *ErrProgram) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}

// ErrElement reports the flattened index of a bad program element.
type ErrElement struct {
	Index int
	Err   error
}

func (err *ErrElement) Error() string {
	return f("program[%d] %v", err.Index, err.Err)
}

func (err *ErrElement) Unwrap() error {
	return err.Err
}

// ErrGlobal reports the script global a bad value was bound to.
type ErrGlobal struct {
	Name string
	Err  error
}

func (err *ErrGlobal) Error() string {
	return f("%v %v", err.Name, err.Err)
}

func (err *ErrGlobal) Unwrap() error {
	return err.Err
}
