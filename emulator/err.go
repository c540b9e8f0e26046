package emulator

import (
	"github.com/ezrec/vm16/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  uint16 // Address of the failing instruction.
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v %v", translate.Hex16(err.Ip), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
