package cpu

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrRegisterUnknown = errors.New(f("register unknown"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
)

// ErrRegisterName reports the name that failed a register lookup.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("register %v unknown", string(err))
}

func (err ErrRegisterName) Unwrap() error {
	return ErrRegisterUnknown
}

// ErrOpcode locates the instruction an execution error happened in.
type ErrOpcode struct {
	Address uint16 // Address of the opcode byte.
	Opcode  Opcode
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v %v at %v", translate.Hex8(uint8(eo.Opcode)), eo.Opcode.String(), translate.Hex16(eo.Address))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
