package io

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Address space errors
	ErrAddressUnmapped = errors.New(f("address unmapped"))
	ErrAddressRange    = errors.New(f("address out of device range"))
	ErrRegionInvalid   = errors.New(f("region invalid"))
	ErrRegionUnknown   = errors.New(f("region unknown"))
)

// ErrAddress records the address a device or mapper access failed at.
type ErrAddress struct {
	Address uint16
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("%v %v", translate.Hex16(err.Address), err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
