package cpu

import (
	"iter"
	"strings"

	"github.com/ezrec/vm16/translate"
)

// Dump iterates over every register and its value, in register order.
func (cpu *Cpu) Dump() iter.Seq2[Register, uint16] {
	return func(yield func(reg Register, value uint16) bool) {
		for n, value := range cpu.Registers {
			if !yield(Register(n), value) {
				return
			}
		}
	}
}

// Window reads count bytes starting at addr. The address wraps at the top of
// the address space. Registers are not touched.
func (cpu *Cpu) Window(addr uint16, count int) (data []byte, err error) {
	data = make([]byte, 0, count)
	for n := range count {
		var value uint8
		value, err = cpu.Memory.Read8(addr + uint16(n))
		if err != nil {
			return
		}
		data = append(data, value)
	}

	return
}

// FormatWindow renders a memory window as "0xaddr: 0xbb 0xbb ...".
func FormatWindow(addr uint16, data []byte) string {
	words := make([]string, 0, len(data)+1)
	words = append(words, translate.Hex16(addr)+":")
	for _, value := range data {
		words = append(words, translate.Hex8(value))
	}

	return strings.Join(words, " ")
}
