package io

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/vm16/translate"
)

// Token identifies one mapped region. It is returned by Map and accepted by
// Unmap.
type Token uint32

// Region is a range of addresses [Start, End] answered by Device.
// With Remap set, the device sees addresses relative to Start.
type Region struct {
	Token  Token
	Device Device
	Start  uint16
	End    uint16
	Remap  bool
}

// Contains returns true if addr falls inside the region.
func (rg *Region) Contains(addr uint16) bool {
	return addr >= rg.Start && addr <= rg.End
}

// Translate converts a global address to the address the device sees.
func (rg *Region) Translate(addr uint16) uint16 {
	if rg.Remap {
		return addr - rg.Start
	}
	return addr
}

// Mapper dispatches addresses to devices. Regions may overlap; the most
// recently mapped region wins.
type Mapper struct {
	Verbose bool // If set, logs map and unmap actions.

	regions []Region // Most recently mapped first.
	token   Token    // Last issued token.
}

var _ Device = (*Mapper)(nil)

// Map attaches a device to [start, end]. The region is checked before every
// previously mapped region.
func (mm *Mapper) Map(device Device, start, end uint16, remap bool) (token Token, err error) {
	if device == nil || start > end {
		err = ErrRegionInvalid
		return
	}

	mm.token++
	token = mm.token

	mm.regions = slices.Insert(mm.regions, 0, Region{
		Token:  token,
		Device: device,
		Start:  start,
		End:    end,
		Remap:  remap,
	})

	if mm.Verbose {
		log.Printf("mapper: map %d [%v, %v] remap:%v", token,
			translate.Hex16(start), translate.Hex16(end), remap)
	}

	return
}

// Unmap removes exactly the region identified by token.
func (mm *Mapper) Unmap(token Token) (err error) {
	index := slices.IndexFunc(mm.regions, func(rg Region) bool {
		return rg.Token == token
	})
	if index < 0 {
		err = ErrRegionUnknown
		return
	}

	mm.regions = slices.Delete(mm.regions, index, index+1)

	if mm.Verbose {
		log.Printf("mapper: unmap %d", token)
	}

	return
}

// Regions iterates over the mapped regions in lookup order.
func (mm *Mapper) Regions() iter.Seq[Region] {
	return func(yield func(rg Region) bool) {
		for _, rg := range mm.regions {
			if !yield(rg) {
				return
			}
		}
	}
}

// Resolve finds the device answering addr and the address it sees.
func (mm *Mapper) Resolve(addr uint16) (device Device, local uint16, err error) {
	for n := range mm.regions {
		rg := &mm.regions[n]
		if rg.Contains(addr) {
			device = rg.Device
			local = rg.Translate(addr)
			return
		}
	}

	err = &ErrAddress{Address: addr, Err: ErrAddressUnmapped}
	return
}

// Read8 reads a byte from the device mapped at addr.
func (mm *Mapper) Read8(addr uint16) (value uint8, err error) {
	device, local, err := mm.Resolve(addr)
	if err != nil {
		return
	}

	return device.Read8(local)
}

// Read16 reads a word from the device mapped at addr.
func (mm *Mapper) Read16(addr uint16) (value uint16, err error) {
	device, local, err := mm.Resolve(addr)
	if err != nil {
		return
	}

	return device.Read16(local)
}

// Write8 writes a byte to the device mapped at addr.
func (mm *Mapper) Write8(addr uint16, value uint8) (err error) {
	device, local, err := mm.Resolve(addr)
	if err != nil {
		return
	}

	return device.Write8(local, value)
}

// Write16 writes a word to the device mapped at addr.
func (mm *Mapper) Write16(addr uint16, value uint16) (err error) {
	device, local, err := mm.Resolve(addr)
	if err != nil {
		return
	}

	return device.Write16(local, value)
}
