// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/virtic/virtic"
)

// Type tags of the memory chips.
const (
	TypeRam256 = "virtic.Ram256"
	TypeRom256 = "virtic.Rom256"
)

// Memory chip pinout, shared by Ram256 and Rom256 (Rom256 leaves WE
// unconnected). All control lines are active low. A0-A6 sit in sequence but
// A7 is relocated to pin 12 on the other side of GND.
//
//	       ---__---
//	 !CS --|1   22|-- VCC
//	 !WE --|2   21|-- NC
//	 !OE --|3   20|-- IO7
//	  A0 --|4   19|-- IO6
//	  A1 --|5   18|-- IO5
//	  A2 --|6   17|-- IO4
//	  A3 --|7   16|-- IO3
//	  A4 --|8   15|-- IO2
//	  A5 --|9   14|-- IO1
//	  A6 --|10  13|-- IO0
//	 GND --|11  12|-- A7
//	       --------
const (
	MemCS  = 1
	MemWE  = 2
	MemOE  = 3
	MemA0  = 4
	MemA1  = 5
	MemA2  = 6
	MemA3  = 7
	MemA4  = 8
	MemA5  = 9
	MemA6  = 10
	MemGND = 11
	MemA7  = 12
	MemIO0 = 13
	MemIO1 = 14
	MemIO2 = 15
	MemIO3 = 16
	MemIO4 = 17
	MemIO5 = 18
	MemIO6 = 19
	MemIO7 = 20
	MemVCC = 22

	memPins = 22
	memSize = 256
)

// A Ram256 is a 256-byte RAM chip with an active-low chip select and a
// bidirectional 8-bit data bus. Asserting WE switches the IO pins to inputs
// and latches their byte at the current address; asserting OE switches them
// to outputs and drives the byte at the current address.
//
// The first tick after power becomes present fills the backing array with
// random bytes, modeling uninitialized memory. Losing power forces every pin
// Undefined and arms the next power-up to randomize again.
//
type Ram256 struct {
	uuid    uuid.UUID
	pins    []*virtic.Pin
	mem     [memSize]byte
	powered bool
}

// NewRam256 returns a new, unpowered RAM chip.
func NewRam256() *Ram256 {
	id := uuid.New()
	r := &Ram256{uuid: id, pins: newMemPins(id)}
	return r
}

// UUID implements virtic.Chip.
func (r *Ram256) UUID() uuid.UUID { return r.uuid }

// Type implements virtic.Chip.
func (r *Ram256) Type() string { return TypeRam256 }

// PinCount implements virtic.Chip.
func (r *Ram256) PinCount() int { return len(r.pins) }

// Pin implements virtic.Chip.
func (r *Ram256) Pin(n int) (*virtic.Pin, error) {
	if n < 1 || n > len(r.pins) {
		return nil, errors.Wrapf(virtic.ErrPinRange, "%s pin %d", TypeRam256, n)
	}
	return r.pins[n-1], nil
}

// Run implements virtic.Chip. Write-enable is honored before output-enable;
// asserting both latches the bus byte and then drives it back out.
func (r *Ram256) Run(time.Duration) {
	if !powered(r.pins, MemGND, MemVCC) {
		if r.powered {
			for _, p := range r.pins {
				p.State = virtic.Undefined
			}
			r.powered = false
		}
		return
	}
	if !r.powered {
		// power-up leaves garbage in the cells
		for i := range r.mem {
			r.mem[i] = byte(rand.Intn(memSize))
		}
		r.powered = true
	}
	if r.pins[MemCS-1].State != virtic.Low {
		memBusMode(r.pins, virtic.PinUndefined)
		return
	}
	if r.pins[MemWE-1].State == virtic.Low {
		memBusMode(r.pins, virtic.PinInput)
		r.mem[memAddress(r.pins)] = memBusRead(r.pins)
	}
	if r.pins[MemOE-1].State == virtic.Low {
		memBusMode(r.pins, virtic.PinOutput)
		memBusDrive(r.pins, r.mem[memAddress(r.pins)])
	}
}

// Contents returns a copy of the backing array.
func (r *Ram256) Contents() [memSize]byte { return r.mem }

// SaveData implements virtic.Chip. The contents travel as a hex string, the
// powered flag as ON/OFF.
func (r *Ram256) SaveData() []string {
	flag := "OFF"
	if r.powered {
		flag = "ON"
	}
	return []string{hex.EncodeToString(r.mem[:]), flag}
}

// LoadData implements virtic.Chip.
func (r *Ram256) LoadData(data []string) error {
	if len(data) != 2 {
		return errors.Errorf("want 2 data fields, got %d", len(data))
	}
	if err := decodeMem(&r.mem, data[0]); err != nil {
		return err
	}
	r.powered = data[1] == "ON"
	return nil
}

func (r *Ram256) String() string { return memDump(r.mem[:]) }

// A Rom256 is the read-only sibling of Ram256: same footprint, no write
// path. Contents are set with Program and survive power loss.
//
type Rom256 struct {
	uuid uuid.UUID
	pins []*virtic.Pin
	mem  [memSize]byte
}

// NewRom256 returns a new ROM chip with all-zero contents.
func NewRom256() *Rom256 {
	id := uuid.New()
	return &Rom256{uuid: id, pins: newMemPins(id)}
}

// NewRom256With returns a new ROM chip flashed with data.
func NewRom256With(data [memSize]byte) *Rom256 {
	r := NewRom256()
	r.Program(data)
	return r
}

// Program flashes the chip contents. This is a bench operation, not a bus
// one: no pin configuration can alter ROM contents.
func (r *Rom256) Program(data [memSize]byte) {
	r.mem = data
}

// UUID implements virtic.Chip.
func (r *Rom256) UUID() uuid.UUID { return r.uuid }

// Type implements virtic.Chip.
func (r *Rom256) Type() string { return TypeRom256 }

// PinCount implements virtic.Chip.
func (r *Rom256) PinCount() int { return len(r.pins) }

// Pin implements virtic.Chip.
func (r *Rom256) Pin(n int) (*virtic.Pin, error) {
	if n < 1 || n > len(r.pins) {
		return nil, errors.Wrapf(virtic.ErrPinRange, "%s pin %d", TypeRom256, n)
	}
	return r.pins[n-1], nil
}

// Run implements virtic.Chip.
func (r *Rom256) Run(time.Duration) {
	if !powered(r.pins, MemGND, MemVCC) {
		for _, p := range r.pins {
			p.State = virtic.Undefined
		}
		return
	}
	if r.pins[MemCS-1].State != virtic.Low {
		memBusMode(r.pins, virtic.PinUndefined)
		return
	}
	if r.pins[MemOE-1].State == virtic.Low {
		memBusMode(r.pins, virtic.PinOutput)
		memBusDrive(r.pins, r.mem[memAddress(r.pins)])
	}
}

// Contents returns a copy of the backing array.
func (r *Rom256) Contents() [memSize]byte { return r.mem }

// SaveData implements virtic.Chip.
func (r *Rom256) SaveData() []string {
	return []string{hex.EncodeToString(r.mem[:])}
}

// LoadData implements virtic.Chip.
func (r *Rom256) LoadData(data []string) error {
	if len(data) != 1 {
		return errors.Errorf("want 1 data field, got %d", len(data))
	}
	return decodeMem(&r.mem, data[0])
}

func (r *Rom256) String() string { return memDump(r.mem[:]) }

func newMemPins(id uuid.UUID) []*virtic.Pin {
	pins := make([]*virtic.Pin, memPins)
	for i := range pins {
		pins[i] = virtic.NewPin(id, i+1, virtic.PinInput)
	}
	for n := MemIO0; n <= MemIO7; n++ {
		pins[n-1].Type = virtic.PinOutput
	}
	return pins
}

// memAddress assembles the address value from A0-A7. Undefined address lines
// read as 0.
func memAddress(pins []*virtic.Pin) uint8 {
	var addr uint8
	for i := 0; i < 7; i++ {
		if pins[MemA0-1+i].State == virtic.High {
			addr |= 1 << uint(i)
		}
	}
	if pins[MemA7-1].State == virtic.High {
		addr |= 1 << 7
	}
	return addr
}

// memBusRead assembles the byte currently on the IO pins.
func memBusRead(pins []*virtic.Pin) uint8 {
	var b uint8
	for i := 0; i < 8; i++ {
		if pins[MemIO0-1+i].State == virtic.High {
			b |= 1 << uint(i)
		}
	}
	return b
}

// memBusDrive writes b bit by bit onto the IO pins.
func memBusDrive(pins []*virtic.Pin, b uint8) {
	for i := 0; i < 8; i++ {
		pins[MemIO0-1+i].State = virtic.BitState(b, uint(i))
	}
}

// memBusMode switches the direction of the IO pins.
func memBusMode(pins []*virtic.Pin, t virtic.PinType) {
	for i := 0; i < 8; i++ {
		pins[MemIO0-1+i].Type = t
	}
}

func decodeMem(mem *[memSize]byte, s string) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "memory contents")
	}
	if len(raw) != len(mem) {
		return errors.Errorf("want %d memory bytes, got %d", len(mem), len(raw))
	}
	copy(mem[:], raw)
	return nil
}

func memDump(mem []byte) string {
	var b strings.Builder
	b.WriteString("ADR| 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F")
	b.WriteString("\n---+------------------------------------------------")
	for addr, v := range mem {
		if addr%16 == 0 {
			fmt.Fprintf(&b, "\n %02X|", addr)
		}
		fmt.Fprintf(&b, " %02X", v)
	}
	return b.String()
}
