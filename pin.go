// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import "github.com/google/uuid"

// A PinType tells which side of a wire a pin is on. Chips may flip it at run
// time: memory chips switch their data pins between PinInput and PinOutput
// depending on their control lines.
//
type PinType int

// Pin directions.
const (
	PinUndefined PinType = iota
	PinInput
	PinOutput
)

func (t PinType) String() string {
	switch t {
	case PinInput:
		return "Input"
	case PinOutput:
		return "Output"
	default:
		return "Undefined"
	}
}

// A Pin is a single chip terminal. Pins are created by their owning chip at
// construction and shared by pointer with traces and the board. The write
// discipline is: while a pin's type is PinOutput only its owning chip writes
// it, and traces write every other pin during resolution.
//
type Pin struct {
	Chip   uuid.UUID // owning chip
	Number int       // 1-based position within the owning chip
	Type   PinType
	State  State
}

// NewPin creates a pin for the chip identified by owner.
//
func NewPin(owner uuid.UUID, number int, typ PinType) *Pin {
	return &Pin{Chip: owner, Number: number, Type: typ}
}
