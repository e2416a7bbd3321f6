// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

// A State is the tri-valued logic level carried by a pin. The zero value is
// Undefined, a floating line.
//
type State int

// Logic levels.
const (
	Undefined State = iota
	High
	Low
)

// BitState returns High or Low depending on bit i of b.
//
func BitState(b byte, i uint) State {
	if b&(1<<i) != 0 {
		return High
	}
	return Low
}

func (s State) String() string {
	switch s {
	case High:
		return "High"
	case Low:
		return "Low"
	default:
		return "Undefined"
	}
}
