// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import "github.com/pkg/errors"

// A Trace is a wire: a bundle of pins belonging to (usually) different chips
// that are electrically common. Traces hold non-owning references; a pin
// lives as long as its owning chip.
//
type Trace struct {
	pins []*Pin
}

// NewTrace returns an empty trace. Traces meant to be ticked by a board
// should be created with Board.NewTrace instead.
//
func NewTrace() *Trace {
	return &Trace{}
}

// Connect adds p to the trace.
//
func (t *Trace) Connect(p *Pin) {
	t.pins = append(t.pins, p)
}

// ConnectPin connects pin n of chip c to the trace.
//
func (t *Trace) ConnectPin(c Chip, n int) error {
	p, err := c.Pin(n)
	if err != nil {
		return errors.Wrapf(err, "connect %s pin %d", c.Type(), n)
	}
	t.Connect(p)
	return nil
}

// Pins returns the connected pins in connection order.
//
func (t *Trace) Pins() []*Pin {
	return t.pins
}

// Communicate resolves the trace to a single state and drives it into every
// listening pin. Only pins whose type is PinOutput drive the wire: any High
// driver wins, otherwise any Low driver, otherwise the wire floats
// Undefined. The resolved state is written to every non-output pin; output
// pins are never overwritten. Multiple simultaneous High drivers resolve
// silently to High: contention is not modeled.
//
func (t *Trace) Communicate() {
	resolved := Undefined
	for _, p := range t.pins {
		if p.Type != PinOutput {
			continue
		}
		switch p.State {
		case High:
			resolved = High
		case Low:
			if resolved == Undefined {
				resolved = Low
			}
		}
	}
	for _, p := range t.pins {
		if p.Type != PinOutput {
			p.State = resolved
		}
	}
}
