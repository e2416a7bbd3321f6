// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/virtic/virtic"
)

// TypeGenerator is the Generator type tag.
const TypeGenerator = "virtic.Generator"

// Generator pinout.
//
//	       --------
//	 VCC --|1    2|-- GND
//	       --------
const (
	GeneratorVCC = 1
	GeneratorGND = 2
)

// A Generator is a two-pin fixed source modeling a power rail: pin 1 is
// permanently High and pin 2 permanently Low. It has no inputs; both rails
// are rewritten unconditionally every tick.
//
type Generator struct {
	uuid uuid.UUID
	pins []*virtic.Pin
}

// NewGenerator returns a new power source.
func NewGenerator() *Generator {
	id := uuid.New()
	g := &Generator{
		uuid: id,
		pins: []*virtic.Pin{
			virtic.NewPin(id, GeneratorVCC, virtic.PinOutput),
			virtic.NewPin(id, GeneratorGND, virtic.PinOutput),
		},
	}
	g.pins[GeneratorVCC-1].State = virtic.High
	g.pins[GeneratorGND-1].State = virtic.Low
	return g
}

// UUID implements virtic.Chip.
func (g *Generator) UUID() uuid.UUID { return g.uuid }

// Type implements virtic.Chip.
func (g *Generator) Type() string { return TypeGenerator }

// PinCount implements virtic.Chip.
func (g *Generator) PinCount() int { return len(g.pins) }

// Pin implements virtic.Chip.
func (g *Generator) Pin(n int) (*virtic.Pin, error) {
	if n < 1 || n > len(g.pins) {
		return nil, errors.Wrapf(virtic.ErrPinRange, "%s pin %d", TypeGenerator, n)
	}
	return g.pins[n-1], nil
}

// Run implements virtic.Chip.
func (g *Generator) Run(time.Duration) {
	g.pins[GeneratorVCC-1].State = virtic.High
	g.pins[GeneratorGND-1].State = virtic.Low
}

// SaveData implements virtic.Chip.
func (g *Generator) SaveData() []string { return nil }

// LoadData implements virtic.Chip.
func (g *Generator) LoadData([]string) error { return nil }
