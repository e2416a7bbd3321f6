// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/virtic/virtic"
)

// Type tags of the gate chips.
const (
	TypeGateOr    = "virtic.GateOr"
	TypeGateAnd   = "virtic.GateAnd"
	TypeGateNand  = "virtic.GateNand"
	TypeGateNor   = "virtic.GateNor"
	TypeGateNot   = "virtic.GateNot"
	TypeGateAnd3  = "virtic.GateAnd3"
	TypeGateNand3 = "virtic.GateNand3"
	TypeGateNor3  = "virtic.GateNor3"
)

// Every gate chip is a 14-pin package with the supply on the same corners.
const (
	GateGND = 7
	GateVCC = 14

	gatePins = 14
)

// Quad 2-input pinout, shared by GateOr, GateAnd and GateNand.
//
//	       ---__---
//	   A --|1   14|-- VCC
//	   B --|2   13|-- E
//	 A·B --|3   12|-- F
//	   C --|4   11|-- E·F
//	   D --|5   10|-- G
//	 C·D --|6    9|-- H
//	 GND --|7    8|-- G·H
//	       --------
const (
	Quad2A  = 1
	Quad2B  = 2
	Quad2AB = 3
	Quad2C  = 4
	Quad2D  = 5
	Quad2CD = 6
	Quad2E  = 13
	Quad2F  = 12
	Quad2EF = 11
	Quad2G  = 10
	Quad2H  = 9
	Quad2GH = 8
)

// GateNor pinout (outputs lead each gate group).
//
//	          ---__---
//	 !(A|B) --|1   14|-- VCC
//	      A --|2   13|-- !(E|F)
//	      B --|3   12|-- E
//	 !(C|D) --|4   11|-- F
//	      C --|5   10|-- !(G|H)
//	      D --|6    9|-- G
//	    GND --|7    8|-- H
//	          --------
const (
	NorAB = 1
	NorA  = 2
	NorB  = 3
	NorCD = 4
	NorC  = 5
	NorD  = 6
	NorEF = 13
	NorE  = 12
	NorF  = 11
	NorGH = 10
	NorG  = 9
	NorH  = 8
)

// GateNot (hex inverter) pinout.
const (
	NotA    = 1
	NotAOut = 2
	NotB    = 3
	NotBOut = 4
	NotC    = 5
	NotCOut = 6
	NotD    = 13
	NotDOut = 12
	NotE    = 11
	NotEOut = 10
	NotF    = 9
	NotFOut = 8
)

// Triple 3-input pinout, shared by GateAnd3, GateNand3 and GateNor3.
const (
	Triple3A   = 1
	Triple3B   = 2
	Triple3C   = 13
	Triple3ABC = 12
	Triple3D   = 3
	Triple3E   = 4
	Triple3F   = 5
	Triple3DEF = 6
	Triple3G   = 11
	Triple3H   = 10
	Triple3I   = 9
	Triple3GHI = 8
)

// A gateDef describes one catalog entry: which pins feed each bundled gate,
// where each gate's output lives, the predicate computing an output from its
// input states, and the state every pin is forced to when the chip is
// unpowered.
type gateDef struct {
	typ       string
	inputs    [][]int
	outputs   []int
	fn        func(in []virtic.State) virtic.State
	unpowered virtic.State
}

func anyHigh(in []virtic.State) virtic.State {
	for _, s := range in {
		if s == virtic.High {
			return virtic.High
		}
	}
	return virtic.Low
}

func allHigh(in []virtic.State) virtic.State {
	for _, s := range in {
		if s != virtic.High {
			return virtic.Low
		}
	}
	return virtic.High
}

func notAllHigh(in []virtic.State) virtic.State {
	for _, s := range in {
		if s != virtic.High {
			return virtic.High
		}
	}
	return virtic.Low
}

func noneHigh(in []virtic.State) virtic.State {
	for _, s := range in {
		if s == virtic.High {
			return virtic.Low
		}
	}
	return virtic.High
}

// allLow is GateNor3's predicate: it tests its inputs against Low, so an
// Undefined input already counts as driven and drops the output to Low.
// GateNor tests against High instead. The asymmetry is inherited chip
// behavior; keep it per entry.
func allLow(in []virtic.State) virtic.State {
	for _, s := range in {
		if s != virtic.Low {
			return virtic.Low
		}
	}
	return virtic.High
}

var (
	gateOrDef = gateDef{
		typ:       TypeGateOr,
		inputs:    [][]int{{Quad2A, Quad2B}, {Quad2C, Quad2D}, {Quad2E, Quad2F}, {Quad2G, Quad2H}},
		outputs:   []int{Quad2AB, Quad2CD, Quad2EF, Quad2GH},
		fn:        anyHigh,
		unpowered: virtic.Low,
	}
	gateAndDef = gateDef{
		typ:       TypeGateAnd,
		inputs:    [][]int{{Quad2A, Quad2B}, {Quad2C, Quad2D}, {Quad2E, Quad2F}, {Quad2G, Quad2H}},
		outputs:   []int{Quad2AB, Quad2CD, Quad2EF, Quad2GH},
		fn:        allHigh,
		unpowered: virtic.Undefined,
	}
	gateNandDef = gateDef{
		typ:       TypeGateNand,
		inputs:    [][]int{{Quad2A, Quad2B}, {Quad2C, Quad2D}, {Quad2E, Quad2F}, {Quad2G, Quad2H}},
		outputs:   []int{Quad2AB, Quad2CD, Quad2EF, Quad2GH},
		fn:        notAllHigh,
		unpowered: virtic.Undefined,
	}
	gateNorDef = gateDef{
		typ:       TypeGateNor,
		inputs:    [][]int{{NorA, NorB}, {NorC, NorD}, {NorE, NorF}, {NorG, NorH}},
		outputs:   []int{NorAB, NorCD, NorEF, NorGH},
		fn:        noneHigh,
		unpowered: virtic.Low,
	}
	gateNotDef = gateDef{
		typ:       TypeGateNot,
		inputs:    [][]int{{NotA}, {NotB}, {NotC}, {NotD}, {NotE}, {NotF}},
		outputs:   []int{NotAOut, NotBOut, NotCOut, NotDOut, NotEOut, NotFOut},
		fn:        noneHigh,
		unpowered: virtic.Undefined,
	}
	gateAnd3Def = gateDef{
		typ:       TypeGateAnd3,
		inputs:    [][]int{{Triple3A, Triple3B, Triple3C}, {Triple3D, Triple3E, Triple3F}, {Triple3G, Triple3H, Triple3I}},
		outputs:   []int{Triple3ABC, Triple3DEF, Triple3GHI},
		fn:        allHigh,
		unpowered: virtic.Undefined,
	}
	gateNand3Def = gateDef{
		typ:       TypeGateNand3,
		inputs:    [][]int{{Triple3A, Triple3B, Triple3C}, {Triple3D, Triple3E, Triple3F}, {Triple3G, Triple3H, Triple3I}},
		outputs:   []int{Triple3ABC, Triple3DEF, Triple3GHI},
		fn:        notAllHigh,
		unpowered: virtic.Undefined,
	}
	gateNor3Def = gateDef{
		typ:       TypeGateNor3,
		inputs:    [][]int{{Triple3A, Triple3B, Triple3C}, {Triple3D, Triple3E, Triple3F}, {Triple3G, Triple3H, Triple3I}},
		outputs:   []int{Triple3ABC, Triple3DEF, Triple3GHI},
		fn:        allLow,
		unpowered: virtic.Low,
	}
)

// A Gate is a 14-pin power-gated combinational gate chip. All catalog
// entries share this implementation; a gateDef supplies the pin roles and
// the boolean function. Gates are stateless: outputs are recomputed from the
// current input states every tick.
//
type Gate struct {
	uuid uuid.UUID
	def  *gateDef
	pins []*virtic.Pin
}

func newGate(def *gateDef) *Gate {
	id := uuid.New()
	g := &Gate{uuid: id, def: def, pins: make([]*virtic.Pin, gatePins)}
	for i := range g.pins {
		g.pins[i] = virtic.NewPin(id, i+1, virtic.PinInput)
	}
	for _, n := range def.outputs {
		g.pins[n-1].Type = virtic.PinOutput
	}
	return g
}

// NewGateOr returns a chip with four bundled 2-input OR gates.
func NewGateOr() *Gate { return newGate(&gateOrDef) }

// NewGateAnd returns a chip with four bundled 2-input AND gates.
func NewGateAnd() *Gate { return newGate(&gateAndDef) }

// NewGateNand returns a chip with four bundled 2-input NAND gates.
func NewGateNand() *Gate { return newGate(&gateNandDef) }

// NewGateNor returns a chip with four bundled 2-input NOR gates.
func NewGateNor() *Gate { return newGate(&gateNorDef) }

// NewGateNot returns a hex inverter chip.
func NewGateNot() *Gate { return newGate(&gateNotDef) }

// NewGateAnd3 returns a chip with three bundled 3-input AND gates.
func NewGateAnd3() *Gate { return newGate(&gateAnd3Def) }

// NewGateNand3 returns a chip with three bundled 3-input NAND gates.
func NewGateNand3() *Gate { return newGate(&gateNand3Def) }

// NewGateNor3 returns a chip with three bundled 3-input NOR gates.
func NewGateNor3() *Gate { return newGate(&gateNor3Def) }

// UUID implements virtic.Chip.
func (g *Gate) UUID() uuid.UUID { return g.uuid }

// Type implements virtic.Chip.
func (g *Gate) Type() string { return g.def.typ }

// PinCount implements virtic.Chip.
func (g *Gate) PinCount() int { return len(g.pins) }

// Pin implements virtic.Chip.
func (g *Gate) Pin(n int) (*virtic.Pin, error) {
	if n < 1 || n > len(g.pins) {
		return nil, errors.Wrapf(virtic.ErrPinRange, "%s pin %d", g.def.typ, n)
	}
	return g.pins[n-1], nil
}

// Run recomputes every bundled gate output when the supply precondition
// holds (GND Low, VCC High). When unpowered, every pin is forced to the
// chip's unpowered default, inputs included.
func (g *Gate) Run(time.Duration) {
	if !powered(g.pins, GateGND, GateVCC) {
		for _, p := range g.pins {
			p.State = g.def.unpowered
		}
		return
	}
	in := make([]virtic.State, 0, 3)
	for i, out := range g.def.outputs {
		in = in[:0]
		for _, n := range g.def.inputs[i] {
			in = append(in, g.pins[n-1].State)
		}
		g.pins[out-1].State = g.def.fn(in)
	}
}

// SaveData implements virtic.Chip. Gate chips carry no persistent state.
func (g *Gate) SaveData() []string { return nil }

// LoadData implements virtic.Chip.
func (g *Gate) LoadData([]string) error { return nil }

// powered reports whether the supply precondition holds: the GND pin reads
// Low and the VCC pin reads High.
func powered(pins []*virtic.Pin, gnd, vcc int) bool {
	return pins[gnd-1].State == virtic.Low && pins[vcc-1].State == virtic.High
}
