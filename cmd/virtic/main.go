// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Demo driver: powers an AND gate chip and a RAM chip from a generator,
// exercises a write/read cycle on the RAM's bidirectional bus, then saves
// the board and reloads it.
package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/virtic/virtic"
	"github.com/virtic/virtic/chips"
)

func main() {
	log.SetFlags(0)

	board := virtic.NewBoard()
	gen := chips.NewGenerator()
	and := chips.NewGateAnd()
	ram := chips.NewRam256()
	board.NewSocketWith(gen)
	board.NewSocketWith(and)
	board.NewSocketWith(ram)

	// power rails
	vcc := board.NewTrace()
	gnd := board.NewTrace()
	must(vcc.ConnectPin(gen, chips.GeneratorVCC))
	must(gnd.ConnectPin(gen, chips.GeneratorGND))
	must(vcc.ConnectPin(and, chips.GateVCC))
	must(gnd.ConnectPin(and, chips.GateGND))
	must(vcc.ConnectPin(ram, chips.MemVCC))
	must(gnd.ConnectPin(ram, chips.MemGND))

	// feed the first AND gate from the rails: High AND Low
	must(vcc.ConnectPin(and, chips.Quad2A))
	must(gnd.ConnectPin(and, chips.Quad2B))

	board.RunDuring(10*time.Millisecond, time.Millisecond)
	out := pin(and, chips.Quad2AB)
	log.Printf("High AND Low = %s", out.State)

	// write 0x2A at address 0x10, then read it back
	pin(ram, chips.MemCS).State = virtic.Low
	pin(ram, chips.MemWE).State = virtic.Low
	pin(ram, chips.MemOE).State = virtic.High
	setAddr(ram, 0x10)
	setByte(ram, chips.MemIO0, 0x2A)
	board.Run(time.Millisecond)

	pin(ram, chips.MemWE).State = virtic.High
	pin(ram, chips.MemOE).State = virtic.Low
	board.Run(time.Millisecond)
	var b byte
	for i := 0; i < 8; i++ {
		if pin(ram, chips.MemIO0+i).State == virtic.High {
			b |= 1 << uint(i)
		}
	}
	log.Printf("RAM[0x10] = %#02x", b)

	path := filepath.Join(os.TempDir(), "virtic-demo.yml")
	must(board.SaveFile(path))
	defer os.Remove(path)
	loaded, err := virtic.LoadFile(path, chips.Factory)
	must(err)
	log.Printf("reloaded board: %d sockets, %d traces",
		len(loaded.Sockets()), len(loaded.Traces()))
}

// setByte drives the 8 consecutive pins starting at first with the bits of b.
func setByte(c virtic.Chip, first int, b byte) {
	for i := 0; i < 8; i++ {
		pin(c, first+i).State = virtic.BitState(b, uint(i))
	}
}

// setAddr drives the address lines. A7 sits apart from A0-A6.
func setAddr(c virtic.Chip, addr byte) {
	for i := 0; i < 7; i++ {
		pin(c, chips.MemA0+i).State = virtic.BitState(addr, uint(i))
	}
	pin(c, chips.MemA7).State = virtic.BitState(addr, 7)
}

func pin(c virtic.Chip, n int) *virtic.Pin {
	p, err := c.Pin(n)
	must(err)
	return p
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
