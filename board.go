// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import (
	"time"

	"github.com/google/uuid"
)

// A Board owns the traces and sockets of a circuit and drives the
// simulation. Callers keep the pointers returned by NewTrace and NewSocket
// to wire the circuit up while the board iterates the same objects every
// tick.
//
// Execution is single-threaded and cooperative: there is no parallelism and
// no preemption, and iteration follows creation order in both phases so runs
// are reproducible.
//
type Board struct {
	traces  []*Trace
	sockets []*Socket
}

// NewBoard returns an empty board.
//
func NewBoard() *Board {
	return &Board{}
}

// NewTrace creates a trace on the board and returns it.
//
func (b *Board) NewTrace() *Trace {
	t := NewTrace()
	b.traces = append(b.traces, t)
	return t
}

// NewSocket creates an empty socket on the board and returns it.
//
func (b *Board) NewSocket() *Socket {
	s := NewSocket()
	b.sockets = append(b.sockets, s)
	return s
}

// NewSocketWith creates a socket on the board with c already plugged in.
//
func (b *Board) NewSocketWith(c Chip) *Socket {
	s := b.NewSocket()
	s.Plug(c)
	return s
}

// Traces returns the board's traces in creation order.
//
func (b *Board) Traces() []*Trace {
	return b.traces
}

// Sockets returns the board's sockets in creation order.
//
func (b *Board) Sockets() []*Socket {
	return b.sockets
}

// Socket returns the socket with the given identity, or nil if the board has
// none.
//
func (b *Board) Socket(id uuid.UUID) *Socket {
	for _, s := range b.sockets {
		if s.UUID() == id {
			return s
		}
	}
	return nil
}

// Run advances the simulation by one tick of dt simulated time. Phase 1
// resolves every trace using the pin states left by the previous tick's chip
// computations; phase 2 runs every socket on the inputs just propagated.
// Because a signal crosses one trace per tick, a chain of N combinationally
// connected chips needs N ticks to settle.
//
func (b *Board) Run(dt time.Duration) {
	for _, t := range b.traces {
		t.Communicate()
	}
	for _, s := range b.sockets {
		s.Run(dt)
	}
}

// RunDuring runs the board for duration, segmented by step. The smaller the
// step, the more accurate the simulation. The elapsed-time check happens
// before each tick rather than bounding it, so the last tick may overshoot:
// RunDuring(10, 3) executes four ticks and ends at an accumulated time of
// 12. Callers relying on exact tick counts should pick a step that divides
// the duration.
//
func (b *Board) RunDuring(duration, step time.Duration) {
	elapsed := time.Duration(0)
	for elapsed < duration {
		b.Run(step)
		elapsed += step
	}
}

// RunRealtime runs the board for duration of wall-clock time, using the
// measured gap between successive polls as the dt of each tick. dt is
// therefore variable and unbounded; chips modeled as instantaneous-settle
// logic ignore it. Pacing is advisory only: an in-progress tick is never
// preempted.
//
func (b *Board) RunRealtime(duration time.Duration) {
	start := time.Now()
	prev := start
	for time.Since(start) <= duration {
		now := time.Now()
		b.Run(now.Sub(prev))
		prev = now
	}
}
