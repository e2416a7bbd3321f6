// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import (
	"time"

	"github.com/google/uuid"
)

// A Socket is a board mount point holding at most one chip. Its identity is
// independent of the chip it holds and stable across re-plugging; it is used
// for live lookup within a running board only, never persisted.
//
type Socket struct {
	uuid uuid.UUID
	chip Chip
}

// NewSocket returns an empty socket. Sockets meant to be ticked by a board
// should be created with Board.NewSocket instead.
//
func NewSocket() *Socket {
	return &Socket{uuid: uuid.New()}
}

// UUID returns the socket's own identity.
//
func (s *Socket) UUID() uuid.UUID {
	return s.uuid
}

// Plug mounts c on the socket, replacing any previous occupant.
//
func (s *Socket) Plug(c Chip) {
	s.chip = c
}

// Chip returns the current occupant, or nil when the socket is empty.
//
func (s *Socket) Chip() Chip {
	return s.chip
}

// Run forwards the tick to the occupant. Empty sockets do nothing.
//
func (s *Socket) Run(elapsed time.Duration) {
	if s.chip != nil {
		s.chip.Run(elapsed)
	}
}
