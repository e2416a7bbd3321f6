// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPinRange reports a pin number outside [1, PinCount].
var ErrPinRange = errors.New("pin number out of range")

// A Chip is a mountable unit of behavior: it owns a fixed array of pins and
// computes new output states every tick.
//
type Chip interface {
	// UUID returns the process-unique identity of this chip instance.
	UUID() uuid.UUID

	// Type returns the stable type tag used by persistence and factories.
	Type() string

	// PinCount returns the number of terminals.
	PinCount() int

	// Pin returns the pin at 1-based position n. It fails with ErrPinRange
	// when n is out of bounds; it never panics.
	Pin(n int) (*Pin, error)

	// Run performs one computation step: read input pins and any internal
	// state, write output pins. It must be total: every reachable
	// combination of pin types and states has a defined outcome, including
	// all-Undefined. elapsed is the simulated time since the previous step;
	// instantaneous-settle logic ignores it.
	Run(elapsed time.Duration)

	// SaveData returns the chip's persistent internal state as opaque
	// strings. Stateless chips return nil.
	SaveData() []string

	// LoadData restores internal state produced by SaveData.
	LoadData(data []string) error
}

// A Factory builds a chip from its type tag during Load. It returns nil for
// tags it does not recognize; the corresponding socket is then left empty.
// The package holds no registry of chip types: loading a board always takes
// an explicit factory (see chips.Factory for the shipped catalog).
//
type Factory func(typeTag string) Chip
