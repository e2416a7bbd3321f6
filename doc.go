// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package virtic simulates digital circuits on a virtual breadboard: chips are
plugged into sockets, wired together with traces, and the board is stepped
through discrete time ticks to observe signal propagation.

Every tick runs in two strictly sequential phases. First every trace resolves
its wired-bus value (a High driver beats a Low driver, no driver reads
Undefined) and writes it into all listening pins. Then every socket forwards
the tick to its chip, which computes new outputs from the freshly propagated
inputs. A chain of N combinationally linked chips therefore needs N ticks to
settle; the simulator trades instantaneous combinational resolution for a
simple, deterministic step model.

The shipped chip catalog lives in the chips subpackage. Custom chips only
need to implement the Chip interface.
*/
package virtic
