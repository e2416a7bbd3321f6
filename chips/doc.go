// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chips provides the chip catalog for virtic boards: power-gated
// logic gate packages, byte-addressable RAM and ROM chips with a
// bidirectional data bus, and a fixed VCC/GND generator.
//
// Pin numbers follow the physical package layout of each chip and are
// exported as constants. All chips except the generator are power-gated:
// their GND pin must read Low and their VCC pin High before they compute
// anything.
package chips
