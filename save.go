// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package virtic

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidData reports persisted board data that cannot be decoded.
var ErrInvalidData = errors.New("invalid board data")

// Persisted record shapes. Sockets and traces are stored in creation order;
// trace entries reference chips by their saved uuid, which is only a key
// within the file: reloaded chips get fresh identities.
type savedBoard struct {
	Sockets []savedSocket `yaml:"sockets"`
	Traces  []savedTrace  `yaml:"traces"`
}

type savedSocket struct {
	Chip *savedChip `yaml:"chip,omitempty"`
}

type savedChip struct {
	UUID string   `yaml:"uuid"`
	Type string   `yaml:"type"`
	Data []string `yaml:"data,omitempty"`
}

type savedTrace struct {
	Pins []savedPin `yaml:"pins"`
}

type savedPin struct {
	Chip string `yaml:"chip"`
	Pin  int    `yaml:"pin"`
}

// Save writes the board's topology and chip state to w as YAML.
//
func (b *Board) Save(w io.Writer) error {
	sb := savedBoard{
		Sockets: make([]savedSocket, 0, len(b.sockets)),
		Traces:  make([]savedTrace, 0, len(b.traces)),
	}
	for _, s := range b.sockets {
		var ss savedSocket
		if c := s.Chip(); c != nil {
			ss.Chip = &savedChip{
				UUID: c.UUID().String(),
				Type: c.Type(),
				Data: c.SaveData(),
			}
		}
		sb.Sockets = append(sb.Sockets, ss)
	}
	for _, t := range b.traces {
		st := savedTrace{Pins: make([]savedPin, 0, len(t.Pins()))}
		for _, p := range t.Pins() {
			st.Pins = append(st.Pins, savedPin{Chip: p.Chip.String(), Pin: p.Number})
		}
		sb.Traces = append(sb.Traces, st)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&sb); err != nil {
		return errors.Wrap(err, "encode board")
	}
	return errors.Wrap(enc.Close(), "encode board")
}

// SaveFile writes the board to the file at path, creating or truncating it.
//
func (b *Board) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save board")
	}
	if err := b.Save(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "save board")
}

// Load rebuilds a board from data written by Save. Chips are rebuilt through
// factory; a type tag the factory does not recognize leaves its socket empty
// and silently drops trace references to that chip's pins. Callers needing
// strictness must inspect the returned board. Data that cannot be decoded
// fails with ErrInvalidData.
//
func Load(r io.Reader, factory Factory) (*Board, error) {
	var sb savedBoard
	if err := yaml.NewDecoder(r).Decode(&sb); err != nil {
		return nil, errors.Wrapf(ErrInvalidData, "decode board: %v", err)
	}
	b := NewBoard()
	byUUID := make(map[string]Chip)
	for _, ss := range sb.Sockets {
		s := b.NewSocket()
		sc := ss.Chip
		if sc == nil {
			continue
		}
		c := factory(sc.Type)
		if c == nil {
			// unknown type: leave the socket empty
			continue
		}
		if err := c.LoadData(sc.Data); err != nil {
			return nil, errors.Wrapf(ErrInvalidData, "chip %s: %v", sc.Type, err)
		}
		byUUID[sc.UUID] = c
		s.Plug(c)
	}
	for _, st := range sb.Traces {
		t := b.NewTrace()
		for _, sp := range st.Pins {
			c, ok := byUUID[sp.Chip]
			if !ok {
				// chip dropped above, or never saved
				continue
			}
			if err := t.ConnectPin(c, sp.Pin); err != nil {
				return nil, errors.Wrapf(ErrInvalidData, "trace pin: %v", err)
			}
		}
	}
	return b, nil
}

// LoadFile rebuilds a board from the file at path. See Load.
//
func LoadFile(path string, factory Factory) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load board")
	}
	defer f.Close()
	return Load(f, factory)
}
