package virtic_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/virtic/virtic"
	"github.com/virtic/virtic/chips"
)

// pinRef locates a pin by the position of its owning chip's socket, the only
// identity that survives a save/load cycle.
type pinRef struct {
	Socket int
	Pin    int
}

func topology(t *testing.T, b *virtic.Board) ([]string, [][]pinRef) {
	t.Helper()
	socketOf := make(map[uuid.UUID]int)
	types := make([]string, 0, len(b.Sockets()))
	for i, s := range b.Sockets() {
		if c := s.Chip(); c != nil {
			types = append(types, c.Type())
			socketOf[c.UUID()] = i
		} else {
			types = append(types, "")
		}
	}
	traces := make([][]pinRef, 0, len(b.Traces()))
	for _, tr := range b.Traces() {
		refs := make([]pinRef, 0, len(tr.Pins()))
		for _, p := range tr.Pins() {
			i, ok := socketOf[p.Chip]
			if !ok {
				t.Fatalf("trace pin owner %s not plugged on any socket", p.Chip)
			}
			refs = append(refs, pinRef{Socket: i, Pin: p.Number})
		}
		traces = append(traces, refs)
	}
	return types, traces
}

// testBoard builds a powered generator + AND gate + RAM board and runs it
// long enough for the RAM to randomize its backing store.
func testBoard(t *testing.T) (*virtic.Board, *chips.Ram256) {
	t.Helper()
	b := virtic.NewBoard()
	gen := chips.NewGenerator()
	and := chips.NewGateAnd()
	ram := chips.NewRam256()
	b.NewSocketWith(gen)
	b.NewSocketWith(and)
	b.NewSocketWith(ram)

	vcc := b.NewTrace()
	gnd := b.NewTrace()
	for _, c := range []struct {
		chip     virtic.Chip
		vcc, gnd int
	}{
		{gen, chips.GeneratorVCC, chips.GeneratorGND},
		{and, chips.GateVCC, chips.GateGND},
		{ram, chips.MemVCC, chips.MemGND},
	} {
		if err := vcc.ConnectPin(c.chip, c.vcc); err != nil {
			t.Fatal(err)
		}
		if err := gnd.ConnectPin(c.chip, c.gnd); err != nil {
			t.Fatal(err)
		}
	}

	b.Run(time.Millisecond)
	return b, ram
}

func TestBoardRoundTrip(t *testing.T) {
	b, ram := testBoard(t)

	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := virtic.Load(&buf, chips.Factory)
	if err != nil {
		t.Fatal(err)
	}

	wantTypes, wantTraces := topology(t, b)
	gotTypes, gotTraces := topology(t, loaded)
	if diff := cmp.Diff(wantTypes, gotTypes); diff != "" {
		t.Errorf("socket types mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantTraces, gotTraces); diff != "" {
		t.Errorf("trace topology mismatch (-want +got):\n%s", diff)
	}

	ram2, ok := loaded.Sockets()[2].Chip().(*chips.Ram256)
	if !ok {
		t.Fatalf("socket 2 holds %T, want *chips.Ram256", loaded.Sockets()[2].Chip())
	}
	if diff := cmp.Diff(ram.SaveData(), ram2.SaveData()); diff != "" {
		t.Errorf("RAM state mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUnknownType(t *testing.T) {
	b, _ := testBoard(t)
	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		t.Fatal(err)
	}

	// a factory that only knows generators: the other sockets must be left
	// empty and their trace references dropped, silently
	partial := func(tag string) virtic.Chip {
		if tag == chips.TypeGenerator {
			return chips.NewGenerator()
		}
		return nil
	}
	loaded, err := virtic.Load(&buf, virtic.Factory(partial))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(loaded.Sockets()); got != 3 {
		t.Fatalf("socket count %d, want 3", got)
	}
	if loaded.Sockets()[0].Chip() == nil {
		t.Error("generator socket empty")
	}
	for _, i := range []int{1, 2} {
		if c := loaded.Sockets()[i].Chip(); c != nil {
			t.Errorf("socket %d holds %s, want empty", i, c.Type())
		}
	}
	for i, tr := range loaded.Traces() {
		if got := len(tr.Pins()); got != 1 {
			t.Errorf("trace %d has %d pins, want 1 (generator only)", i, got)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	td := []struct {
		name string
		doc  string
	}{
		{"empty input", ""},
		{"bad yaml", "{["},
		{"wrong shape", "sockets: 5\n"},
		{"bad chip data", `sockets:
    - chip:
        uuid: 00000000-0000-0000-0000-000000000001
        type: virtic.Ram256
        data: ["zz", "ON"]
traces: []
`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := virtic.Load(strings.NewReader(d.doc), chips.Factory)
			if !errors.Is(err, virtic.ErrInvalidData) {
				t.Errorf("got %v, want ErrInvalidData", err)
			}
		})
	}
}

func TestSaveLoadFile(t *testing.T) {
	b, _ := testBoard(t)
	path := filepath.Join(t.TempDir(), "board.yml")
	if err := b.SaveFile(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := virtic.LoadFile(path, chips.Factory)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(loaded.Sockets()); got != len(b.Sockets()) {
		t.Errorf("socket count %d, want %d", got, len(b.Sockets()))
	}

	if err := b.SaveFile(filepath.Join(t.TempDir(), "missing", "board.yml")); err == nil {
		t.Error("SaveFile into a missing directory: want error, got nil")
	}
	if _, err := virtic.LoadFile(filepath.Join(t.TempDir(), "absent.yml"), chips.Factory); err == nil {
		t.Error("LoadFile of an absent file: want error, got nil")
	}
}
