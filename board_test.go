package virtic_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/virtic/virtic"
)

// probe is a two-pin test chip: pin 1 listens, pin 2 drives whatever the
// test put in drive. It records the input state it saw at every run.
type probe struct {
	uuid  uuid.UUID
	pins  [2]*virtic.Pin
	drive virtic.State
	runs  int
	seen  []virtic.State
}

func newProbe() *probe {
	id := uuid.New()
	return &probe{
		uuid: id,
		pins: [2]*virtic.Pin{
			virtic.NewPin(id, 1, virtic.PinInput),
			virtic.NewPin(id, 2, virtic.PinOutput),
		},
	}
}

func (p *probe) UUID() uuid.UUID { return p.uuid }
func (p *probe) Type() string    { return "test.Probe" }
func (p *probe) PinCount() int   { return 2 }

func (p *probe) Pin(n int) (*virtic.Pin, error) {
	if n < 1 || n > len(p.pins) {
		return nil, virtic.ErrPinRange
	}
	return p.pins[n-1], nil
}

func (p *probe) Run(time.Duration) {
	p.runs++
	p.seen = append(p.seen, p.pins[0].State)
	p.pins[1].State = p.drive
}

func (p *probe) SaveData() []string      { return nil }
func (p *probe) LoadData([]string) error { return nil }

// repeater copies its input to its output, for settle-time chains.
type repeater struct {
	*probe
}

func newRepeater() *repeater { return &repeater{newProbe()} }

func (r *repeater) Run(dt time.Duration) {
	r.probe.Run(dt)
	r.pins[1].State = r.pins[0].State
}

func TestBoardRunDuring(t *testing.T) {
	td := []struct {
		name           string
		duration, step time.Duration
		ticks          int
	}{
		// the comparison happens before each tick, so the last tick
		// overshoots: 3,6,9,12
		{"overshoot", 10 * time.Second, 3 * time.Second, 4},
		{"exact", 9 * time.Second, 3 * time.Second, 3},
		{"step larger than duration", 2 * time.Second, 5 * time.Second, 1},
		{"zero duration", 0, time.Second, 0},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			b := virtic.NewBoard()
			p := newProbe()
			b.NewSocketWith(p)
			b.RunDuring(d.duration, d.step)
			if p.runs != d.ticks {
				t.Errorf("RunDuring(%s, %s) ran %d ticks, want %d", d.duration, d.step, p.runs, d.ticks)
			}
		})
	}
}

// Chips must compute on the states propagated in the same tick's trace
// phase: a signal driven during tick N is observed by the next chip during
// tick N+1.
func TestBoardTwoPhaseTick(t *testing.T) {
	b := virtic.NewBoard()
	src, dst := newProbe(), newProbe()
	src.drive = virtic.High
	b.NewSocketWith(src)
	b.NewSocketWith(dst)
	tr := b.NewTrace()
	if err := tr.ConnectPin(src, 2); err != nil {
		t.Fatal(err)
	}
	if err := tr.ConnectPin(dst, 1); err != nil {
		t.Fatal(err)
	}

	b.Run(time.Second)
	b.Run(time.Second)

	want := []virtic.State{virtic.Undefined, virtic.High}
	for i, w := range want {
		if dst.seen[i] != w {
			t.Errorf("tick %d: destination saw %s, want %s", i+1, dst.seen[i], w)
		}
	}
}

// A chain of N combinationally connected chips settles in N ticks.
func TestBoardSettleChain(t *testing.T) {
	b := virtic.NewBoard()
	src := newProbe()
	src.drive = virtic.High
	r1, r2 := newRepeater(), newRepeater()
	b.NewSocketWith(src)
	b.NewSocketWith(r1)
	b.NewSocketWith(r2)
	for _, link := range []struct {
		from virtic.Chip
		to   virtic.Chip
	}{{src, r1}, {r1, r2}} {
		tr := b.NewTrace()
		if err := tr.ConnectPin(link.from, 2); err != nil {
			t.Fatal(err)
		}
		if err := tr.ConnectPin(link.to, 1); err != nil {
			t.Fatal(err)
		}
	}

	out, err := r2.Pin(2)
	if err != nil {
		t.Fatal(err)
	}
	b.Run(time.Second)
	b.Run(time.Second)
	if out.State == virtic.High {
		t.Fatal("chain settled in 2 ticks, want 3")
	}
	b.Run(time.Second)
	if out.State != virtic.High {
		t.Fatalf("chain output after 3 ticks: %s, want High", out.State)
	}
}

func TestBoardRunRealtime(t *testing.T) {
	b := virtic.NewBoard()
	p := newProbe()
	b.NewSocketWith(p)
	b.RunRealtime(5 * time.Millisecond)
	if p.runs == 0 {
		t.Fatal("no tick ran within the realtime window")
	}
}

func TestSocketPlug(t *testing.T) {
	s := virtic.NewSocket()
	if s.Chip() != nil {
		t.Fatal("new socket not empty")
	}
	id := s.UUID()
	a, c := newProbe(), newProbe()
	s.Plug(a)
	s.Plug(c)
	if s.Chip() != virtic.Chip(c) {
		t.Fatal("Plug did not replace the previous occupant")
	}
	if s.UUID() != id {
		t.Fatal("socket identity changed across re-plugging")
	}
	// empty sockets are a no-op when run
	virtic.NewSocket().Run(time.Second)
}

func TestBoardSocketLookup(t *testing.T) {
	b := virtic.NewBoard()
	s1 := b.NewSocket()
	s2 := b.NewSocketWith(newProbe())
	if got := b.Socket(s2.UUID()); got != s2 {
		t.Errorf("Socket(%s) = %v, want %v", s2.UUID(), got, s2)
	}
	if got := b.Socket(s1.UUID()); got != s1 {
		t.Errorf("Socket(%s) = %v, want %v", s1.UUID(), got, s1)
	}
	if got := b.Socket(uuid.New()); got != nil {
		t.Errorf("lookup of unknown uuid: got %v, want nil", got)
	}
}
