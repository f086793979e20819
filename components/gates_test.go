package components

import (
	"testing"

	"github.com/mpelletier/nanotek"
)

type fixedSource struct{ v nanotek.Tristate }

func (s *fixedSource) Simulate(tick uint64) {}

func (s *fixedSource) Compute(pin int) (nanotek.Tristate, error) { return s.v, nil }

func (s *fixedSource) SetLink(pin int, peer nanotek.Component, peerPin int) error { return nil }

func wireGate2(t *testing.T, g nanotek.Component, a, b nanotek.Tristate) nanotek.Tristate {
	t.Helper()
	if err := g.SetLink(gate2A, &fixedSource{v: a}, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetLink(gate2B, &fixedSource{v: b}, 1); err != nil {
		t.Fatal(err)
	}
	g.Simulate(1)
	out, err := g.Compute(gate2Out)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestGate2TruthTables(t *testing.T) {
	cases := []struct {
		name       string
		op         func(a, b nanotek.Tristate) nanotek.Tristate
		a, b, want nanotek.Tristate
	}{
		{"and", andOp, nanotek.High, nanotek.High, nanotek.High},
		{"and", andOp, nanotek.High, nanotek.Low, nanotek.Low},
		{"or", orOp, nanotek.Low, nanotek.Low, nanotek.Low},
		{"or", orOp, nanotek.Low, nanotek.High, nanotek.High},
		{"xor", xorOp, nanotek.High, nanotek.High, nanotek.Low},
		{"xor", xorOp, nanotek.High, nanotek.Low, nanotek.High},
		{"nand", nandOp, nanotek.High, nanotek.High, nanotek.Low},
		{"nand", nandOp, nanotek.Low, nanotek.Low, nanotek.High},
		{"nor", norOp, nanotek.Low, nanotek.Low, nanotek.High},
		{"nor", norOp, nanotek.High, nanotek.Low, nanotek.Low},
	}
	for _, c := range cases {
		g, err := newGate2(c.op)()
		if err != nil {
			t.Fatal(err)
		}
		if got := wireGate2(t, g, c.a, c.b); got != c.want {
			t.Errorf("%s(%v, %v) = %v, want %v", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestGate3FoldsLeftToRight(t *testing.T) {
	g, err := newGate3(andOp)()
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetLink(gate3A, &fixedSource{v: nanotek.High}, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetLink(gate3B, &fixedSource{v: nanotek.High}, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetLink(gate3C, &fixedSource{v: nanotek.Low}, 1); err != nil {
		t.Fatal(err)
	}
	g.Simulate(1)
	got, err := g.Compute(gate3Out)
	if err != nil {
		t.Fatal(err)
	}
	if got != nanotek.Low {
		t.Errorf("and3(1,1,0) = %v, want Low", got)
	}
}

func TestNotGate(t *testing.T) {
	g, err := newNot()
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetLink(notIn, &fixedSource{v: nanotek.High}, 1); err != nil {
		t.Fatal(err)
	}
	g.Simulate(1)
	got, err := g.Compute(notOut)
	if err != nil {
		t.Fatal(err)
	}
	if got != nanotek.Low {
		t.Errorf("Not(High) = %v, want Low", got)
	}
}
