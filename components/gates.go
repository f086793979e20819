// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package components provides the concrete catalog of circuit component
// kinds: io/clock/constant sources, and the parallel-gate ICs, plus the
// raw logic-gate primitives the ICs are assembled from internally.
package components

import "github.com/mpelletier/nanotek"

// Pin numbers shared by every gate primitive: inputs first, output last.
const (
	notIn  = 1
	notOut = 2

	gate2A   = 1
	gate2B   = 2
	gate2Out = 3

	gate3A   = 1
	gate3B   = 2
	gate3C   = 3
	gate3Out = 4
)

// notGate is a 1-input, 1-output NOT primitive. Grounded on the teacher's
// hwlib/gates.go notGate value (same shape, generalized from bool to
// Tristate).
type notGate struct {
	c *nanotek.PinContainer
}

func newNot() (nanotek.Component, error) {
	c, err := nanotek.NewPinContainer(2, map[int]nanotek.PinKind{
		notIn:  nanotek.PinInput,
		notOut: nanotek.PinOutput,
	})
	if err != nil {
		return nil, err
	}
	return &notGate{c: c}, nil
}

func (g *notGate) Simulate(tick uint64) {
	g.c.Simulate(tick, func(c *nanotek.PinContainer) {
		c.SetOutput(notOut, nanotek.Not(c.Input(notIn)))
	})
}

func (g *notGate) Compute(pin int) (nanotek.Tristate, error) { return g.c.ComputeForExternal(pin) }

func (g *notGate) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return g.c.SetLinkToExternal(pin, peer, peerPin)
}

// gate2 is a 2-input, 1-output logic gate (AND/OR/XOR/NAND/NOR).
// Grounded on hwlib/gates.go's gate/newGate pair.
type gate2 struct {
	c  *nanotek.PinContainer
	op func(a, b nanotek.Tristate) nanotek.Tristate
}

func newGate2(op func(a, b nanotek.Tristate) nanotek.Tristate) nanotek.Factory {
	return func() (nanotek.Component, error) {
		c, err := nanotek.NewPinContainer(3, map[int]nanotek.PinKind{
			gate2A:   nanotek.PinInput,
			gate2B:   nanotek.PinInput,
			gate2Out: nanotek.PinOutput,
		})
		if err != nil {
			return nil, err
		}
		return &gate2{c: c, op: op}, nil
	}
}

func (g *gate2) Simulate(tick uint64) {
	g.c.Simulate(tick, func(c *nanotek.PinContainer) {
		c.SetOutput(gate2Out, g.op(c.Input(gate2A), c.Input(gate2B)))
	})
}

func (g *gate2) Compute(pin int) (nanotek.Tristate, error) { return g.c.ComputeForExternal(pin) }

func (g *gate2) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return g.c.SetLinkToExternal(pin, peer, peerPin)
}

// gate3 is the 3-input variant supplementing spec.md's ambiguous "2 or 3"
// pin count (see SPEC_FULL.md's Supplemented Features): the binary
// operator is folded left-to-right across all three inputs. Like gate2,
// it's an internal building block, not a separately registered catalog
// entry.
type gate3 struct {
	c  *nanotek.PinContainer
	op func(a, b nanotek.Tristate) nanotek.Tristate
}

func newGate3(op func(a, b nanotek.Tristate) nanotek.Tristate) nanotek.Factory {
	return func() (nanotek.Component, error) {
		c, err := nanotek.NewPinContainer(4, map[int]nanotek.PinKind{
			gate3A:   nanotek.PinInput,
			gate3B:   nanotek.PinInput,
			gate3C:   nanotek.PinInput,
			gate3Out: nanotek.PinOutput,
		})
		if err != nil {
			return nil, err
		}
		return &gate3{c: c, op: op}, nil
	}
}

func (g *gate3) Simulate(tick uint64) {
	g.c.Simulate(tick, func(c *nanotek.PinContainer) {
		v := g.op(c.Input(gate3A), c.Input(gate3B))
		v = g.op(v, c.Input(gate3C))
		c.SetOutput(gate3Out, v)
	})
}

func (g *gate3) Compute(pin int) (nanotek.Tristate, error) { return g.c.ComputeForExternal(pin) }

func (g *gate3) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return g.c.SetLinkToExternal(pin, peer, peerPin)
}

func andOp(a, b nanotek.Tristate) nanotek.Tristate  { return nanotek.And(a, b) }
func orOp(a, b nanotek.Tristate) nanotek.Tristate   { return nanotek.Or(a, b) }
func xorOp(a, b nanotek.Tristate) nanotek.Tristate  { return nanotek.Xor(a, b) }
func nandOp(a, b nanotek.Tristate) nanotek.Tristate { return nanotek.Not(nanotek.And(a, b)) }
func norOp(a, b nanotek.Tristate) nanotek.Tristate  { return nanotek.Not(nanotek.Or(a, b)) }
