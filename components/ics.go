// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package components

import "github.com/mpelletier/nanotek"

// compositeIC is a parallel-gate IC: a single 14-pin surface backed by
// several internally-owned sub-gates, wired through the container's
// internal-component proxy. Grounded on original_source's
// components/composite/parallel_gates.rs for the pin layouts, and on the
// teacher's chip.go (chipImpl fanning a tick out across owned
// sub-updaters) for the "one container, several owned parts" shape —
// generalized here to PinContainer's Automatic-output/proxy machinery
// since spec.md's composites pull sub-component outputs on demand rather
// than pushing updates.
type compositeIC struct {
	c    *nanotek.PinContainer
	subs []nanotek.Component
}

func (ic *compositeIC) Simulate(tick uint64) { ic.c.Simulate(tick, nil) }

func (ic *compositeIC) Compute(pin int) (nanotek.Tristate, error) { return ic.c.ComputeForExternal(pin) }

func (ic *compositeIC) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return ic.c.SetLinkToExternal(pin, peer, peerPin)
}

// two2InputGate describes one of the four sub-gates in a 2-input
// parallel-gate IC: external input pins a, b feed it, its output drives
// external pin out.
type two2InputGate struct{ a, b, out int }

// parallelGate2Layout is the 14-pin layout for 2-input parallel-gate ICs
// (§4.4): {1,2}->3, {5,6}->4, {8,9}->10, {12,13}->11. Pins 7 and 14 (the
// real ICs' ground/supply pins) are intentionally absent and default to
// floating outputs.
var parallelGate2Layout = [4]two2InputGate{
	{a: 1, b: 2, out: 3},
	{a: 5, b: 6, out: 4},
	{a: 8, b: 9, out: 10},
	{a: 12, b: 13, out: 11},
}

func buildParallelGate2(op func(a, b nanotek.Tristate) nanotek.Tristate) (nanotek.Component, error) {
	spec := make(map[int]nanotek.PinKind, 12)
	for _, g := range parallelGate2Layout {
		spec[g.a] = nanotek.PinInput
		spec[g.b] = nanotek.PinInput
		spec[g.out] = nanotek.PinOutput
	}
	c, err := nanotek.NewPinContainer(14, spec)
	if err != nil {
		return nil, err
	}
	subs := make([]nanotek.Component, len(parallelGate2Layout))
	for i, g := range parallelGate2Layout {
		sub, err := newGate2(op)()
		if err != nil {
			return nil, err
		}
		if err := sub.SetLink(gate2A, c.Proxy(), g.a); err != nil {
			return nil, err
		}
		if err := sub.SetLink(gate2B, c.Proxy(), g.b); err != nil {
			return nil, err
		}
		if err := c.SetAutomaticOutput(g.out, sub, gate2Out); err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return &compositeIC{c: c, subs: subs}, nil
}

// oneInputGate describes one of the six sub-gates in a 1-input
// parallel-gate IC: external input pin in feeds it, its output drives
// external pin out.
type oneInputGate struct{ in, out int }

// parallelNotLayout is the 14-pin layout for the 4069 hex inverter
// (§4.4): (1,2), (3,4), (5,6), (9,8), (11,10), (13,12) as (input,output)
// pairs — note the last three pairs run output-before-input in pin
// number, matching the real 4069's pinout.
var parallelNotLayout = [6]oneInputGate{
	{in: 1, out: 2},
	{in: 3, out: 4},
	{in: 5, out: 6},
	{in: 9, out: 8},
	{in: 11, out: 10},
	{in: 13, out: 12},
}

func buildParallelNot() (nanotek.Component, error) {
	spec := make(map[int]nanotek.PinKind, 12)
	for _, g := range parallelNotLayout {
		spec[g.in] = nanotek.PinInput
		spec[g.out] = nanotek.PinOutput
	}
	c, err := nanotek.NewPinContainer(14, spec)
	if err != nil {
		return nil, err
	}
	subs := make([]nanotek.Component, len(parallelNotLayout))
	for i, g := range parallelNotLayout {
		sub, err := newNot()
		if err != nil {
			return nil, err
		}
		if err := sub.SetLink(notIn, c.Proxy(), g.in); err != nil {
			return nil, err
		}
		if err := c.SetAutomaticOutput(g.out, sub, notOut); err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return &compositeIC{c: c, subs: subs}, nil
}

func newParallelGate2(op func(a, b nanotek.Tristate) nanotek.Tristate) nanotek.Factory {
	return func() (nanotek.Component, error) { return buildParallelGate2(op) }
}

func newParallelNot() (nanotek.Component, error) { return buildParallelNot() }
