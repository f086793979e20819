// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package components

import "github.com/mpelletier/nanotek"

const singlePin = 1

// inputComponent latches a user-set Tristate. Grounded on the teacher's
// hwlib/io.go Input (a single-output part driven by a closure), adapted
// from "pull a value from an always-available Go func()" to the
// stage-then-commit semantics spec.md's Input requires: a value set via
// SetNextValue only becomes visible (via CurrentValue, and on the output
// pin) at the next Simulate.
type inputComponent struct {
	c       *nanotek.PinContainer
	staged  nanotek.Tristate
	current nanotek.Tristate
}

func newInput() (nanotek.Component, error) {
	c, err := nanotek.NewPinContainer(1, map[int]nanotek.PinKind{singlePin: nanotek.PinOutput})
	if err != nil {
		return nil, err
	}
	return &inputComponent{c: c}, nil
}

func (i *inputComponent) Simulate(tick uint64) {
	i.c.Simulate(tick, func(c *nanotek.PinContainer) {
		i.current = i.staged
		c.SetOutput(singlePin, i.current)
	})
}

func (i *inputComponent) Compute(pin int) (nanotek.Tristate, error) {
	return i.c.ComputeForExternal(pin)
}

func (i *inputComponent) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return i.c.SetLinkToExternal(pin, peer, peerPin)
}

func (i *inputComponent) SetNextValue(v nanotek.Tristate) { i.staged = v }

func (i *inputComponent) CurrentValue() nanotek.Tristate { return i.current }

// outputComponent samples its single input pin on every tick and latches
// the result for Value to report. Grounded on hwlib/io.go's Output.
type outputComponent struct {
	c     *nanotek.PinContainer
	value nanotek.Tristate
}

func newOutput() (nanotek.Component, error) {
	c, err := nanotek.NewPinContainer(1, map[int]nanotek.PinKind{singlePin: nanotek.PinInput})
	if err != nil {
		return nil, err
	}
	return &outputComponent{c: c}, nil
}

func (o *outputComponent) Simulate(tick uint64) {
	o.c.Simulate(tick, func(c *nanotek.PinContainer) {
		o.value = c.Input(singlePin)
	})
}

func (o *outputComponent) Compute(pin int) (nanotek.Tristate, error) {
	return o.c.ComputeForExternal(pin)
}

func (o *outputComponent) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return o.c.SetLinkToExternal(pin, peer, peerPin)
}

func (o *outputComponent) Value() nanotek.Tristate { return o.value }

// clockComponent behaves like inputComponent but, absent a pending
// user-set value, flips its current value every tick (Not(Undef) stays
// Undef, so an un-set clock stays undefined forever). A user-set value
// wins for exactly the next tick; inversion resumes from that value on
// the tick after (see DESIGN.md, Open Question 3).
type clockComponent struct {
	c       *nanotek.PinContainer
	staged  *nanotek.Tristate
	current nanotek.Tristate
}

func newClock() (nanotek.Component, error) {
	c, err := nanotek.NewPinContainer(1, map[int]nanotek.PinKind{singlePin: nanotek.PinOutput})
	if err != nil {
		return nil, err
	}
	return &clockComponent{c: c}, nil
}

func (cl *clockComponent) Simulate(tick uint64) {
	cl.c.Simulate(tick, func(c *nanotek.PinContainer) {
		if cl.staged != nil {
			cl.current = *cl.staged
			cl.staged = nil
		} else {
			cl.current = nanotek.Not(cl.current)
		}
		c.SetOutput(singlePin, cl.current)
	})
}

func (cl *clockComponent) Compute(pin int) (nanotek.Tristate, error) {
	return cl.c.ComputeForExternal(pin)
}

func (cl *clockComponent) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return cl.c.SetLinkToExternal(pin, peer, peerPin)
}

func (cl *clockComponent) SetNextValue(v nanotek.Tristate) {
	staged := v
	cl.staged = &staged
}

func (cl *clockComponent) CurrentValue() nanotek.Tristate { return cl.current }

// constComponent is a fixed High or Low source (the "true"/"false"
// catalog entries). Grounded on the teacher's constant-wire setup in
// hwsim.go's NewCircuit (the cstTrue/cstFalse input wires).
type constComponent struct {
	c     *nanotek.PinContainer
	value nanotek.Tristate
}

func newConst(value nanotek.Tristate) nanotek.Factory {
	return func() (nanotek.Component, error) {
		c, err := nanotek.NewPinContainer(1, map[int]nanotek.PinKind{singlePin: nanotek.PinOutput})
		if err != nil {
			return nil, err
		}
		return &constComponent{c: c, value: value}, nil
	}
}

func (k *constComponent) Simulate(tick uint64) {
	k.c.Simulate(tick, func(c *nanotek.PinContainer) {
		c.SetOutput(singlePin, k.value)
	})
}

func (k *constComponent) Compute(pin int) (nanotek.Tristate, error) {
	return k.c.ComputeForExternal(pin)
}

func (k *constComponent) SetLink(pin int, peer nanotek.Component, peerPin int) error {
	return k.c.SetLinkToExternal(pin, peer, peerPin)
}
