// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

import "github.com/pkg/errors"

// tickState is the per-tick memoization token shared by Pin and
// PinContainer: NeverComputed, Computing(tick) or Available(tick).
type tickState struct {
	kind tickKind
	tick uint64
}

type tickKind uint8

const (
	neverComputed tickKind = iota
	computing
	available
)

func (s tickState) at(tick uint64) bool {
	return s.kind != neverComputed && s.tick == tick
}

// pinLink is a weak reference to a (component, pin) endpoint. Identity is
// by interface value (pointer equality of the underlying component plus
// the pin number), which is exactly what Go's comparable interface values
// give us for free — see DESIGN.md on why no actual weak.Pointer is used.
type pinLink struct {
	peer Component
	pin  int
}

// pinMode distinguishes the two roles a Bidirectional pin can be in at
// any given tick.
type pinMode uint8

const (
	modeInput pinMode = iota
	modeOutput
)

// Pin is a single electrical endpoint on a component: an input pin
// aggregating values from linked peers, an output pin driving a value
// produced on demand, or a bidirectional pin that is one or the other
// depending on its current mode.
//
// The three variants described in spec.md §4.2 are represented as one
// struct tagged by mode/bidirectional rather than three separate types:
// the catalog is closed and pins are allocated by the thousand in large
// circuits, so one shape with a tag beats the allocation and indirection
// cost of three.
type Pin struct {
	links         map[pinLink]struct{}
	aggregate     Tristate
	state         tickState
	output        func() Tristate
	mode          pinMode
	bidirectional bool
}

func newInputPin() *Pin {
	return &Pin{links: make(map[pinLink]struct{}), aggregate: Low, mode: modeInput}
}

func newOutputPin(thunk func() Tristate) *Pin {
	return &Pin{output: thunk, mode: modeOutput}
}

// newBidiPin creates a bidirectional pin, defaulting to input mode (see
// DESIGN.md, Open Question 4).
func newBidiPin(thunk func() Tristate) *Pin {
	return &Pin{
		links:         make(map[pinLink]struct{}),
		aggregate:     Low,
		output:        thunk,
		mode:          modeInput,
		bidirectional: true,
	}
}

// LinkTo idempotently adds a link to a peer (component, pin) endpoint.
// It is a no-op (per spec.md's documented subtlety, reproduced verbatim)
// when the pin is not currently acting as an input.
func (p *Pin) LinkTo(peer Component, peerPin int) {
	if p.mode != modeInput {
		return
	}
	p.links[pinLink{peer, peerPin}] = struct{}{}
}

// SwitchMode switches a bidirectional pin's role. It is an error on a
// unidirectional pin.
func (p *Pin) SwitchMode(mode pinMode) error {
	if !p.bidirectional {
		return errors.New("pin is not bidirectional")
	}
	p.mode = mode
	return nil
}

// Simulate runs the input-pin evaluation state machine for tick. It is
// idempotent within a tick and breaks cycles by returning immediately when
// re-entered while already Computing at the same tick. The new aggregate
// is stored only once every link has been read, so a re-entrant reader
// sees the value from the pin's previous computation (Low before the
// first one).
func (p *Pin) Simulate(tick uint64) {
	if p.mode != modeInput {
		return
	}
	switch {
	case p.state.kind == available && p.state.tick == tick:
		return
	case p.state.kind == computing:
		if p.state.tick != tick {
			panic(errors.Errorf("nested simulation at tick %d while computing tick %d", tick, p.state.tick))
		}
		return
	}
	p.state = tickState{kind: computing, tick: tick}
	aggregate := Low
	for l := range p.links {
		if l.peer == nil {
			panic(errors.New("simulate: peer link expired"))
		}
		l.peer.Simulate(tick)
		v, err := l.peer.Compute(l.pin)
		if err != nil {
			panic(errors.Wrap(err, "simulate: computing linked peer"))
		}
		aggregate = Or(aggregate, v)
	}
	p.aggregate = aggregate
	p.state = tickState{kind: available, tick: tick}
}

// ComputeInput returns the aggregate stored by the pin's last completed
// computation (Low before the first one, and Low when acting as an
// output).
func (p *Pin) ComputeInput() Tristate {
	if p.mode != modeInput {
		return Low
	}
	return p.aggregate
}

// ComputeForExternal returns the value this pin drives toward external
// peers: the output thunk's value when acting as an output, Low when
// acting as an input (input pins never drive peers).
func (p *Pin) ComputeForExternal() Tristate {
	if p.mode != modeOutput {
		return Low
	}
	if p.output == nil {
		return Undef
	}
	return p.output()
}
