// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

import "github.com/pkg/errors"

// PinKind describes the role a numbered pin plays within a PinContainer:
// an aggregating input, a driven output, or a runtime-switchable
// bidirectional pin. Pins not mentioned in a PinContainer's spec default
// to a floating output that always reports Undef.
type PinKind uint8

// The three pin roles a PinContainer can be told about at construction.
const (
	PinInput PinKind = iota
	PinOutput
	PinBidirectional
)

// Driver is invoked once per tick by PinContainer.Simulate, after the
// container's own input pins have been freshened, so that the owning
// component can write its manually-driven output pins via SetOutput.
type Driver func(c *PinContainer)

// PinContainer is the per-component evaluation machinery shared by every
// catalog entry: an ordered set of numbered pins, a per-tick memoization
// token identical in shape to Pin's, and — for composite components — a
// proxy representing the outside world to internally-owned sub-parts.
//
// This generalizes the teacher's Socket+chipImpl pair (db47h/hwsim's
// socket.go/chip.go) from "fan a tick out across owned sub-updaters" to
// the richer Manual/Automatic output split spec.md's composite model
// requires.
type PinContainer struct {
	n         int
	pins      map[int]*Pin
	manual    map[int]*Tristate
	automatic map[int]*Pin
	state     tickState
	proxy     *proxy
}

// NewPinContainer builds a container with n numbered pins (1..n), each
// assigned the role given in spec. Pins absent from spec default to a
// floating Undef output. A spec entry naming a pin outside 1..n is a
// construction error.
func NewPinContainer(n int, spec map[int]PinKind) (*PinContainer, error) {
	if n < 1 {
		return nil, errors.New("pin container must declare at least one pin")
	}
	for p := range spec {
		if p < 1 || p > n {
			return nil, errors.Errorf("pin spec references out-of-range pin %d (container has %d pins)", p, n)
		}
	}
	c := &PinContainer{
		n:         n,
		pins:      make(map[int]*Pin, n),
		manual:    make(map[int]*Tristate),
		automatic: make(map[int]*Pin),
	}
	for i := 1; i <= n; i++ {
		kind, ok := spec[i]
		if !ok {
			c.pins[i] = newOutputPin(func() Tristate { return Undef })
			continue
		}
		switch kind {
		case PinInput:
			c.pins[i] = newInputPin()
		case PinOutput:
			cell := new(Tristate)
			c.manual[i] = cell
			c.pins[i] = newOutputPin(func() Tristate { return *cell })
		case PinBidirectional:
			cell := new(Tristate)
			c.manual[i] = cell
			c.pins[i] = newBidiPin(func() Tristate { return *cell })
		default:
			return nil, errors.Errorf("unknown pin kind for pin %d", i)
		}
	}
	return c, nil
}

func (c *PinContainer) resolvePin(pin int) (*Pin, error) {
	if pin < 1 || pin > c.n {
		return nil, &InvalidPin{Pin: pin}
	}
	return c.pins[pin], nil
}

// Simulate runs the container's per-tick evaluation: on first entry at
// tick, it freshens every owned input pin, then invokes driver (if any)
// so the owner can write its manually-driven outputs. Automatic outputs
// are not forced here — per spec.md's overview, evaluation pulls values
// on demand; an automatic output is computed (and memoized) the first
// time anything asks for it via ComputeForExternal, whether that happens
// during this call or later in the same tick.
func (c *PinContainer) Simulate(tick uint64, driver Driver) {
	switch {
	case c.state.kind == available && c.state.tick == tick:
		return
	case c.state.kind == computing:
		if c.state.tick != tick {
			panic(errors.Errorf("nested simulation at tick %d while computing tick %d", tick, c.state.tick))
		}
		return
	}
	c.state = tickState{kind: computing, tick: tick}
	c.simulateInputsOnly(tick)
	if driver != nil {
		driver(c)
	}
	c.state = tickState{kind: available, tick: tick}
}

// simulateInputsOnly freshens every owned input pin without touching the
// container's own tick token or invoking a driver. It backs both the
// "first entry" step of Simulate and the internal-component proxy's
// Simulate, which only ever needs to refresh external input pins.
func (c *PinContainer) simulateInputsOnly(tick uint64) {
	for i := 1; i <= c.n; i++ {
		if p := c.pins[i]; p != nil && p.mode == modeInput {
			p.Simulate(tick)
		}
	}
}

// ComputeInput returns the current aggregate of an input (or
// input-mode-bidirectional) pin, forcing it to (re)evaluate first if the
// container has ever been simulated. Calling this on an output-mode pin
// returns Low, per Pin.ComputeInput.
func (c *PinContainer) ComputeInput(pin int) (Tristate, error) {
	p, err := c.resolvePin(pin)
	if err != nil {
		return Undef, err
	}
	if c.state.kind != neverComputed {
		p.Simulate(c.state.tick)
	}
	return p.ComputeInput(), nil
}

// ComputeForExternal returns the value the given pin currently drives
// toward external peers. For a pin with an Automatic driver this forces
// (and memoizes) the internal sub-component pull on demand.
func (c *PinContainer) ComputeForExternal(pin int) (Tristate, error) {
	p, err := c.resolvePin(pin)
	if err != nil {
		return Undef, err
	}
	return p.ComputeForExternal(), nil
}

// SetLinkToExternal adds a link from an input pin to a peer endpoint. As
// documented in spec.md's Open Questions, this is silently a no-op when
// pin is not currently acting as an input: the peer is expected to record
// the reverse link itself.
func (c *PinContainer) SetLinkToExternal(pin int, peer Component, peerPin int) error {
	p, err := c.resolvePin(pin)
	if err != nil {
		return err
	}
	p.LinkTo(peer, peerPin)
	return nil
}

// SwitchPinToMode switches a bidirectional pin's current role. It errors
// on a pin that isn't bidirectional.
func (c *PinContainer) SwitchPinToMode(pin int, mode pinMode) error {
	p, err := c.resolvePin(pin)
	if err != nil {
		return err
	}
	return p.SwitchMode(mode)
}

// Input is a convenience for Driver implementations: it returns the
// current aggregate of an input pin, panicking on an invalid pin number
// since catalog components always address their own, statically-known
// pins (mirrors the teacher's Socket.Wire, which makes the same
// assumption).
func (c *PinContainer) Input(pin int) Tristate {
	v, err := c.ComputeInput(pin)
	if err != nil {
		panic(err)
	}
	return v
}

// SetOutput writes a manually-driven output pin's current value. It
// panics if pin is not a manually-driven output (a programming error in
// the catalog entry calling it, not a runtime condition).
func (c *PinContainer) SetOutput(pin int, v Tristate) {
	cell, ok := c.manual[pin]
	if !ok {
		panic(errors.Errorf("pin %d is not a manually-driven output", pin))
	}
	*cell = v
}

// Proxy returns the internal-component proxy this container presents to
// its own sub-components, creating it lazily. Only composite components
// need this.
func (c *PinContainer) Proxy() Component {
	if c.proxy == nil {
		c.proxy = &proxy{container: c}
	}
	return c.proxy
}

// SetAutomaticOutput installs an Automatic driver on pin p: its value is
// no longer manually written but pulled, on demand, from a sub-component
// owned by this container (sub, at its output pin subPin). This is how a
// composite wires an external output pin to one of its internal parts.
func (c *PinContainer) SetAutomaticOutput(pin int, sub Component, subPin int) error {
	if pin < 1 || pin > c.n {
		return &InvalidPin{Pin: pin}
	}
	internal := newInputPin()
	internal.LinkTo(sub, subPin)
	c.automatic[pin] = internal
	delete(c.manual, pin)
	c.pins[pin] = newOutputPin(func() Tristate {
		internal.Simulate(c.state.tick)
		return internal.ComputeInput()
	})
	return nil
}

// proxy is the Component a composite's internal sub-components see in
// place of the outside world: it forwards Simulate to the container's
// input-only refresh pass, and Compute to the container's external input
// aggregation, so a sub-component's input pin linked to "the composite
// itself" transparently observes the composite's real external links.
type proxy struct {
	container *PinContainer
}

func (p *proxy) Simulate(tick uint64) { p.container.simulateInputsOnly(tick) }

func (p *proxy) Compute(pin int) (Tristate, error) { return p.container.ComputeInput(pin) }

func (p *proxy) SetLink(pin int, peer Component, peerPin int) error {
	return p.container.SetLinkToExternal(pin, peer, peerPin)
}
