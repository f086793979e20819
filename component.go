// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

import "strconv"

// Component is the contract every catalog entry implements (§3's
// polymorphism note). It is an interface rather than a tagged union —
// the teacher (db47h/hwsim)'s own Updater/Wrapper/Ticker family makes the
// same choice, and spec.md's Design Notes call either approach fine.
type Component interface {
	// Simulate evaluates the component at tick, memoizing so that the
	// body runs at most once per tick even under repeated/cyclic calls.
	Simulate(tick uint64)
	// Compute returns the current value driven on the given pin, or
	// InvalidPin if the pin number is out of range for this component.
	Compute(pin int) (Tristate, error)
	// SetLink records a weak link from one of this component's input
	// pins to a peer (component, pin) endpoint. It is a no-op, not an
	// error, when pin is an output pin (see DESIGN.md, Open Question 2).
	SetLink(pin int, peer Component, peerPin int) error
}

// InputCapable is implemented by components that accept a user-staged
// next-tick value (currently: input, clock).
type InputCapable interface {
	SetNextValue(Tristate)
	CurrentValue() Tristate
}

// OutputCapable is implemented by components that expose a latched,
// observable value (currently: output).
type OutputCapable interface {
	Value() Tristate
}

// InvalidPin is returned by Component.Compute/SetLink and PinContainer
// operations when the pin number is not a valid pin for the component.
type InvalidPin struct {
	Pin int
}

func (e *InvalidPin) Error() string {
	return "invalid pin number " + strconv.Itoa(e.Pin)
}

// NotAnInputPin reports that a pin given to an operation is not an input
// pin. No operation in this package returns it: SwitchPinToMode reports a
// non-bidirectional pin with a plain error, and SetLinkToExternal ignores
// output pins.
type NotAnInputPin struct {
	Pin int
}

func (e *NotAnInputPin) Error() string {
	return "pin " + strconv.Itoa(e.Pin) + " is not an input pin"
}
