/*
Package nanotek provides a discrete-time simulator for digital logic
circuits built from a closed catalog of component kinds: inputs, outputs,
clocks, constant sources and logic-gate ICs.

Components are wired together at the pin level into a possibly cyclic
graph. The graph is advanced one tick at a time by Circuit.Simulate; values
may be staged on inputs between ticks and read back from outputs. Signals
carry three-valued logic (Tristate): Low, High or Undef.

The sub-package components provides the concrete catalog (inputs,
outputs, clocks, constants and gate ICs) and the gate primitives the ICs
are built from. The sub-package dsl parses the textual circuit
description format into calls against a Circuit's Builder.
*/
package nanotek
