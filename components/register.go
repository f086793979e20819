// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package components

import "github.com/mpelletier/nanotek"

// init populates nanotek's catalog with every component type the DSL is
// allowed to name (spec.md §4.5's closing list): the five single-pin
// components (input, output, clock, true, false) plus the six
// parallel-gate ICs. Raw gates are deliberately
// absent — they are internal building blocks for the ICs above, not
// catalog entries in their own right.
func init() {
	nanotek.Register("input", newInput)
	nanotek.Register("output", newOutput)
	nanotek.Register("clock", newClock)
	nanotek.Register("true", newConst(nanotek.High))
	nanotek.Register("false", newConst(nanotek.Low))

	nanotek.Register("4001", newParallelGate2(norOp))
	nanotek.Register("4011", newParallelGate2(nandOp))
	nanotek.Register("4030", newParallelGate2(xorOp))
	nanotek.Register("4069", newParallelNot)
	nanotek.Register("4071", newParallelGate2(orOp))
	nanotek.Register("4081", newParallelGate2(andOp))
}
