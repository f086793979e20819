// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dsl

import (
	"io"

	"github.com/mpelletier/nanotek"
	_ "github.com/mpelletier/nanotek/components" // registers the catalog
)

// Build reads a complete circuit description from r, parses it, and
// returns the resulting built and tick-0-evaluated Circuit. This is the
// one entry point command-line front ends need.
func Build(r io.Reader) (*nanotek.Circuit, error) {
	b := nanotek.NewBuilder()
	if err := Parse(r, b); err != nil {
		return nil, err
	}
	return b.Build()
}
