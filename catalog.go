// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

// Factory builds a fresh instance of a catalog component kind. Factories
// are registered under the type-name string the DSL uses (§4.5's table:
// "input", "clock", "4011", ...).
//
// This plays the role the teacher's NewPartFn/PartSpec pair plays in
// db47h/hwsim, adapted from "compose a part by calling a Go function" to
// "look a factory up by the string name the DSL parsed" — spec.md's
// catalog is selected by text at build time, not by Go identifier.
type Factory func() (Component, error)

var catalog = make(map[string]Factory)

// Register adds a factory to the catalog under typeName. Catalog packages
// (such as components) call this from an init function. Registering the
// same type name twice replaces the previous entry — this only matters
// for tests that stub out catalog entries.
func Register(typeName string, f Factory) {
	catalog[typeName] = f
}

// Lookup returns the factory registered under typeName, if any.
func Lookup(typeName string) (Factory, bool) {
	f, ok := catalog[typeName]
	return f, ok
}
