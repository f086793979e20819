// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Circuit is a built, runnable simulation: a name registry plus a
// monotonic tick counter. Names are unique, case-sensitive and immutable
// once Build has returned — grounded on the teacher's NewCircuit
// (db47h/hwsim's hwsim.go), generalized from "wrap parts in an anonymous
// top chip" to "keep every named component addressable by the user".
type Circuit struct {
	components map[string]Component
	tick       uint64
}

// Simulate advances the circuit by one tick: every component is asked to
// evaluate itself at the new tick. The iteration order over components is
// unspecified — per-pin memoization makes the result independent of it.
func (c *Circuit) Simulate() {
	c.tick++
	c.simulateAt(c.tick)
}

func (c *Circuit) simulateAt(tick uint64) {
	for _, comp := range c.components {
		comp.Simulate(tick)
	}
}

// Tick returns the current tick counter.
func (c *Circuit) Tick() uint64 { return c.tick }

// SetValue parses text as a Tristate and stages it on the named
// component for the next tick. It does not simulate. The circuit is left
// unchanged on error.
func (c *Circuit) SetValue(name, text string) error {
	comp, ok := c.components[name]
	if !ok {
		return &SetValueError{Kind: UnknownName, Name: name}
	}
	ic, ok := comp.(InputCapable)
	if !ok {
		return &SetValueError{Kind: NotAnInput, Name: name}
	}
	v, err := ParseTristate(text)
	if err != nil {
		return &SetValueError{Kind: ValueParseErr, Name: name, Err: err}
	}
	ic.SetNextValue(v)
	return nil
}

// GetInput returns the textual form of the named input's current latched
// state, or ok=false if the component doesn't exist or isn't an input.
func (c *Circuit) GetInput(name string) (value string, ok bool) {
	comp, exists := c.components[name]
	if !exists {
		return "", false
	}
	ic, isInput := comp.(InputCapable)
	if !isInput {
		return "", false
	}
	return ic.CurrentValue().String(), true
}

// GetOutput returns the textual form of the named output's last sampled
// value, or ok=false if the component doesn't exist or isn't an output.
func (c *Circuit) GetOutput(name string) (value string, ok bool) {
	comp, exists := c.components[name]
	if !exists {
		return "", false
	}
	oc, isOutput := comp.(OutputCapable)
	if !isOutput {
		return "", false
	}
	return oc.Value().String(), true
}

// String renders the two-section dump described in spec.md §6: a tick
// line, then a sorted inputs section, then a sorted outputs section.
func (c *Circuit) String() string {
	var b strings.Builder
	_ = c.WriteTo(&b)
	return b.String()
}

// WriteTo writes the same dump as String to w.
func (c *Circuit) WriteTo(w io.Writer) error {
	bw, ok := w.(interface{ WriteString(string) (int, error) })
	if !ok {
		bw = &stringWriter{w}
	}
	if _, err := bw.WriteString(fmt.Sprintf("tick: %d\n", c.tick)); err != nil {
		return err
	}
	if _, err := bw.WriteString("input(s):\n"); err != nil {
		return err
	}
	for _, name := range c.namesWith(func(c Component) bool { _, ok := c.(InputCapable); return ok }) {
		v, _ := c.GetInput(name)
		if _, err := bw.WriteString("  " + name + ": " + v + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("output(s):\n"); err != nil {
		return err
	}
	for _, name := range c.namesWith(func(c Component) bool { _, ok := c.(OutputCapable); return ok }) {
		v, _ := c.GetOutput(name)
		if _, err := bw.WriteString("  " + name + ": " + v + "\n"); err != nil {
			return err
		}
	}
	return nil
}

type stringWriter struct{ io.Writer }

func (s *stringWriter) WriteString(str string) (int, error) { return s.Write([]byte(str)) }

func (c *Circuit) namesWith(pred func(Component) bool) []string {
	var names []string
	for name, comp := range c.components {
		if pred(comp) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Builder drives the build protocol described in spec.md §4.6:
// AddComponent, LinkComponents, Build. It is the collaborator the DSL
// parser (and any other circuit-construction front end) targets.
//
// Grounded on the teacher's Chip() (db47h/hwsim's chip.go): parse/collect
// first, validate and wire in one pass, then hand back a runnable value.
type Builder struct {
	components map[string]Component
	types      map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		components: make(map[string]Component),
		types:      make(map[string]string),
	}
}

// AddComponent instantiates a new catalog component of the given type
// under name. Duplicate names and unknown types are build errors.
func (b *Builder) AddComponent(typeName, name string) error {
	if _, exists := b.components[name]; exists {
		return &BuildError{Kind: ComponentNameExists, Name: name}
	}
	factory, ok := Lookup(typeName)
	if !ok {
		return &BuildError{Kind: ComponentTypeUnknown, Name: name, Type: typeName}
	}
	comp, err := factory()
	if err != nil {
		return errors.Wrapf(err, "building component %q of type %q", name, typeName)
	}
	b.components[name] = comp
	b.types[name] = typeName
	return nil
}

// LinkComponents symmetrically links pinA of nameA to pinB of nameB: both
// endpoints record a weak link to each other.
func (b *Builder) LinkComponents(nameA string, pinA int, nameB string, pinB int) error {
	ca, ok := b.components[nameA]
	if !ok {
		return &BuildError{Kind: ComponentNameUnknown, Name: nameA}
	}
	cb, ok := b.components[nameB]
	if !ok {
		return &BuildError{Kind: ComponentNameUnknown, Name: nameB}
	}
	if err := ca.SetLink(pinA, cb, pinB); err != nil {
		return b.linkError(err, nameA, pinA)
	}
	if err := cb.SetLink(pinB, ca, pinA); err != nil {
		return b.linkError(err, nameB, pinB)
	}
	return nil
}

func (b *Builder) linkError(err error, name string, pin int) error {
	if _, ok := err.(*InvalidPin); ok {
		return &BuildError{Kind: ComponentLinkIssue, Name: name, Type: b.types[name], Pin: pin}
	}
	return errors.Wrapf(err, "linking pin %d of %q", pin, name)
}

// Build finalizes the circuit: at least one component must have been
// added, and the resulting Circuit is evaluated once at tick 0 before
// being returned.
func (b *Builder) Build() (*Circuit, error) {
	if len(b.components) == 0 {
		return nil, &BuildError{Kind: NoChipset}
	}
	c := &Circuit{components: b.components}
	c.simulateAt(0)
	return c, nil
}

// BuildErrorKind enumerates the build-time failure modes of §4.6/§7.
type BuildErrorKind uint8

const (
	ComponentNameExists BuildErrorKind = iota
	ComponentTypeUnknown
	ComponentNameUnknown
	ComponentLinkIssue
	NoChipset
)

// BuildError is returned by Builder methods. Name, Type and Pin are
// populated according to Kind: ComponentNameExists and
// ComponentNameUnknown set Name; ComponentTypeUnknown sets Name and Type;
// ComponentLinkIssue sets Name, Type and Pin; NoChipset sets none.
type BuildError struct {
	Kind BuildErrorKind
	Name string
	Type string
	Pin  int
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case ComponentNameExists:
		return "component name already exists: " + e.Name
	case ComponentTypeUnknown:
		return "unknown component type " + e.Type + " for component " + e.Name
	case ComponentNameUnknown:
		return "unknown component name: " + e.Name
	case ComponentLinkIssue:
		return fmt.Sprintf("invalid pin %d for component %s of type %s", e.Pin, e.Name, e.Type)
	case NoChipset:
		return "no components declared"
	default:
		return "unknown build error"
	}
}

// SetValueErrorKind enumerates the failure modes of Circuit.SetValue.
type SetValueErrorKind uint8

const (
	UnknownName SetValueErrorKind = iota
	NotAnInput
	ValueParseErr
)

// SetValueError is returned by Circuit.SetValue.
type SetValueError struct {
	Kind SetValueErrorKind
	Name string
	Err  error
}

func (e *SetValueError) Error() string {
	switch e.Kind {
	case UnknownName:
		return "unknown component name: " + e.Name
	case NotAnInput:
		return e.Name + " is not an input"
	case ValueParseErr:
		return "invalid value for " + e.Name + ": " + e.Err.Error()
	default:
		return "unknown set-value error"
	}
}

func (e *SetValueError) Unwrap() error { return e.Err }
