// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nanotek

import "strconv"

// Tristate is the value carried on a wire: Low, High or Undef. The zero
// value is Undef, so a freshly allocated Tristate renders as "U" rather
// than "0" — every pin that has never been driven is undefined, not low.
type Tristate uint8

// The three signal values.
const (
	Undef Tristate = iota
	Low
	High
)

// ParseTristate parses the strict textual forms "0", "1" and "U". Any
// other input is a *ParseError.
func ParseTristate(s string) (Tristate, error) {
	switch s {
	case "0":
		return Low, nil
	case "1":
		return High, nil
	case "U":
		return Undef, nil
	default:
		return Undef, &ParseError{Text: s}
	}
}

// String renders a Tristate in its strict textual form. It is the inverse
// of ParseTristate.
func (t Tristate) String() string {
	switch t {
	case Low:
		return "0"
	case High:
		return "1"
	default:
		return "U"
	}
}

// Not negates t. Not(Undef) is Undef; otherwise the boolean value flips.
func Not(t Tristate) Tristate {
	switch t {
	case Low:
		return High
	case High:
		return Low
	default:
		return Undef
	}
}

// And computes a AND b. Low dominates: any Low input forces Low even if
// the other operand is Undef. Otherwise any Undef forces Undef.
func And(a, b Tristate) Tristate {
	if a == Low || b == Low {
		return Low
	}
	if a == Undef || b == Undef {
		return Undef
	}
	return High
}

// Or computes a OR b. High dominates symmetrically to And's Low.
func Or(a, b Tristate) Tristate {
	if a == High || b == High {
		return High
	}
	if a == Undef || b == Undef {
		return Undef
	}
	return Low
}

// Xor computes a XOR b. Any Undef operand forces Undef.
func Xor(a, b Tristate) Tristate {
	if a == Undef || b == Undef {
		return Undef
	}
	if a == b {
		return Low
	}
	return High
}

// ParseError is returned by ParseTristate for any text other than "0",
// "1" or "U".
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return "invalid tristate value " + strconv.Quote(e.Text)
}
