package nanotek_test

import (
	"testing"

	"github.com/mpelletier/nanotek"
)

func TestParseTristateRoundtrip(t *testing.T) {
	for _, v := range []nanotek.Tristate{nanotek.Low, nanotek.High, nanotek.Undef} {
		got, err := nanotek.ParseTristate(v.String())
		if err != nil {
			t.Fatalf("ParseTristate(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("roundtrip %v: got %v", v, got)
		}
	}
}

func TestParseTristateStrict(t *testing.T) {
	for _, s := range []string{"", "u", "2", "true", "01"} {
		if _, err := nanotek.ParseTristate(s); err == nil {
			t.Errorf("ParseTristate(%q): expected error, got nil", s)
		}
	}
}

func TestNotInvolution(t *testing.T) {
	for _, v := range []nanotek.Tristate{nanotek.Low, nanotek.High} {
		if got := nanotek.Not(nanotek.Not(v)); got != v {
			t.Errorf("Not(Not(%v)) = %v, want %v", v, got, v)
		}
	}
	if got := nanotek.Not(nanotek.Undef); got != nanotek.Undef {
		t.Errorf("Not(Undef) = %v, want Undef", got)
	}
}

func TestAndTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want nanotek.Tristate
	}{
		{nanotek.Low, nanotek.Low, nanotek.Low},
		{nanotek.Low, nanotek.High, nanotek.Low},
		{nanotek.Low, nanotek.Undef, nanotek.Low},
		{nanotek.High, nanotek.High, nanotek.High},
		{nanotek.High, nanotek.Undef, nanotek.Undef},
		{nanotek.Undef, nanotek.Undef, nanotek.Undef},
	}
	for _, c := range cases {
		if got := nanotek.And(c.a, c.b); got != c.want {
			t.Errorf("And(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := nanotek.And(c.b, c.a); got != c.want {
			t.Errorf("And(%v, %v) = %v, want %v (not commutative)", c.b, c.a, got, c.want)
		}
	}
}

func TestOrTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want nanotek.Tristate
	}{
		{nanotek.High, nanotek.High, nanotek.High},
		{nanotek.High, nanotek.Low, nanotek.High},
		{nanotek.High, nanotek.Undef, nanotek.High},
		{nanotek.Low, nanotek.Low, nanotek.Low},
		{nanotek.Low, nanotek.Undef, nanotek.Undef},
		{nanotek.Undef, nanotek.Undef, nanotek.Undef},
	}
	for _, c := range cases {
		if got := nanotek.Or(c.a, c.b); got != c.want {
			t.Errorf("Or(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestXorTruthTable(t *testing.T) {
	cases := []struct {
		a, b, want nanotek.Tristate
	}{
		{nanotek.Low, nanotek.Low, nanotek.Low},
		{nanotek.High, nanotek.High, nanotek.Low},
		{nanotek.Low, nanotek.High, nanotek.High},
		{nanotek.Low, nanotek.Undef, nanotek.Undef},
		{nanotek.High, nanotek.Undef, nanotek.Undef},
		{nanotek.Undef, nanotek.Undef, nanotek.Undef},
	}
	for _, c := range cases {
		if got := nanotek.Xor(c.a, c.b); got != c.want {
			t.Errorf("Xor(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
