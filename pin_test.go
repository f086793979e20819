package nanotek

import "testing"

// constPeer is a minimal Component stub driving a fixed value on pin 1.
type constPeer struct {
	value     Tristate
	simulated bool
}

func (p *constPeer) Simulate(tick uint64) { p.simulated = true }

func (p *constPeer) Compute(pin int) (Tristate, error) {
	if pin != 1 {
		return Undef, &InvalidPin{Pin: pin}
	}
	return p.value, nil
}

func (p *constPeer) SetLink(pin int, peer Component, peerPin int) error { return nil }

func TestInputPinAggregatesOr(t *testing.T) {
	p := newInputPin()
	a := &constPeer{value: Low}
	b := &constPeer{value: High}
	p.LinkTo(a, 1)
	p.LinkTo(b, 1)

	p.Simulate(1)
	if got := p.ComputeInput(); got != High {
		t.Errorf("ComputeInput() = %v, want High", got)
	}
	if !a.simulated || !b.simulated {
		t.Error("expected both peers to be simulated")
	}
}

func TestInputPinNoLinksIsLow(t *testing.T) {
	p := newInputPin()
	p.Simulate(1)
	if got := p.ComputeInput(); got != Low {
		t.Errorf("ComputeInput() with no links = %v, want Low", got)
	}
}

func TestInputPinMemoizesPerTick(t *testing.T) {
	p := newInputPin()
	a := &constPeer{value: Low}
	p.LinkTo(a, 1)

	p.Simulate(1)
	a.simulated = false
	p.Simulate(1)
	if a.simulated {
		t.Error("peer re-simulated on an already-Available tick")
	}
}

func TestInputPinBreaksCycles(t *testing.T) {
	// p1 links to a peer whose Simulate re-enters p1.Simulate at the same
	// tick; the cycle must resolve instead of recursing forever.
	p1 := newInputPin()
	cyclePeer := &cyclingPeer{pin: p1}
	p1.LinkTo(cyclePeer, 1)

	p1.Simulate(1) // must return
	if got := p1.ComputeInput(); got != High {
		t.Errorf("cyclic ComputeInput() = %v, want High (the outer pass still ORs in the peer's value)", got)
	}
}

type cyclingPeer struct{ pin *Pin }

func (c *cyclingPeer) Simulate(tick uint64) { c.pin.Simulate(tick) }

func (c *cyclingPeer) Compute(pin int) (Tristate, error) { return High, nil }

func (c *cyclingPeer) SetLink(pin int, peer Component, peerPin int) error { return nil }

func TestInputPinPanicsOnMismatchedNestedTick(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nested simulation at a different tick")
		}
	}()
	p := newInputPin()
	p.state = tickState{kind: computing, tick: 1}
	p.Simulate(2)
}

func TestOutputPinComputeForExternal(t *testing.T) {
	p := newOutputPin(func() Tristate { return High })
	if got := p.ComputeForExternal(); got != High {
		t.Errorf("ComputeForExternal() = %v, want High", got)
	}
	if got := p.ComputeInput(); got != Low {
		t.Errorf("output pin ComputeInput() = %v, want Low", got)
	}
}

func TestOutputPinNilThunkIsUndef(t *testing.T) {
	p := newOutputPin(nil)
	if got := p.ComputeForExternal(); got != Undef {
		t.Errorf("ComputeForExternal() with nil thunk = %v, want Undef", got)
	}
}

func TestBidiPinSwitchMode(t *testing.T) {
	p := newBidiPin(func() Tristate { return High })
	if got := p.ComputeForExternal(); got != Low {
		t.Errorf("bidi pin in input mode ComputeForExternal() = %v, want Low", got)
	}
	if err := p.SwitchMode(modeOutput); err != nil {
		t.Fatalf("SwitchMode: %v", err)
	}
	if got := p.ComputeForExternal(); got != High {
		t.Errorf("bidi pin in output mode ComputeForExternal() = %v, want High", got)
	}
}

func TestSwitchModeOnUnidirectionalPinErrors(t *testing.T) {
	p := newInputPin()
	if err := p.SwitchMode(modeOutput); err == nil {
		t.Error("expected error switching mode on a non-bidirectional pin")
	}
}

func TestLinkToIsNoOpOnOutputPin(t *testing.T) {
	p := newOutputPin(func() Tristate { return High })
	p.LinkTo(&constPeer{value: Low}, 1)
	if len(p.links) != 0 {
		t.Error("LinkTo should be a no-op on an output-mode pin")
	}
}

func TestLinkToIsIdempotent(t *testing.T) {
	p := newInputPin()
	peer := &constPeer{value: Low}
	p.LinkTo(peer, 1)
	p.LinkTo(peer, 1)
	if len(p.links) != 1 {
		t.Errorf("len(links) = %d, want 1 (idempotent insertion)", len(p.links))
	}
}
