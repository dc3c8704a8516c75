package hal

import "testing"

func TestCounterFoldAndTakeBoth(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1000} {
		var c counter
		c.fold(n)
		if !c.takeTriggered() {
			t.Errorf("fold(%d): expected triggered", n)
		}
		if got := c.takeCount(); got != n {
			t.Errorf("fold(%d): count = %d", n, got)
		}
		if c != 0 {
			t.Errorf("fold(%d): cell = %#x after both reads, want 0", n, c)
		}
	}
}

func TestCounterFoldZeroLeavesCell(t *testing.T) {
	var c counter
	c.fold(0)
	if c != 0 {
		t.Errorf("fold(0) changed cell to %#x", c)
	}
	if c.takeTriggered() {
		t.Error("triggered set without events")
	}
	if got := c.takeCount(); got != 0 {
		t.Errorf("count = %d without events", got)
	}
}

func TestCounterTriggeredIdempotence(t *testing.T) {
	var c counter
	c.fold(3)
	if !c.takeTriggered() {
		t.Fatal("first read: expected triggered")
	}
	if c.takeTriggered() {
		t.Error("second read without new events: expected not triggered")
	}
}

func TestCounterIndependentClears(t *testing.T) {
	var c counter
	c.fold(5)

	// Taking the count must not clear the triggered flag.
	if got := c.takeCount(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if !c.takeTriggered() {
		t.Error("taking the count cleared the triggered flag")
	}

	// Taking the flag must not reduce the count.
	c.fold(4)
	if !c.takeTriggered() {
		t.Fatal("expected triggered")
	}
	if got := c.takeCount(); got != 4 {
		t.Errorf("taking the flag changed the count: %d, want 4", got)
	}
}

func TestCounterAccumulation(t *testing.T) {
	var c counter
	c.fold(3)
	c.fold(4)
	if got := c.takeCount(); got != 7 {
		t.Errorf("count = %d, want 3+4", got)
	}
}
