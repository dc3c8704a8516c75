package hal_test

import (
	"testing"

	"ubithal/hal"
	"ubithal/sim"
)

func newBoard(t *testing.T) (*hal.Board, *sim.Board) {
	t.Helper()
	s := sim.NewBoard()
	b, err := hal.New(s.Devices())
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}
	return b, s
}

func TestButtonStatePassthrough(t *testing.T) {
	b, s := newBoard(t)

	pressed, err := b.ButtonState(hal.ButtonA, nil, nil)
	if err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if pressed {
		t.Error("expected not pressed")
	}

	s.Buttons[hal.ButtonA].Hold(true)
	pressed, err = b.ButtonState(hal.ButtonA, nil, nil)
	if err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if !pressed {
		t.Error("expected pressed")
	}
}

func TestButtonStateCountsPresses(t *testing.T) {
	b, s := newBoard(t)

	// Three polls, each with press activity, before any read.
	for i := 0; i < 3; i++ {
		s.Buttons[hal.ButtonB].Press()
		if _, err := b.ButtonState(hal.ButtonB, nil, nil); err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
	}
	// Polls without outputs requested must not touch the counter, so
	// fold the edges in with outputs requested instead.
	var was bool
	var presses int
	s.Buttons[hal.ButtonB].Press()
	if _, err := b.ButtonState(hal.ButtonB, &was, &presses); err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if !was {
		t.Error("expected a press since last poll")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}

	// No new activity: flag reads false, count reads zero.
	if _, err := b.ButtonState(hal.ButtonB, &was, &presses); err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if was || presses != 0 {
		t.Errorf("idle poll: was=%v presses=%d, want false/0", was, presses)
	}
}

func TestButtonStateAccumulatesAcrossPolls(t *testing.T) {
	b, s := newBoard(t)
	var presses int

	// Each poll-with-activity contributes one press to the pending
	// count until somebody reads it.
	for i := 0; i < 4; i++ {
		s.Buttons[hal.ButtonA].Press()
		var was bool
		if _, err := b.ButtonState(hal.ButtonA, &was, nil); err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
		if !was {
			t.Errorf("poll %d: expected press flag", i)
		}
	}
	if _, err := b.ButtonState(hal.ButtonA, nil, &presses); err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if presses != 4 {
		t.Errorf("presses = %d, want 4", presses)
	}
}

func TestButtonStateFlagAndCountIndependent(t *testing.T) {
	b, s := newBoard(t)

	s.Buttons[hal.ButtonA].Press()
	var presses int
	if _, err := b.ButtonState(hal.ButtonA, nil, &presses); err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if presses != 1 {
		t.Fatalf("presses = %d, want 1", presses)
	}

	// The count read must have left the flag pending.
	var was bool
	if _, err := b.ButtonState(hal.ButtonA, &was, nil); err != nil {
		t.Fatalf("ButtonState: %v", err)
	}
	if !was {
		t.Error("count read cleared the press flag")
	}
}

func TestButtonStateBadIndex(t *testing.T) {
	b, _ := newBoard(t)
	if _, err := b.ButtonState(hal.NumButtons, nil, nil); err == nil {
		t.Error("expected error for out-of-range button")
	}
	if _, err := b.ButtonState(-1, nil, nil); err == nil {
		t.Error("expected error for negative button")
	}
}
