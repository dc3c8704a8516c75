package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ubithal/hal"
	"ubithal/sim"
)

func newBoard(t *testing.T) (*hal.Board, *sim.Board) {
	t.Helper()
	sb := sim.NewBoard()
	b, err := hal.New(sb.Devices())
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}
	return b, sb
}

func TestPollSnapshot(t *testing.T) {
	b, sb := newBoard(t)
	sb.Buttons[hal.ButtonA].Hold(true)
	sb.Accel.SetSample(-8, 16, -1004)
	sb.Compass.SetHeading(270)
	sb.Display.SetLightLevel(128)
	sb.System.SetTemperature(19)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	snap, err := pollSnapshot(b, now)
	if err != nil {
		t.Fatalf("pollSnapshot: %v", err)
	}
	if !snap.ButtonA || snap.ButtonB {
		t.Errorf("buttons = %t/%t, want A held only", snap.ButtonA, snap.ButtonB)
	}
	if snap.AccelX != -8 || snap.AccelY != 16 || snap.AccelZ != -1004 {
		t.Errorf("accel = (%d,%d,%d)", snap.AccelX, snap.AccelY, snap.AccelZ)
	}
	if snap.Heading != 270 || snap.LightLevel != 128 || snap.Temperature != 19 {
		t.Errorf("heading=%d light=%d temp=%d", snap.Heading, snap.LightLevel, snap.Temperature)
	}
	if !snap.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v", snap.Timestamp)
	}
}

func TestPollSnapshotSparseBoard(t *testing.T) {
	sb := sim.NewBoard()
	dev := sb.Devices()
	dev.Accel = nil
	dev.Compass = nil
	dev.Display = nil
	b, err := hal.New(dev)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}

	snap, err := pollSnapshot(b, time.Now())
	if err != nil {
		t.Fatalf("pollSnapshot on sparse board: %v", err)
	}
	if snap.AccelX != 0 || snap.Heading != 0 || snap.LightLevel != 0 {
		t.Errorf("missing devices must read as zero, got %+v", snap)
	}
}

func TestLogSnapshotCommitsRow(t *testing.T) {
	b, sb := newBoard(t)
	sb.Accel.SetSample(5, -6, 7)

	snap, err := pollSnapshot(b, time.Now())
	if err != nil {
		t.Fatalf("pollSnapshot: %v", err)
	}
	if err := logSnapshot(b, snap); err != nil {
		t.Fatalf("logSnapshot: %v", err)
	}

	rows := sb.Log.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	cols := sb.Log.Columns()
	want := []string{"ax", "ay", "az", "light", "temp"}
	if len(cols) != len(want) {
		t.Fatalf("columns = %v, want %v", cols, want)
	}
	for i, c := range cols {
		if c != want[i] {
			t.Errorf("column %d = %q, want %q", i, c, want[i])
		}
	}
	if rows[0][0] != "5" || rows[0][1] != "-6" || rows[0][2] != "7" {
		t.Errorf("row = %v", rows[0])
	}
}

func TestDrainMirrorForwardsLogRows(t *testing.T) {
	b, sb := newBoard(t)
	if err := b.LogSetMirroring(true); err != nil {
		t.Fatalf("LogSetMirroring: %v", err)
	}

	snap, err := pollSnapshot(b, time.Now())
	if err != nil {
		t.Fatalf("pollSnapshot: %v", err)
	}
	if err := logSnapshot(b, snap); err != nil {
		t.Fatalf("logSnapshot: %v", err)
	}

	var sink bytes.Buffer
	if err := drainMirror(&sb.SerialOut, &sink); err != nil {
		t.Fatalf("drainMirror: %v", err)
	}
	if !strings.Contains(sink.String(), "\r\n") {
		t.Errorf("no mirrored row reached the sink: %q", sink.String())
	}
	if sb.SerialOut.Len() != 0 {
		t.Error("drain left data buffered")
	}

	// Nothing new buffered: the next drain writes nothing.
	sink.Reset()
	if err := drainMirror(&sb.SerialOut, &sink); err != nil {
		t.Fatalf("drainMirror: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("empty drain wrote %q", sink.String())
	}
}
