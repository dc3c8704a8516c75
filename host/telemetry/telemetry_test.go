package telemetry

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var (
	_ Publisher = (*MQTTPublisher)(nil)
	_ Publisher = (*FakePublisher)(nil)
)

func TestFormatPayload(t *testing.T) {
	s := Snapshot{
		Timestamp:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		ButtonA:     true,
		AccelX:      -12,
		AccelY:      40,
		AccelZ:      -1012,
		Heading:     187,
		LightLevel:  96,
		Temperature: 23,
	}

	raw, err := FormatPayload(s)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var got Payload
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Board.Timestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("timestamp = %q", got.Board.Timestamp)
	}
	if !got.Board.Buttons.A || got.Board.Buttons.B {
		t.Errorf("buttons = %+v, want A only", got.Board.Buttons)
	}
	if got.Board.Accel != (AccelSample{X: -12, Y: 40, Z: -1012}) {
		t.Errorf("accel = %+v", got.Board.Accel)
	}
	if got.Board.Heading != 187 || got.Board.LightLevel != 96 || got.Board.Temperature != 23 {
		t.Errorf("scalar fields = %+v", got.Board)
	}
}

func TestFormatPayloadUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	s := Snapshot{Timestamp: time.Date(2026, 1, 1, 1, 0, 0, 0, loc)}
	raw, err := FormatPayload(s)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	var got Payload
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Board.Timestamp != "2026-01-01T00:00:00Z" {
		t.Errorf("timestamp = %q, want UTC normalization", got.Board.Timestamp)
	}
}

func TestFakePublisher(t *testing.T) {
	f := &FakePublisher{}
	if err := f.Publish(Snapshot{ButtonB: true}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(f.Published) != 1 || !f.Published[0].ButtonB {
		t.Errorf("recorded = %+v", f.Published)
	}

	f.Fail = errors.New("broker down")
	if err := f.Publish(Snapshot{}); err == nil {
		t.Error("want scripted failure")
	}
	if len(f.Published) != 1 {
		t.Error("failed publish must not be recorded")
	}

	if err := f.Close(); err != nil || !f.Closed {
		t.Error("Close must mark the publisher closed")
	}
}
