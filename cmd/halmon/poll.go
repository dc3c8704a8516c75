package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"ubithal/hal"
	"ubithal/host/telemetry"
)

// pollSnapshot gathers one telemetry snapshot from the board. Missing
// optional devices read as zero values rather than failing the poll.
func pollSnapshot(b *hal.Board, now time.Time) (telemetry.Snapshot, error) {
	s := telemetry.Snapshot{Timestamp: now}

	var err error
	if s.ButtonA, err = b.ButtonState(hal.ButtonA, nil, nil); err != nil {
		return s, fmt.Errorf("button a: %w", err)
	}
	if s.ButtonB, err = b.ButtonState(hal.ButtonB, nil, nil); err != nil {
		return s, fmt.Errorf("button b: %w", err)
	}

	if x, y, z, err := b.AccelerometerSample(); err == nil {
		s.AccelX, s.AccelY, s.AccelZ = x, y, z
	} else if !errors.Is(err, hal.ErrNotSupported) {
		return s, fmt.Errorf("accelerometer: %w", err)
	}
	if h, err := b.CompassHeading(); err == nil {
		s.Heading = h
	}
	if l, err := b.DisplayLightLevel(); err == nil {
		s.LightLevel = l
	}
	if t, err := b.Temperature(); err == nil {
		s.Temperature = t
	}
	return s, nil
}

// logSnapshot appends one snapshot as a data log row.
func logSnapshot(b *hal.Board, s telemetry.Snapshot) error {
	if err := b.LogBeginRow(); err != nil {
		return err
	}
	fields := []struct{ key, value string }{
		{"ax", strconv.Itoa(s.AccelX)},
		{"ay", strconv.Itoa(s.AccelY)},
		{"az", strconv.Itoa(s.AccelZ)},
		{"light", strconv.Itoa(s.LightLevel)},
		{"temp", strconv.Itoa(s.Temperature)},
	}
	for _, f := range fields {
		if err := b.LogData(f.key, f.value); err != nil {
			return err
		}
	}
	return b.LogEndRow()
}

// drainMirror forwards buffered log-mirror output to the sink and
// resets the buffer. A no-op when nothing is buffered.
func drainMirror(buf *bytes.Buffer, w io.Writer) error {
	if buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(buf.Bytes())
	buf.Reset()
	return err
}
