// Package telemetry publishes board sensor snapshots to an MQTT
// broker, with the transport abstracted for testing.
package telemetry

import (
	"encoding/json"
	"time"
)

// Topic is the MQTT topic snapshots are published on.
const Topic = "ubithal/board/readings"

// Publisher ships snapshots to the broker.
type Publisher interface {
	// Publish sends one snapshot. A failure must not crash the caller.
	Publish(s Snapshot) error

	// Close disconnects from the broker.
	Close() error
}

// Snapshot is one poll of the board state.
type Snapshot struct {
	Timestamp   time.Time
	ButtonA     bool
	ButtonB     bool
	AccelX      int
	AccelY      int
	AccelZ      int
	Heading     int
	LightLevel  int
	Temperature int
}

// Payload is the wire shape of a snapshot.
type Payload struct {
	Board BoardPayload `json:"board"`
}

// BoardPayload carries the snapshot fields.
type BoardPayload struct {
	Timestamp   string       `json:"timestamp"`
	Buttons     ButtonStates `json:"buttons"`
	Accel       AccelSample  `json:"accel"`
	Heading     int          `json:"heading"`
	LightLevel  int          `json:"light_level"`
	Temperature int          `json:"temperature"`
}

// ButtonStates reports the two board buttons.
type ButtonStates struct {
	A bool `json:"a"`
	B bool `json:"b"`
}

// AccelSample is one acceleration reading in milli-g.
type AccelSample struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// FormatPayload creates the JSON payload for a snapshot.
func FormatPayload(s Snapshot) ([]byte, error) {
	payload := Payload{
		Board: BoardPayload{
			Timestamp:   s.Timestamp.UTC().Format(time.RFC3339),
			Buttons:     ButtonStates{A: s.ButtonA, B: s.ButtonB},
			Accel:       AccelSample{X: s.AccelX, Y: s.AccelY, Z: s.AccelZ},
			Heading:     s.Heading,
			LightLevel:  s.LightLevel,
			Temperature: s.Temperature,
		},
	}
	return json.Marshal(payload)
}
