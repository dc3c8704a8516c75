package hal

// TimestampFormat selects the data log timestamp column, if any.
type TimestampFormat uint8

const (
	TimestampNone TimestampFormat = iota
	TimestampMilliseconds
	TimestampSeconds
	TimestampMinutes
	TimestampHours
	TimestampDays
)

// LogDriver is the append-only flash data log. Rows are built up with
// LogData calls between BeginRow and EndRow. Implementations report
// exhausted storage by returning an error wrapping ErrNoResources.
type LogDriver interface {
	// BeginRow starts a new row.
	BeginRow() error

	// EndRow commits the current row.
	EndRow() error

	// LogData appends one key/value field to the current row.
	LogData(key, value string) error

	// Clear deletes the logged rows. A full erase also discards the
	// column layout and resets the timestamp origin.
	Clear(fullErase bool) error

	// SetMirroring enables or disables mirroring of committed rows to
	// the serial channel.
	SetMirroring(serial bool)

	// SetTimestamp selects the timestamp column format.
	SetTimestamp(format TimestampFormat)
}
