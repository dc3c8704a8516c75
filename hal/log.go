package hal

// Data log forwarding. The error from each call collapses to the
// three-value taxonomy via ResultOf; a full log surfaces as
// ResultNoResources.

// LogBeginRow starts a new data log row.
func (b *Board) LogBeginRow() error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	return b.dev.Log.BeginRow()
}

// LogEndRow commits the current data log row.
func (b *Board) LogEndRow() error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	return b.dev.Log.EndRow()
}

// LogData appends one key/value field to the current row.
func (b *Board) LogData(key, value string) error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	return b.dev.Log.LogData(key, value)
}

// LogClear deletes the logged rows; a full erase also discards the
// column layout and resets the timestamp origin.
func (b *Board) LogClear(fullErase bool) error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	return b.dev.Log.Clear(fullErase)
}

// LogSetMirroring enables or disables serial mirroring of committed
// rows.
func (b *Board) LogSetMirroring(serial bool) error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	b.dev.Log.SetMirroring(serial)
	return nil
}

// LogSetTimestamp selects the timestamp column format.
func (b *Board) LogSetTimestamp(format TimestampFormat) error {
	if b.dev.Log == nil {
		return missingErr("data log")
	}
	b.dev.Log.SetTimestamp(format)
	return nil
}
