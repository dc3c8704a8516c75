package hal

// counter is the packed per-channel event counter. Bit 0 records "at
// least one event since the last poll", bits 15..1 accumulate the number
// of events. The two sub-fields are cleared independently so a caller can
// consume the flag without losing the count and vice versa.
//
// The count saturates only by wrapping: a channel producing more than
// 32767 events between polls overflows silently. Poll cadences are
// orders of magnitude faster than anyone can press a button, so this is
// an accepted limitation rather than a guarded condition.
type counter uint16

// fold accumulates new events into the cell. A zero or negative count
// leaves the cell untouched.
func (c *counter) fold(events int) {
	if events > 0 {
		*c = (*c + counter(events)<<1) | 1
	}
}

// takeTriggered returns the triggered flag and clears only bit 0.
func (c *counter) takeTriggered() bool {
	hit := *c&1 != 0
	*c &^= 1
	return hit
}

// takeCount returns the pending event count and clears only the count
// bits, leaving the triggered flag as is.
func (c *counter) takeCount() int {
	n := int(*c >> 1)
	*c &= 1
	return n
}
