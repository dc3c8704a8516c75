package telemetry

// FakePublisher records snapshots for tests.
type FakePublisher struct {
	Published []Snapshot
	Closed    bool
	Fail      error
}

// Publish records the snapshot, or returns the scripted failure.
func (f *FakePublisher) Publish(s Snapshot) error {
	if f.Fail != nil {
		return f.Fail
	}
	f.Published = append(f.Published, s)
	return nil
}

// Close marks the publisher closed.
func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
