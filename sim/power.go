package sim

import "time"

// Power records power state requests.
type Power struct {
	// OffCalls counts power-off requests.
	OffCalls int

	// Sleeps records the wake duration of each timed deep sleep;
	// an event-only sleep records zero.
	Sleeps []time.Duration

	// Interrupted is what the next timed deep sleep reports.
	Interrupted bool

	Fail error
}

func (p *Power) Off() error {
	if p.Fail != nil {
		return p.Fail
	}
	p.OffCalls++
	return nil
}

func (p *Power) DeepSleep(wake time.Duration) (bool, error) {
	if p.Fail != nil {
		return false, p.Fail
	}
	p.Sleeps = append(p.Sleeps, wake)
	return p.Interrupted, nil
}

func (p *Power) DeepSleepUntilEvent() error {
	if p.Fail != nil {
		return p.Fail
	}
	p.Sleeps = append(p.Sleeps, 0)
	return nil
}

// System records reset/panic requests and serves the die temperature.
type System struct {
	Resets    int
	Panicked  bool
	PanicCode int
	Idles     int

	temperature int
}

// SetTemperature sets the reported die temperature in Celsius.
func (s *System) SetTemperature(c int) { s.temperature = c }

func (s *System) Reset() {
	s.Resets++
}

func (s *System) Panic(code int) {
	s.Panicked = true
	s.PanicCode = code
}

func (s *System) Temperature() (int, error) {
	return s.temperature, nil
}

func (s *System) Idle() {
	s.Idles++
}
