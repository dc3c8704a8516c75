package hal

// I2CBus is the re-routable I2C controller. Addresses are 7-bit.
type I2CBus interface {
	// Redirect moves the bus onto the given data/clock pins.
	Redirect(sda, scl Pin) error

	// SetFrequency sets the bus clock in Hz.
	SetFrequency(hz int) error

	// Read performs a blocking read from the device at addr. If repeated
	// is true no stop condition is generated, leaving the bus claimed for
	// a repeated start.
	Read(addr uint8, buf []byte, repeated bool) error

	// Write performs a blocking write to the device at addr. If repeated
	// is true no stop condition is generated.
	Write(addr uint8, buf []byte, repeated bool) error
}

// SPIBus is the re-routable SPI controller.
type SPIBus interface {
	// Redirect moves the bus onto the given pins.
	Redirect(mosi, miso, sclk Pin) error

	// SetFrequency sets the clock rate in Hz.
	SetFrequency(hz int) error

	// SetMode sets the SPI mode (0-3) and word size in bits.
	SetMode(mode, bits int) error

	// Transfer clocks src out while reading into dst. A nil dst performs
	// a write-only transfer.
	Transfer(src, dst []byte) error
}

// SerialPort is the re-routable UART-like serial channel.
type SerialPort interface {
	// Redirect moves the channel onto the given pins.
	Redirect(tx, rx Pin) error

	// SetBaud sets the line rate.
	SetBaud(baud int) error
}
