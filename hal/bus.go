package hal

// I2CInit re-routes the I2C controller onto the given pins and sets the
// bus clock.
func (b *Board) I2CInit(scl, sda, freqHz int) error {
	if b.dev.I2C == nil {
		return missingErr("i2c controller")
	}
	sclPin, err := b.pin(scl)
	if err != nil {
		return err
	}
	sdaPin, err := b.pin(sda)
	if err != nil {
		return err
	}
	if err := b.dev.I2C.Redirect(sdaPin, sclPin); err != nil {
		return err
	}
	return b.dev.I2C.SetFrequency(freqHz)
}

// I2CRead reads len(buf) bytes from the device at addr. stop=false keeps
// the bus claimed for a repeated start.
func (b *Board) I2CRead(addr uint8, buf []byte, stop bool) error {
	if b.dev.I2C == nil {
		return missingErr("i2c controller")
	}
	return b.dev.I2C.Read(addr, buf, !stop)
}

// I2CWrite writes buf to the device at addr. stop=false keeps the bus
// claimed for a repeated start.
func (b *Board) I2CWrite(addr uint8, buf []byte, stop bool) error {
	if b.dev.I2C == nil {
		return missingErr("i2c controller")
	}
	return b.dev.I2C.Write(addr, buf, !stop)
}

// SPIInit re-routes the SPI controller onto the given pins and applies
// the clock rate, mode and word size.
func (b *Board) SPIInit(sclk, mosi, miso, freqHz, bits, mode int) error {
	if b.dev.SPI == nil {
		return missingErr("spi controller")
	}
	mosiPin, err := b.pin(mosi)
	if err != nil {
		return err
	}
	misoPin, err := b.pin(miso)
	if err != nil {
		return err
	}
	sclkPin, err := b.pin(sclk)
	if err != nil {
		return err
	}
	if err := b.dev.SPI.Redirect(mosiPin, misoPin, sclkPin); err != nil {
		return err
	}
	if err := b.dev.SPI.SetFrequency(freqHz); err != nil {
		return err
	}
	return b.dev.SPI.SetMode(mode, bits)
}

// SPITransfer clocks src out while reading into dst. A nil dst performs
// a write-only transfer.
func (b *Board) SPITransfer(src, dst []byte) error {
	if b.dev.SPI == nil {
		return missingErr("spi controller")
	}
	return b.dev.SPI.Transfer(src, dst)
}

// UARTInit re-routes the serial channel onto the given pins and sets the
// baud rate.
func (b *Board) UARTInit(tx, rx, baud int) error {
	if b.dev.Serial == nil {
		return missingErr("serial channel")
	}
	txPin, err := b.pin(tx)
	if err != nil {
		return err
	}
	rxPin, err := b.pin(rx)
	if err != nil {
		return err
	}
	if err := b.dev.Serial.Redirect(txPin, rxPin); err != nil {
		return err
	}
	return b.dev.Serial.SetBaud(baud)
}
