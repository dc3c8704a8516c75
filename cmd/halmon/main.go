// Command halmon polls a board through the device HAL and reports its
// state. By default it drives the in-memory simulated board, which
// makes it a smoke test for the HAL itself; with -gpio-buttons the two
// buttons come from real GPIO lines on a Linux host. Snapshots go to
// the data log and, when a broker is configured, to MQTT.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ubithal/hal"
	"ubithal/host/gpio"
	"ubithal/host/serial"
	"ubithal/host/telemetry"
	"ubithal/sim"
)

var (
	interval    = flag.Duration("interval", time.Second, "Poll interval")
	count       = flag.Int("count", 0, "Number of polls (0 = run until interrupted)")
	broker      = flag.String("broker", "", "MQTT broker URL (empty = no publishing)")
	clientID    = flag.String("client-id", "halmon", "MQTT client ID")
	mirror      = flag.Bool("mirror", false, "Mirror data log rows to the serial channel")
	serialDev   = flag.String("serial-dev", "", "Serial device for the board channel and log mirror (empty = stdout mirror)")
	serialBaud  = flag.Int("serial-baud", 115200, "Baud rate for -serial-dev")
	gpioButtons = flag.Bool("gpio-buttons", false, "Back buttons A/B with GPIO lines")
	gpioChip    = flag.String("gpio-chip", gpio.DefaultChip, "GPIO character device")
	buttonAPin  = flag.Int("button-a", 5, "GPIO line offset for button A")
	buttonBPin  = flag.Int("button-b", 6, "GPIO line offset for button B")
)

func main() {
	flag.Parse()

	simBoard := sim.NewBoard()
	dev := simBoard.Devices()

	if *gpioButtons {
		a, err := gpio.NewButton(gpio.Config{Chip: *gpioChip, Offset: *buttonAPin, ActiveLow: true})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: button A: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		b, err := gpio.NewButton(gpio.Config{Chip: *gpioChip, Offset: *buttonBPin, ActiveLow: true})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: button B: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()
		dev.Buttons = []hal.Button{a, b}
	}

	var serialCh *serial.Channel
	if *serialDev != "" {
		serialCh = serial.NewChannel(*serialDev)
		defer serialCh.Close()
		dev.Serial = serialCh
	}

	board, err := hal.New(dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: assemble board: %v\n", err)
		os.Exit(1)
	}

	// Mirrored log rows go to the real serial line when one is
	// configured, otherwise to stdout.
	var mirrorSink io.Writer = os.Stdout
	if serialCh != nil {
		if err := board.UARTInit(hal.PinUSBTx, hal.PinUSBRx, *serialBaud); err != nil {
			fmt.Fprintf(os.Stderr, "Error: open serial device: %v\n", err)
			os.Exit(1)
		}
		mirrorSink = serialCh.Port()
	}

	var pub telemetry.Publisher
	if *broker != "" {
		p, err := telemetry.NewMQTTPublisher(*broker, *clientID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: connect broker: %v\n", err)
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	}

	if err := board.LogSetTimestamp(hal.TimestampSeconds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: configure log: %v\n", err)
		os.Exit(1)
	}
	if *mirror {
		if err := board.LogSetMirroring(true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: configure log mirroring: %v\n", err)
			os.Exit(1)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	polls := 0
	for {
		select {
		case sig := <-stop:
			fmt.Printf("Received %v, shutting down\n", sig)
			return
		case now := <-ticker.C:
			snap, err := pollSnapshot(board, now)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: poll: %v\n", err)
				continue
			}
			fmt.Printf("a=%t b=%t accel=(%d,%d,%d) heading=%d light=%d temp=%d\n",
				snap.ButtonA, snap.ButtonB, snap.AccelX, snap.AccelY, snap.AccelZ,
				snap.Heading, snap.LightLevel, snap.Temperature)

			if err := logSnapshot(board, snap); err != nil {
				fmt.Fprintf(os.Stderr, "Error: log row: %v (result %v)\n", err, hal.ResultOf(err))
			}
			if *mirror {
				if err := drainMirror(&simBoard.SerialOut, mirrorSink); err != nil {
					fmt.Fprintf(os.Stderr, "Error: mirror: %v\n", err)
				}
			}
			if pub != nil {
				if err := pub.Publish(snap); err != nil {
					fmt.Fprintf(os.Stderr, "Error: publish: %v\n", err)
				}
			}

			polls++
			if *count > 0 && polls >= *count {
				return
			}
		}
	}
}
