//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

/*
Package serial gives typed access to a POSIX serial line: open/close
lifecycle, line configuration and a four-mode blocking policy for reads.

A Port is created closed and can be configured before or after Open:

	port := serial.New("/dev/ttyUSB0", &serial.Mode{
		BaudRate: serial.Baud57600,
		DataBits: 7,
		Parity:   serial.EvenParity,
		StopBits: serial.OneStopBit,
	})
	if err := port.Open(); err != nil {
		log.Fatal(err)
	}
	defer port.Close()

If no mode is given the port uses 9600_8N1. The data/parity/stop part can
also be parsed from the usual notation:

	mode := serial.DefaultMode()
	if err := serial.ModeFromString("7E1", &mode); err != nil {
		log.Fatal(err)
	}

Changes made with SetMode, SetBlockingMode and SetReadTimeout are pushed to
the device immediately while the port is open.

The blocking mode decides how Read waits:

	NonBlocking        returns at once, possibly with no data
	TimedImmediately   returns when data arrives or the timeout expires
	TimedAfterReceive  waits for the first byte, then applies the timeout between bytes
	Blocking           waits for at least one byte (default)

The read timeout has a granularity of 100 ms and a maximum of 25.5 s:

	if err := port.SetBlockingMode(serial.TimedImmediately); err != nil {
		log.Fatal(err)
	}
	if err := port.SetReadTimeout(200); err != nil {
		log.Fatal(err)
	}

	buff := make([]byte, 100)
	n, err := port.Read(buff)
	if err != nil {
		log.Fatal(err)
	}
	if n == 0 {
		fmt.Println("no data within 200 ms")
	}

In Blocking mode a read that returns no data means the device went away and
is reported as a DeviceError. Errors are *PortError values and can be
classified with errors.Is:

	if errors.Is(err, serial.DeviceError) {
		// reconnect
	}

A Port is not safe for concurrent use, and a blocking Read cannot be
cancelled. WaitReadable can be used to poll for data before reading.
*/
package serial
