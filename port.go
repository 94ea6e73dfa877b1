//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

import (
	"errors"
	"runtime"
	"time"

	"github.com/powerman/structlog"
)

// Port is a serial line device. A Port is created closed; Open acquires the
// device and Close releases it. Line settings, blocking mode and read
// timeout may be changed at any time: while the port is open every change
// is pushed to the device immediately.
//
// A Port is not safe for concurrent use: callers must serialize Read,
// Write and configuration changes.
type Port struct {
	name     string
	handle   int
	opened   bool
	mode     Mode
	blocking BlockingMode
	timeout  Timeout
	log      *structlog.Logger
}

var (
	errApplyClosed = errors.New("apply on closed port")
	errReadClosed  = errors.New("read on closed port")
	errWriteClosed = errors.New("write on closed port")
)

// New returns a closed Port for the device at name. If mode is nil the
// port uses DefaultMode (9600_8N1). The blocking mode is Blocking and the
// read timeout is zero.
func New(name string, mode *Mode) *Port {
	m := DefaultMode()
	if mode != nil {
		m = *mode
	}
	return &Port{
		name:     name,
		handle:   -1,
		mode:     m,
		blocking: Blocking,
		log:      structlog.New(structlog.KeyUnit, "serial").SetLogLevel(structlog.WRN),
	}
}

// Open opens the serial port using the specified modes
func Open(name string, mode *Mode) (*Port, error) {
	port := New(name, mode)
	if err := port.Open(); err != nil {
		return nil, err
	}
	return port, nil
}

// SetLogger replaces the logger used for lifecycle and configuration
// records. A nil logger restores the default one.
func (p *Port) SetLogger(log *structlog.Logger) {
	if log == nil {
		log = structlog.New(structlog.KeyUnit, "serial").SetLogLevel(structlog.WRN)
	}
	p.log = log
}

// Name returns the device path.
func (p *Port) Name() string {
	return p.name
}

// IsOpen reports whether the device is currently open.
func (p *Port) IsOpen() bool {
	return p.opened
}

// Mode returns the stored line configuration.
func (p *Port) Mode() Mode {
	return p.mode
}

// BlockingMode returns the active blocking mode.
func (p *Port) BlockingMode() BlockingMode {
	return p.blocking
}

// ReadTimeout returns the stored read timeout.
func (p *Port) ReadTimeout() Timeout {
	return p.timeout
}

// Open acquires the device with exclusive access and applies the stored
// line settings followed by the blocking mode. If any step fails the
// device is released again and the port stays closed. Calling Open on an
// open port does nothing.
func (p *Port) Open() error {
	if p.opened {
		return nil
	}
	handle, err := nativeOpen(p.name)
	if err != nil {
		p.log.Debug("open failed", "port", p.name, "err", err)
		return err
	}
	p.handle = handle
	p.opened = true

	if err := p.applyOptions(); err != nil {
		p.rollback(err)
		return err
	}
	if err := p.applyBlockingMode(); err != nil {
		p.rollback(err)
		return err
	}

	runtime.SetFinalizer(p, (*Port).Close)
	p.log.Debug("opened", "port", p.name, "mode", p.mode, "blocking", p.blocking, "timeout", p.timeout.Duration())
	return nil
}

func (p *Port) rollback(cause error) {
	if err := p.Close(); err != nil {
		p.log.PrintErr("release after failed open", "port", p.name, "cause", cause, "err", err)
	}
}

// Close releases the device. Closing a closed port is a no-op.
func (p *Port) Close() error {
	if !p.opened {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	handle := p.handle
	p.handle = -1
	p.opened = false
	if err := nativeClose(handle); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	p.log.Debug("closed", "port", p.name)
	return nil
}

// SetMode replaces the line configuration. If the port is open the new
// configuration is applied immediately; when that fails the previous
// configuration is kept.
func (p *Port) SetMode(mode *Mode) error {
	previous := p.mode
	if mode == nil {
		p.mode = DefaultMode()
	} else {
		p.mode = *mode
	}
	if !p.opened {
		return nil
	}
	if err := p.applyOptions(); err != nil {
		p.mode = previous
		return err
	}
	return nil
}

// SetBlockingMode selects how Read waits for data. If the port is open the
// matching VMIN/VTIME pair is applied immediately.
func (p *Port) SetBlockingMode(mode BlockingMode) error {
	if _, _, err := mode.ReadControl(p.timeout); err != nil {
		return err
	}
	p.blocking = mode
	if !p.opened {
		return nil
	}
	return p.applyBlockingMode()
}

// SetReadTimeout sets the read timeout in milliseconds (0-25599), truncated
// to a multiple of 100 ms. The device is only reconfigured when the port is
// open and the blocking mode is TimedImmediately or TimedAfterReceive,
// since the other modes ignore the timeout.
func (p *Port) SetReadTimeout(millis int) error {
	t, err := TimeoutFromMillis(millis)
	if err != nil {
		return err
	}
	p.timeout = t
	if !p.opened || !p.blocking.UsesTimeout() {
		return nil
	}
	return p.applyBlockingMode()
}

// Read stores data received from the serial port into p. See ReadAtMost.
func (p *Port) Read(b []byte) (int, error) {
	return p.ReadAtMost(b, len(b))
}

// ReadOne reads a single byte into c and returns the number of bytes read.
func (p *Port) ReadOne(c *byte) (int, error) {
	var b [1]byte
	n, err := p.ReadAtMost(b[:], 1)
	if n == 1 {
		*c = b[0]
	}
	return n, err
}

// ReadAtMost performs a single read of up to max bytes into b.
//
// In Blocking mode a read that returns no data is reported as a
// DeviceRemoved error. In the other modes zero bytes means no data arrived
// within the configured timeout. An empty request returns immediately.
func (p *Port) ReadAtMost(b []byte, max int) (int, error) {
	if !p.opened {
		return 0, &PortError{code: PortClosed, port: p.name, causedBy: errReadClosed}
	}
	if max < len(b) {
		if max < 0 {
			max = 0
		}
		b = b[:max]
	}
	if len(b) == 0 {
		return 0, nil
	}
	n, err := p.nativeRead(b)
	if err != nil {
		return 0, &PortError{code: ReadFailed, port: p.name, causedBy: err}
	}
	if n == 0 && p.blocking == Blocking {
		return 0, &PortError{code: DeviceRemoved, port: p.name}
	}
	return n, nil
}

// Write sends b to the serial port with a single write and returns the
// number of bytes accepted. In Blocking mode Write also waits until the
// written bytes have been transmitted.
func (p *Port) Write(b []byte) (int, error) {
	if !p.opened {
		return 0, &PortError{code: PortClosed, port: p.name, causedBy: errWriteClosed}
	}
	n, err := p.nativeWrite(b)
	if err != nil {
		return n, &PortError{code: WriteFailed, port: p.name, causedBy: err}
	}
	if p.blocking == Blocking {
		if err := p.drain(); err != nil {
			return n, &PortError{code: WriteFailed, port: p.name, causedBy: err}
		}
	}
	return n, nil
}

// Drain waits until all output written to the port has been transmitted.
func (p *Port) Drain() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name}
	}
	if err := p.drain(); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	return nil
}

// ResetInputBuffer discards data received but not yet read.
func (p *Port) ResetInputBuffer() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name}
	}
	if err := p.flush(true); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	return nil
}

// ResetOutputBuffer discards data written but not yet transmitted.
func (p *Port) ResetOutputBuffer() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name}
	}
	if err := p.flush(false); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	return nil
}

// WaitReadable waits up to timeout for the port to have data available and
// reports whether it does. A negative timeout waits forever. WaitReadable
// does not read and does not change the behaviour of a later Read.
func (p *Port) WaitReadable(timeout time.Duration) (bool, error) {
	if !p.opened {
		return false, &PortError{code: PortClosed, port: p.name}
	}
	ok, err := p.waitReadable(timeout)
	if err != nil {
		return false, &PortError{code: OsError, port: p.name, causedBy: err}
	}
	return ok, nil
}
