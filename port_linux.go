//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

import (
	"time"

	"github.com/abakum/go-serialline/unixutils"
	"golang.org/x/sys/unix"
)

// native syscall wrappers, replaced by tests to simulate device behaviour
var (
	sysRead  = unix.Read
	sysWrite = unix.Write

	getTermSettings = func(handle int) (*unix.Termios, error) {
		return unix.IoctlGetTermios(handle, ioctlTcgetattr)
	}
	setTermSettings = func(handle int, settings *unix.Termios) error {
		return unix.IoctlSetTermios(handle, ioctlTcsetattr, settings)
	}
	drainOutput = func(handle int) error {
		return unix.IoctlSetInt(handle, ioctlTcsbrk, 1)
	}
)

func nativeOpen(name string) (int, error) {
	h, err := unix.Open(name, unix.O_RDWR|unix.O_NOCTTY|unix.O_NDELAY|unix.O_CLOEXEC, 0)
	if err != nil {
		code := InvalidSerialPort
		switch err {
		case unix.EBUSY:
			code = PortBusy
		case unix.EACCES, unix.EPERM:
			code = PermissionDenied
		case unix.ENOENT, unix.ENODEV, unix.ENXIO:
			code = PortNotFound
		}
		return -1, &PortError{code: code, port: name, causedBy: err}
	}

	if err := unix.SetNonblock(h, false); err != nil {
		unix.Close(h)
		return -1, &PortError{code: InvalidSerialPort, port: name, causedBy: err}
	}

	if err := acquireExclusiveAccess(h); err != nil {
		unix.Close(h)
		code := InvalidSerialPort
		if err == unix.EBUSY {
			code = PortBusy
		}
		return -1, &PortError{code: code, port: name, causedBy: err}
	}
	return h, nil
}

func nativeClose(handle int) error {
	// the device may already be gone, closing the descriptor is what matters
	releaseExclusiveAccess(handle)
	return unix.Close(handle)
}

func acquireExclusiveAccess(handle int) error {
	return unix.IoctlSetInt(handle, unix.TIOCEXCL, 0)
}

func releaseExclusiveAccess(handle int) error {
	return unix.IoctlSetInt(handle, unix.TIOCNXCL, 0)
}

func (p *Port) applyOptions() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name, causedBy: errApplyClosed}
	}
	settings, err := getTermSettings(p.handle)
	if err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	if err := setLineSettings(p.mode, settings); err != nil {
		if pe, ok := err.(*PortError); ok {
			pe.port = p.name
		}
		return err
	}
	if p.mode.BaudRate == Baud500000 {
		p.log.Warn("baud rate shares its line speed with another rate", "port", p.name,
			"baud", p.mode.BaudRate.Speed(), "same_as", Baud460800.Speed())
	}
	if err := setTermSettings(p.handle, settings); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	p.log.Debug("line settings applied", "port", p.name, "mode", p.mode)
	return nil
}

func (p *Port) applyBlockingMode() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name, causedBy: errApplyClosed}
	}
	vmin, vtime, err := p.blocking.ReadControl(p.timeout)
	if err != nil {
		return err
	}
	settings, err := getTermSettings(p.handle)
	if err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	setTermSettingsReadControl(vmin, vtime, settings)
	if err := setTermSettings(p.handle, settings); err != nil {
		return &PortError{code: OsError, port: p.name, causedBy: err}
	}
	p.log.Debug("blocking mode applied", "port", p.name, "blocking", p.blocking, "vmin", vmin, "vtime", vtime)
	return nil
}

func (p *Port) nativeRead(b []byte) (int, error) {
	return sysRead(p.handle, b)
}

func (p *Port) nativeWrite(b []byte) (int, error) {
	n, err := sysWrite(p.handle, b)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (p *Port) drain() error {
	return drainOutput(p.handle)
}

func (p *Port) flush(input bool) error {
	queue := unix.TCOFLUSH
	if input {
		queue = unix.TCIFLUSH
	}
	return unix.IoctlSetInt(p.handle, ioctlTcflsh, queue)
}

func (p *Port) waitReadable(timeout time.Duration) (bool, error) {
	fds := unixutils.NewFDSet(p.handle)
	res, err := unixutils.Select(fds, nil, fds, timeout)
	if err != nil {
		return false, err
	}
	return res.IsReadable(p.handle), nil
}
