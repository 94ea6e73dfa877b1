//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build !linux

package serial

import "time"

func nativeOpen(name string) (int, error) {
	return -1, &PortError{code: InvalidSerialPort, port: name, causedBy: &PortError{code: FunctionNotImplemented}}
}

func nativeClose(handle int) error {
	return &PortError{code: FunctionNotImplemented}
}

func (p *Port) applyOptions() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name, causedBy: errApplyClosed}
	}
	return &PortError{code: FunctionNotImplemented, port: p.name}
}

func (p *Port) applyBlockingMode() error {
	if !p.opened {
		return &PortError{code: PortClosed, port: p.name, causedBy: errApplyClosed}
	}
	return &PortError{code: FunctionNotImplemented, port: p.name}
}

func (p *Port) nativeRead(b []byte) (int, error) {
	return 0, &PortError{code: FunctionNotImplemented}
}

func (p *Port) nativeWrite(b []byte) (int, error) {
	return 0, &PortError{code: FunctionNotImplemented}
}

func (p *Port) drain() error {
	return &PortError{code: FunctionNotImplemented}
}

func (p *Port) flush(input bool) error {
	return &PortError{code: FunctionNotImplemented}
}

func (p *Port) waitReadable(timeout time.Duration) (bool, error) {
	return false, &PortError{code: FunctionNotImplemented}
}
