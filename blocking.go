//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

// BlockingMode selects how Read waits for data.
type BlockingMode int

const (
	// Blocking makes Read wait indefinitely for at least one byte (default).
	// A Read returning no data in this mode is reported as DeviceRemoved.
	Blocking BlockingMode = iota
	// NonBlocking makes Read return immediately, possibly with no data.
	NonBlocking
	// TimedImmediately makes Read return when data arrives or when the read
	// timeout expires, whichever comes first.
	TimedImmediately
	// TimedAfterReceive makes Read wait for the first byte, then return when
	// the read timeout expires between two bytes.
	TimedAfterReceive
)

func (m BlockingMode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case NonBlocking:
		return "nonblocking"
	case TimedImmediately:
		return "timed"
	case TimedAfterReceive:
		return "timed-after-receive"
	}
	return "unknown"
}

// BlockingModeFromString parses the names returned by BlockingMode.String.
func BlockingModeFromString(s string) (BlockingMode, error) {
	for _, m := range []BlockingMode{Blocking, NonBlocking, TimedImmediately, TimedAfterReceive} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, &PortError{code: InvalidBlockingMode}
}

// UsesTimeout reports whether the read timeout has any effect in mode m.
func (m BlockingMode) UsesTimeout() bool {
	return m == TimedImmediately || m == TimedAfterReceive
}

// ReadControl returns the minimum number of bytes a read waits for (VMIN)
// and the timeout in deciseconds (VTIME) that implement mode m.
func (m BlockingMode) ReadControl(t Timeout) (minBytes uint8, deciseconds uint8, err error) {
	switch m {
	case NonBlocking:
		return 0, 0, nil
	case TimedImmediately:
		return 0, t.Deciseconds(), nil
	case TimedAfterReceive:
		return 1, t.Deciseconds(), nil
	case Blocking:
		return 1, 0, nil
	}
	return 0, 0, &PortError{code: InvalidBlockingMode}
}
