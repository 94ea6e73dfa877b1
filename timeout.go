//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

import (
	"fmt"
	"time"
)

// MaxTimeoutMillis is the largest value accepted by TimeoutFromMillis.
// Everything from 25500 to 25599 truncates to the maximum of 255 deciseconds.
const MaxTimeoutMillis = 25599

// Timeout is a read timeout expressed in deciseconds (0-255), the native
// granularity of the line discipline.
type Timeout uint8

// TimeoutFromMillis converts milliseconds to a Timeout, truncating toward
// zero: 199 ms becomes 1 decisecond.
func TimeoutFromMillis(millis int) (Timeout, error) {
	if millis < 0 || millis > MaxTimeoutMillis {
		return 0, &PortError{code: InvalidTimeoutValue, causedBy: fmt.Errorf("%d ms", millis)}
	}
	return Timeout(millis / 100), nil
}

// TimeoutFromDuration converts d to a Timeout with the same truncation as
// TimeoutFromMillis.
func TimeoutFromDuration(d time.Duration) (Timeout, error) {
	return TimeoutFromMillis(int(d / time.Millisecond))
}

// Deciseconds returns the raw value written to the line discipline.
func (t Timeout) Deciseconds() uint8 {
	return uint8(t)
}

// Millis returns the timeout in milliseconds.
func (t Timeout) Millis() int {
	return int(t) * 100
}

// Duration returns the timeout as a time.Duration.
func (t Timeout) Duration() time.Duration {
	return time.Duration(t) * 100 * time.Millisecond
}
