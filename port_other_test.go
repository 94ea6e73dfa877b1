//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build !linux

package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenUnsupportedPlatformIsOpenError(t *testing.T) {
	port := New("/dev/ttyS0", nil)
	err := port.Open()
	require.ErrorIs(t, err, OpenError)
	require.False(t, port.IsOpen())

	var portErr *PortError
	require.ErrorAs(t, err, &portErr)
	require.Equal(t, InvalidSerialPort, portErr.Code())
	require.ErrorIs(t, portErr.Unwrap(), ConfigError)
	require.Contains(t, err.Error(), "/dev/ttyS0")

	_, err = Open("/dev/ttyS0", nil)
	require.ErrorIs(t, err, OpenError)
}
