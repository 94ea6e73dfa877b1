//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

// BaudRate is a symbolic line speed. Its value is the nominal rate in bits
// per second; the zero value selects the default 9600.
//
// Symbolic rates are resolved to the platform speed constant through a
// lookup table that is not injective: Baud500000 resolves to the same
// constant as Baud460800.
type BaudRate int

const (
	Baud50      BaudRate = 50
	Baud75      BaudRate = 75
	Baud110     BaudRate = 110
	Baud134     BaudRate = 134
	Baud150     BaudRate = 150
	Baud200     BaudRate = 200
	Baud300     BaudRate = 300
	Baud600     BaudRate = 600
	Baud1200    BaudRate = 1200
	Baud1800    BaudRate = 1800
	Baud2400    BaudRate = 2400
	Baud4800    BaudRate = 4800
	Baud9600    BaudRate = 9600
	Baud19200   BaudRate = 19200
	Baud38400   BaudRate = 38400
	Baud57600   BaudRate = 57600
	Baud115200  BaudRate = 115200
	Baud230400  BaudRate = 230400
	Baud460800  BaudRate = 460800
	Baud500000  BaudRate = 500000
	Baud576000  BaudRate = 576000
	Baud921600  BaudRate = 921600
	Baud1000000 BaudRate = 1000000
	Baud1152000 BaudRate = 1152000
	Baud1500000 BaudRate = 1500000
	Baud2000000 BaudRate = 2000000
	Baud2500000 BaudRate = 2500000
	Baud3000000 BaudRate = 3000000
	Baud3500000 BaudRate = 3500000
	Baud4000000 BaudRate = 4000000
)

var knownBaudRates = []BaudRate{
	Baud50, Baud75, Baud110, Baud134, Baud150, Baud200, Baud300, Baud600,
	Baud1200, Baud1800, Baud2400, Baud4800, Baud9600, Baud19200, Baud38400,
	Baud57600, Baud115200, Baud230400, Baud460800, Baud500000, Baud576000,
	Baud921600, Baud1000000, Baud1152000, Baud1500000, Baud2000000,
	Baud2500000, Baud3000000, Baud3500000, Baud4000000,
}

// Speed returns the nominal rate in bits per second.
func (b BaudRate) Speed() int {
	if b == 0 {
		return int(Baud9600)
	}
	return int(b)
}

// BaudRateFromSpeed returns the symbolic rate for a nominal speed.
func BaudRateFromSpeed(speed int) (BaudRate, error) {
	for _, b := range knownBaudRates {
		if int(b) == speed {
			return b, nil
		}
	}
	return 0, &PortError{code: InvalidSpeed}
}
