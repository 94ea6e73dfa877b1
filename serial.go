//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

import (
	"fmt"
	"strings"
)

// Mode describes a serial line configuration.
type Mode struct {
	BaudRate BaudRate // The serial line bitrate (aka Baudrate)
	DataBits int      // Size of the character (must be 5, 6, 7 or 8)
	Parity   Parity   // Parity (see Parity type for more info)
	StopBits StopBits // Stop bits (see StopBits type for more info)
}

// DefaultMode returns the 9600_8N1 configuration used when no mode is given.
func DefaultMode() Mode {
	return Mode{
		BaudRate: Baud9600,
		DataBits: 8,
		Parity:   NoParity,
		StopBits: OneStopBit,
	}
}

// String returns the mode in the form 9600_8N1.
func (m Mode) String() string {
	dataBits := m.DataBits
	if dataBits == 0 {
		dataBits = 8
	}
	return fmt.Sprintf("%d_%d%s%s", m.BaudRate.Speed(), dataBits, m.Parity, m.StopBits)
}

// ModeFromString parses a data/parity/stop specification such as "8N1" or
// "7E2" into mode. The baud rate of mode is left untouched.
func ModeFromString(s string, mode *Mode) error {
	if len(s) != 3 {
		return &PortError{code: InvalidDataBits, causedBy: fmt.Errorf("malformed mode %q", s)}
	}

	switch s[0] {
	case '5', '6', '7', '8':
		mode.DataBits = int(s[0] - '0')
	default:
		return &PortError{code: InvalidDataBits}
	}

	parity, ok := parityFromLetter[strings.ToUpper(s[1:2])]
	if !ok {
		return &PortError{code: InvalidParity}
	}
	mode.Parity = parity

	switch s[2] {
	case '1':
		mode.StopBits = OneStopBit
	case '2':
		mode.StopBits = TwoStopBits
	default:
		return &PortError{code: InvalidStopBits}
	}
	return nil
}

// Parity describes a serial line parity setting
type Parity int

const (
	// NoParity disable parity control (default)
	NoParity Parity = iota
	// OddParity enable odd-parity check
	OddParity
	// EvenParity enable even-parity check
	EvenParity
	// MarkParity enable mark-parity (always 1) check
	MarkParity
	// SpaceParity enable space-parity (always 0) check
	SpaceParity
)

var parityFromLetter = map[string]Parity{
	"N": NoParity,
	"O": OddParity,
	"E": EvenParity,
	"M": MarkParity,
	"S": SpaceParity,
}

func (p Parity) String() string {
	switch p {
	case NoParity:
		return "N"
	case OddParity:
		return "O"
	case EvenParity:
		return "E"
	case MarkParity:
		return "M"
	case SpaceParity:
		return "S"
	}
	return "?"
}

// StopBits describe a serial line stop bits setting
type StopBits int

const (
	// OneStopBit sets 1 stop bit (default)
	OneStopBit StopBits = iota
	// TwoStopBits sets 2 stop bits
	TwoStopBits
)

func (s StopBits) String() string {
	switch s {
	case OneStopBit:
		return "1"
	case TwoStopBits:
		return "2"
	}
	return "?"
}
