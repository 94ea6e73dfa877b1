//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

import "golang.org/x/sys/unix"

const ioctlTcgetattr = unix.TCGETS
const ioctlTcsetattr = unix.TCSETS
const ioctlTcflsh = unix.TCFLSH
const ioctlTcsbrk = unix.TCSBRK

const tcCMSPAR uint32 = unix.CMSPAR
const tcCRTSCTS uint32 = unix.CRTSCTS

// baudrateMap resolves symbolic rates to termios speeds. Baud460800 and
// Baud500000 share a value.
var baudrateMap = map[BaudRate]uint32{
	0:           unix.B9600, // Default to 9600
	Baud50:      unix.B50,
	Baud75:      unix.B75,
	Baud110:     unix.B110,
	Baud134:     unix.B134,
	Baud150:     unix.B150,
	Baud200:     unix.B200,
	Baud300:     unix.B300,
	Baud600:     unix.B600,
	Baud1200:    unix.B1200,
	Baud1800:    unix.B1800,
	Baud2400:    unix.B2400,
	Baud4800:    unix.B4800,
	Baud9600:    unix.B9600,
	Baud19200:   unix.B19200,
	Baud38400:   unix.B38400,
	Baud57600:   unix.B57600,
	Baud115200:  unix.B115200,
	Baud230400:  unix.B230400,
	Baud460800:  unix.B460800,
	Baud500000:  unix.B460800,
	Baud576000:  unix.B576000,
	Baud921600:  unix.B921600,
	Baud1000000: unix.B1000000,
	Baud1152000: unix.B1152000,
	Baud1500000: unix.B1500000,
	Baud2000000: unix.B2000000,
	Baud2500000: unix.B2500000,
	Baud3000000: unix.B3000000,
	Baud3500000: unix.B3500000,
	Baud4000000: unix.B4000000,
}

var databitsMap = map[int]uint32{
	0: unix.CS8, // Default to 8 bits
	5: unix.CS5,
	6: unix.CS6,
	7: unix.CS7,
	8: unix.CS8,
}

// termios manipulation functions

func setTermSettingsBaudrate(speed BaudRate, settings *unix.Termios) error {
	baudrate, ok := baudrateMap[speed]
	if !ok {
		return &PortError{code: InvalidSpeed}
	}
	settings.Cflag &^= unix.CBAUD
	settings.Cflag |= baudrate
	settings.Ispeed = baudrate
	settings.Ospeed = baudrate
	return nil
}

func setRawMode(settings *unix.Termios) {
	// Ignore modem status lines, enable receiver
	settings.Cflag |= unix.CREAD | unix.CLOCAL

	settings.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.IGNPAR | unix.PARMRK | unix.INPCK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF | unix.IXANY
	settings.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHONL | unix.ISIG | unix.IEXTEN
	settings.Oflag &^= unix.OPOST
}

func setTermSettingsDataBits(bits int, settings *unix.Termios) error {
	databits, ok := databitsMap[bits]
	if !ok {
		return &PortError{code: InvalidDataBits}
	}
	settings.Cflag &^= unix.CSIZE
	settings.Cflag |= databits
	return nil
}

func setTermSettingsParity(parity Parity, settings *unix.Termios) error {
	settings.Cflag &^= unix.PARENB | unix.PARODD | tcCMSPAR
	switch parity {
	case NoParity:
	case EvenParity:
		settings.Cflag |= unix.PARENB
	case OddParity:
		settings.Cflag |= unix.PARENB | unix.PARODD
	case MarkParity:
		settings.Cflag |= unix.PARENB | unix.PARODD | tcCMSPAR
	case SpaceParity:
		settings.Cflag |= unix.PARENB | tcCMSPAR
	default:
		return &PortError{code: InvalidParity}
	}
	return nil
}

func setTermSettingsStopBits(bits StopBits, settings *unix.Termios) error {
	switch bits {
	case OneStopBit:
		settings.Cflag &^= unix.CSTOPB
	case TwoStopBits:
		settings.Cflag |= unix.CSTOPB
	default:
		return &PortError{code: InvalidStopBits}
	}
	return nil
}

func disableFlowControl(settings *unix.Termios) {
	settings.Cflag &^= tcCRTSCTS
}

func setTermSettingsReadControl(vmin, vtime uint8, settings *unix.Termios) {
	settings.Cc[unix.VMIN] = vmin
	settings.Cc[unix.VTIME] = vtime
}

// setLineSettings runs every step of the line configuration on settings.
func setLineSettings(mode Mode, settings *unix.Termios) error {
	if err := setTermSettingsBaudrate(mode.BaudRate, settings); err != nil {
		return err
	}
	setRawMode(settings)
	if err := setTermSettingsDataBits(mode.DataBits, settings); err != nil {
		return err
	}
	if err := setTermSettingsParity(mode.Parity, settings); err != nil {
		return err
	}
	if err := setTermSettingsStopBits(mode.StopBits, settings); err != nil {
		return err
	}
	disableFlowControl(settings)
	return nil
}
