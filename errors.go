//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package serial

// PortError is the error type returned by every Port operation.
type PortError struct {
	code     PortErrorCode
	port     string
	causedBy error
}

// PortErrorCode is a code to easily identify the type of error
type PortErrorCode int

const (
	// PortBusy the serial port is already in used by another process
	PortBusy PortErrorCode = iota
	// PortNotFound the requested port doesn't exist
	PortNotFound
	// InvalidSerialPort the requested port is not a serial port
	InvalidSerialPort
	// PermissionDenied the user doesn't have enough priviledges
	PermissionDenied
	// InvalidSpeed the requested speed is not valid or not supported
	InvalidSpeed
	// InvalidDataBits the number of data bits is not valid or not supported
	InvalidDataBits
	// InvalidParity the selected parity is not valid or not supported
	InvalidParity
	// InvalidStopBits the selected number of stop bits is not valid or not supported
	InvalidStopBits
	// InvalidTimeoutValue the timeout is outside 0..25599 ms
	InvalidTimeoutValue
	// InvalidBlockingMode the blocking mode is not one of the four known modes
	InvalidBlockingMode
	// PortClosed the operation requires an open port
	PortClosed
	// FunctionNotImplemented the requested function is not implemented
	FunctionNotImplemented
	// OsError an operating system call failed while configuring the port
	OsError
	// WriteFailed Port write failed
	WriteFailed
	// ReadFailed Port read failed
	ReadFailed
	// DeviceRemoved a blocking read returned no data, the device is probably gone
	DeviceRemoved
)

// ErrorKind groups error codes by how the caller should react to them.
// A kind can be used as the target of errors.Is:
//
//	if errors.Is(err, serial.StateError) { ... }
type ErrorKind int

const (
	// OpenError the device could not be opened
	OpenError ErrorKind = iota + 1
	// StateError an operation that requires an open port was called on a closed one
	StateError
	// IoError the OS reported a read or write failure
	IoError
	// DeviceError a zero-byte read was observed in Blocking mode
	DeviceError
	// ConfigError the requested configuration cannot be expressed or applied
	ConfigError
)

func (k ErrorKind) Error() string {
	switch k {
	case OpenError:
		return "open error"
	case StateError:
		return "state error"
	case IoError:
		return "i/o error"
	case DeviceError:
		return "device error"
	case ConfigError:
		return "configuration error"
	}
	return "unknown error kind"
}

// Kind returns the ErrorKind the code belongs to.
func (c PortErrorCode) Kind() ErrorKind {
	switch c {
	case PortBusy, PortNotFound, InvalidSerialPort, PermissionDenied:
		return OpenError
	case PortClosed:
		return StateError
	case ReadFailed, WriteFailed:
		return IoError
	case DeviceRemoved:
		return DeviceError
	}
	return ConfigError
}

// EncodedErrorString returns a string explaining the error code
func (e PortError) EncodedErrorString() string {
	switch e.code {
	case PortBusy:
		return "Serial port busy"
	case PortNotFound:
		return "Serial port not found"
	case InvalidSerialPort:
		return "Invalid serial port"
	case PermissionDenied:
		return "Permission denied"
	case InvalidSpeed:
		return "Port speed invalid or not supported"
	case InvalidDataBits:
		return "Port data bits invalid or not supported"
	case InvalidParity:
		return "Port parity invalid or not supported"
	case InvalidStopBits:
		return "Port stop bits invalid or not supported"
	case InvalidTimeoutValue:
		return "Timeout value invalid or not supported"
	case InvalidBlockingMode:
		return "Blocking mode invalid or not supported"
	case PortClosed:
		return "Port is closed"
	case FunctionNotImplemented:
		return "Function not implemented"
	case OsError:
		return "Operating system error"
	case WriteFailed:
		return "Write failed"
	case ReadFailed:
		return "Read failed"
	case DeviceRemoved:
		return "No data from blocking read, device removed?"
	default:
		return "Other error"
	}
}

// Error returns the complete error code with details on the cause of the error
func (e PortError) Error() string {
	msg := e.EncodedErrorString()
	if e.port != "" {
		msg = e.port + ": " + msg
	}
	if e.causedBy != nil {
		return msg + ": " + e.causedBy.Error()
	}
	return msg
}

// Code returns an identifier for the kind of error occurred
func (e PortError) Code() PortErrorCode {
	return e.code
}

// Port returns the device path the error refers to, if known.
func (e PortError) Port() string {
	return e.port
}

// Unwrap returns the underlying OS error, if any.
func (e PortError) Unwrap() error {
	return e.causedBy
}

// Is reports whether target is the ErrorKind of e.
func (e PortError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && e.code.Kind() == k
}
