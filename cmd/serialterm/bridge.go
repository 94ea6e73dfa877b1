package main

import (
	"context"
	"io"
	"time"

	"github.com/abakum/go-serialline"
	"github.com/ansel1/merry"
)

const pollInterval = 100 * time.Millisecond

// bridge copies in to the port and the port to out until ctx is done or an
// error occurs. All port calls happen on the calling goroutine.
func bridge(ctx context.Context, port *serial.Port, in io.Reader, out io.Writer) error {
	input := make(chan []byte)
	go func() {
		defer close(input)
		buf := make([]byte, 1024)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				select {
				case input <- append([]byte(nil), buf[:n]...):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			if err := writeAll(port, b); err != nil {
				return err
			}
			continue
		default:
		}

		ready, err := port.WaitReadable(pollInterval)
		if err != nil {
			return merry.Wrap(err)
		}
		if !ready {
			continue
		}
		n, err := port.Read(buf)
		if err != nil {
			return merry.Prepend(err, "read")
		}
		if _, err := out.Write(buf[:n]); err != nil {
			return merry.Prepend(err, "output")
		}
	}
}

func writeAll(port *serial.Port, b []byte) error {
	for len(b) > 0 {
		n, err := port.Write(b)
		if err != nil {
			return merry.Prepend(err, "write").Appendf("pending=%d", len(b))
		}
		b = b[n:]
	}
	return nil
}
