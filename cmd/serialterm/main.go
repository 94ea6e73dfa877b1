// serialterm connects the terminal to a serial line: stdin is sent to the
// device and everything received is printed on stdout.
//
//	$ serialterm -port /dev/ttyUSB0 -mode 115200_8N1
//	$ serialterm -profile modem.yaml -blocking timed -timeout 500
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/abakum/go-serialline"
	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
)

var (
	flagPort     = flag.String("port", "", "serial device `path`")
	flagMode     = flag.String("mode", "", "line settings: 115200_8N1, 115200 or 8N1")
	flagBlocking = flag.String("blocking", "", "read mode: nonblocking, timed, timed-after-receive, blocking")
	flagTimeout  = flag.Int("timeout", -1, "read timeout in `ms` (0-25599)")
	flagProfile  = flag.String("profile", "", "YAML profile `file`")
	flagLogLevel = flag.String("log-level", "inf", "log level: dbg, inf, wrn, err")
)

func main() {
	flag.Parse()
	structlog.DefaultLogger.SetLogLevel(structlog.ParseLevel(*flagLogLevel))
	log := structlog.New(structlog.KeyApp, "serialterm")

	if err := run(log); err != nil {
		log.PrintErr(err, "details", merry.Details(err))
		os.Exit(1)
	}
}

func run(log *structlog.Logger) error {
	prof := defaultProfile()
	if *flagProfile != "" {
		if err := loadProfile(*flagProfile, &prof); err != nil {
			return err
		}
	}
	if *flagPort != "" {
		prof.Port = *flagPort
	}
	if *flagMode != "" {
		if err := prof.applyModeFlag(*flagMode); err != nil {
			return err
		}
	}
	if *flagBlocking != "" {
		prof.Blocking = *flagBlocking
	}
	if *flagTimeout >= 0 {
		prof.TimeoutMillis = *flagTimeout
	}
	if prof.Port == "" {
		return merry.New("no port given, use -port or a profile")
	}

	port, err := openPort(log, prof)
	if err != nil {
		return err
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("connected", "port", port.Name(), "mode", port.Mode(), "blocking", port.BlockingMode(),
		"timeout", port.ReadTimeout().Duration())
	err = bridge(ctx, port, os.Stdin, os.Stdout)
	log.Info("disconnected", "port", port.Name())
	return err
}

func openPort(log *structlog.Logger, prof profile) (*serial.Port, error) {
	mode, err := prof.mode()
	if err != nil {
		return nil, err
	}
	blocking, err := prof.blockingMode()
	if err != nil {
		return nil, err
	}

	port := serial.New(prof.Port, &mode)
	port.SetLogger(log.New(structlog.KeyUnit, "serial"))
	if err := port.SetBlockingMode(blocking); err != nil {
		return nil, merry.Wrap(err)
	}
	if err := port.SetReadTimeout(prof.TimeoutMillis); err != nil {
		return nil, merry.Wrap(err)
	}
	if err := port.Open(); err != nil {
		return nil, merry.Wrap(err)
	}
	return port, nil
}
