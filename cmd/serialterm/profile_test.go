package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abakum/go-serialline"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: /dev/ttyUSB3
baud: 57600
format: 7E2
blocking: timed-after-receive
timeout_ms: 1250
`), 0o600))

	prof := defaultProfile()
	require.NoError(t, loadProfile(path, &prof))
	require.Equal(t, "/dev/ttyUSB3", prof.Port)

	mode, err := prof.mode()
	require.NoError(t, err)
	require.Equal(t, serial.Mode{
		BaudRate: serial.Baud57600,
		DataBits: 7,
		Parity:   serial.EvenParity,
		StopBits: serial.TwoStopBits,
	}, mode)

	blocking, err := prof.blockingMode()
	require.NoError(t, err)
	require.Equal(t, serial.TimedAfterReceive, blocking)
	require.Equal(t, 1250, prof.TimeoutMillis)
}

func TestLoadProfileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: /dev/ttyACM0\n"), 0o600))

	prof := defaultProfile()
	require.NoError(t, loadProfile(path, &prof))
	mode, err := prof.mode()
	require.NoError(t, err)
	require.Equal(t, "9600_8N1", mode.String())
}

func TestLoadProfileErrors(t *testing.T) {
	prof := defaultProfile()
	require.Error(t, loadProfile(filepath.Join(t.TempDir(), "missing.yaml"), &prof))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baud: [fast]\n"), 0o600))
	require.Error(t, loadProfile(path, &prof))
}

func TestApplyModeFlag(t *testing.T) {
	cases := map[string]string{
		"115200_7O1": "115200_7O1",
		"19200":      "19200_8N1",
		"8S2":        "9600_8S2",
	}
	for flag, want := range cases {
		prof := defaultProfile()
		require.NoError(t, prof.applyModeFlag(flag), flag)
		mode, err := prof.mode()
		require.NoError(t, err, flag)
		require.Equal(t, want, mode.String(), flag)
	}

	prof := defaultProfile()
	require.Error(t, prof.applyModeFlag("fast_8N1"))
}

func TestProfileRejectsBadValues(t *testing.T) {
	prof := defaultProfile()
	prof.Baud = 12345
	_, err := prof.mode()
	require.Error(t, err)

	prof = defaultProfile()
	prof.Format = "9N1"
	_, err = prof.mode()
	require.Error(t, err)

	prof = defaultProfile()
	prof.Blocking = "sometimes"
	_, err = prof.blockingMode()
	require.Error(t, err)
}
