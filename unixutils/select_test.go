//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build linux || darwin || freebsd || openbsd

package unixutils

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSelectTimesOutWithoutData(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	rfd := int(r.Fd())
	start := time.Now()
	res, err := Select(NewFDSet(rfd), nil, nil, 50*time.Millisecond)
	require.NoError(t, err)
	require.False(t, res.IsReadable(rfd))
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestSelectReportsReadable(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.Write([]byte{1})
	require.NoError(t, err)

	rfd := int(r.Fd())
	res, err := Select(NewFDSet(rfd), nil, nil, time.Second)
	require.NoError(t, err)
	require.True(t, res.IsReadable(rfd))
	require.False(t, res.IsError(rfd))
}

func TestSelectReportsWritable(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	rfd, wfd := int(r.Fd()), int(w.Fd())
	res, err := Select(NewFDSet(rfd), NewFDSet(wfd), nil, time.Second)
	require.NoError(t, err)
	require.True(t, res.IsWritable(wfd))
	require.False(t, res.IsReadable(rfd))
}
