// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xz_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-xzstream/xz"
)

const foxText = "The quick brown fox jumps over the lazy dog."

func decodeFile(t *testing.T, name string, cfg xz.ReaderConfig) ([]byte, error) {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	r, err := xz.NewReaderConfig(f, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func TestDecodeEveryCheckKind(t *testing.T) {
	for _, name := range []string{
		"testdata/fox_crc32.xz",
		"testdata/fox_crc64.xz",
		"testdata/fox_none.xz",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := decodeFile(t, name, xz.ReaderConfig{})
			require.NoError(t, err)
			assert.Equal(t, foxText, string(got))
		})
	}
}

func TestDecodeSHA256RequiresOptIn(t *testing.T) {
	_, err := decodeFile(t, "testdata/fox_sha256.xz", xz.ReaderConfig{})
	assert.Error(t, err)

	got, err := decodeFile(t, "testdata/fox_sha256.xz", xz.ReaderConfig{
		AllowUnsupportedChecks: true,
	})
	require.NoError(t, err)
	assert.Equal(t, foxText, string(got))
}

// A second concatenated stream's payload is out of scope: the reader
// stops after the first stream regardless of what follows it, as long
// as SingleStream isn't set.
func TestDecodeStopsAfterFirstOfConcatenatedStreams(t *testing.T) {
	got, err := decodeFile(t, "testdata/fox_concat.xz", xz.ReaderConfig{})
	require.NoError(t, err)
	assert.Equal(t, foxText, string(got))
}

func TestSingleStreamRejectsTrailingData(t *testing.T) {
	_, err := decodeFile(t, "testdata/fox_concat.xz", xz.ReaderConfig{
		SingleStream: true,
	})
	assert.Error(t, err)
}

func TestDecodeMultiBlockStream(t *testing.T) {
	want, err := os.ReadFile("testdata/repeat.bin")
	require.NoError(t, err)

	got, err := decodeFile(t, "testdata/repeat_multiblock.xz", xz.ReaderConfig{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeTruncatedStreamFails(t *testing.T) {
	_, err := decodeFile(t, "testdata/fox_truncated.xz", xz.ReaderConfig{})
	assert.Error(t, err)
}
