// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// The .raw fixtures under testdata/ are standalone LZMA2 streams (no xz
// container), generated independently of this package so the chunk
// framer and symbol decoder are exercised against output from another
// implementation rather than only round-tripping against themselves.
func decodeRawFixture(t *testing.T, name string, dictCap int64) []byte {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("os.Open(%q) error %s", name, err)
	}
	defer f.Close()

	r, err := NewReader(f, dictCap)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	return got
}

func TestReaderUncompressedChunk(t *testing.T) {
	got := decodeRawFixture(t, "testdata/fox_lzma2.raw", 1<<20)
	want := "The quick brown fox jumps over the lazy dog."
	if string(got) != want {
		t.Fatalf("decoded %q; want %q", got, want)
	}
}

func TestReaderCompressedChunk(t *testing.T) {
	got := decodeRawFixture(t, "testdata/repeat_lzma2.raw", 1<<23)
	want := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz"), 4000)
	if !bytes.Equal(got, want) {
		t.Fatalf("decoded %d bytes; want %d bytes matching the repeated pattern",
			len(got), len(want))
	}
}

func TestReaderRejectsTruncatedStream(t *testing.T) {
	f, err := os.Open("testdata/fox_lzma2.raw")
	if err != nil {
		t.Fatalf("os.Open error %s", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}

	r, err := NewReader(bytes.NewReader(data[:len(data)-2]), 1<<20)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if _, err := io.ReadAll(r); err == nil {
		t.Fatalf("decoding a truncated stream succeeded; want error")
	}
}
