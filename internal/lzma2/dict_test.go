// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import (
	"bytes"
	"testing"
)

func TestDictPutByteFlushesOnFull(t *testing.T) {
	var out bytes.Buffer
	d := newDict(&out, 4)

	for _, c := range []byte("abcdefgh") {
		if err := d.putByte(c); err != nil {
			t.Fatalf("putByte error %s", err)
		}
	}
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	if got := out.String(); got != "abcdefgh" {
		t.Fatalf("out = %q; want %q", got, "abcdefgh")
	}
}

func TestDictCopyMatchOverlapping(t *testing.T) {
	var out bytes.Buffer
	d := newDict(&out, 16)

	for _, c := range []byte("ab") {
		if err := d.putByte(c); err != nil {
			t.Fatalf("putByte error %s", err)
		}
	}
	// distance 2, length 6: repeats "ab" three times past what's there.
	if err := d.copyMatch(2, 6); err != nil {
		t.Fatalf("copyMatch error %s", err)
	}
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	const want = "abababab"
	if got := out.String(); got != want {
		t.Fatalf("out = %q; want %q", got, want)
	}
}

func TestDictCopyMatchRejectsBadDistance(t *testing.T) {
	var out bytes.Buffer
	d := newDict(&out, 16)
	if err := d.putByte('a'); err != nil {
		t.Fatalf("putByte error %s", err)
	}
	if err := d.copyMatch(2, 1); err == nil {
		t.Fatalf("copyMatch with distance beyond window succeeded; want error")
	}
}
