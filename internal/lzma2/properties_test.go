// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import "testing"

func TestDecodeProperties(t *testing.T) {
	tests := []struct {
		b          byte
		lc, lp, pb int
	}{
		{0, 0, 0, 0},
		{45, 0, 0, 1},
		{1, 1, 0, 0},
		{216, 0, 4, 4},
	}
	for _, tc := range tests {
		p, err := DecodeProperties(tc.b)
		if err != nil {
			t.Fatalf("DecodeProperties(%d) error %s", tc.b, err)
		}
		if p.LC != tc.lc || p.LP != tc.lp || p.PB != tc.pb {
			t.Fatalf("DecodeProperties(%d) = %+v; want lc=%d lp=%d pb=%d",
				tc.b, p, tc.lc, tc.lp, tc.pb)
		}
		if got := p.byte(); got != tc.b {
			t.Fatalf("p.byte() = %d; want %d", got, tc.b)
		}
	}
}

func TestDecodePropertiesInvalid(t *testing.T) {
	// 225 and 255 exceed maxPropByte outright; 224 (lc=8, lp=4) is within
	// maxPropByte but violates the separate lc+lp <= 4 bound.
	for _, b := range []byte{224, 225, 255} {
		if _, err := DecodeProperties(b); err == nil {
			t.Fatalf("DecodeProperties(%d) succeeded; want error", b)
		}
	}
}

func TestDecodeDictSize(t *testing.T) {
	tests := []struct {
		b    byte
		want int64
	}{
		{0, MinDictSize},
		{1, 3 << 11},
		{40, MaxDictSize},
	}
	for _, tc := range tests {
		got, err := DecodeDictSize(tc.b)
		if err != nil {
			t.Fatalf("DecodeDictSize(%d) error %s", tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("DecodeDictSize(%d) = %d; want %d", tc.b, got, tc.want)
		}
	}
}

func TestDecodeDictSizeInvalid(t *testing.T) {
	if _, err := DecodeDictSize(41); err == nil {
		t.Fatalf("DecodeDictSize(41) succeeded; want error")
	}
}
