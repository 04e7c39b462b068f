// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// Properties holds the lc/lp/pb triple decoded from the single LZMA2
// properties byte. Values persist across chunks until the next
// properties-reset chunk.
type Properties struct {
	LC int
	LP int
	PB int
}

// maxPropByte is the highest valid value of a packed properties byte:
// (pb_max+1)*(lp_max+1)*(lc_max+1) - 1 with pb_max=4, lp_max=4, lc_max=8.
const maxPropByte = (4+1)*(4+1)*(8+1) - 1

// DecodeProperties unpacks a single LZMA properties byte: pb = b/45,
// r = b%45, lp = r/9, lc = r%9. A byte above maxPropByte is rejected, and
// so is any lc/lp pair with lc+lp > 4, the bound the format actually
// encodes against regardless of what the packed byte alone allows.
func DecodeProperties(b byte) (Properties, error) {
	if b > maxPropByte {
		return Properties{}, errPropertyByte
	}
	pb := int(b) / 45
	r := int(b) % 45
	lp := r / 9
	lc := r % 9
	if lc+lp > 4 {
		return Properties{}, errPropertyByte
	}
	return Properties{LC: lc, LP: lp, PB: pb}, nil
}

// byte packs the properties back into the single-byte encoding.
func (p Properties) byte() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

// Dictionary size limits for the LZMA2 filter property byte.
const (
	MinDictSize = 1 << 12
	MaxDictSize = 1<<32 - 1
)

// DecodeDictSize maps the single dictionary-size property byte carried in
// the block header's LZMA2 filter record to an actual dictionary capacity,
// b in [0,40] gives (2|(b&1))<<(b/2+11); b==40 gives the full
// 32-bit range; b>=41 is invalid.
func DecodeDictSize(b byte) (int64, error) {
	if b > 40 {
		return 0, errDictSize
	}
	if b == 40 {
		return MaxDictSize, nil
	}
	m := int64(2 | (b & 1))
	return m << (uint(b)/2 + 11), nil
}
