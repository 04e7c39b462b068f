// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import (
	"errors"
	"io"
)

// putUint32LE puts the little-endian representation of x into the first
// four bytes of p.
func putUint32LE(p []byte, x uint32) {
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = byte(x >> 16)
	p[3] = byte(x >> 24)
}

// uint32LE converts a little endian representation to an uint32 value.
func uint32LE(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 |
		uint32(p[3])<<24
}

// putUint64LE puts the little-endian representation of x into the first
// eight bytes of p.
func putUint64LE(p []byte, x uint64) {
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = byte(x >> 16)
	p[3] = byte(x >> 24)
	p[4] = byte(x >> 32)
	p[5] = byte(x >> 40)
	p[6] = byte(x >> 48)
	p[7] = byte(x >> 56)
}

// maxVarintLen is the largest number of bytes a VLI may occupy: 9 bytes
// of 7 bits each cover the full 63-bit range the xz format allows.
const maxVarintLen = 9

// errVarintOverflow indicates a VLI encoding that needs more than
// maxVarintLen bytes or would not fit into 63 bits.
var errVarintOverflow = errors.New("xz: variable length integer overflows 63 bits")

// readUvarint reads a VLI from r. The xz format caps a VLI at 9 bytes and
// 63 usable bits; a 9th byte that still carries the continuation bit, or
// a final byte equal to 0x00 after a continuation byte (VLIs are never
// zero-padded), is rejected.
func readUvarint(r io.ByteReader) (x uint64, n int, err error) {
	var s uint
	for {
		var b byte
		b, err = r.ReadByte()
		if err != nil {
			return x, n, err
		}
		n++
		if n == maxVarintLen && b >= 0x80 {
			return 0, n, errVarintOverflow
		}
		if b == 0 && n > 1 {
			return 0, n, errors.New("xz: zero-padded variable length integer")
		}
		x |= uint64(b&0x7f) << s
		if b < 0x80 {
			return x, n, nil
		}
		s += 7
	}
}
