// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import "io"

// dict is the sliding dictionary window shared by the LZMA symbol decoder
// and the LZMA2 chunk framer. It is a ring buffer sized to the filter's
// dictionary capacity: bytes older than cap are no longer addressable by a
// back-reference distance. Produced bytes are written to w as soon as they
// are no longer needed to keep the ring buffer from overwriting data that
// has not left the window yet; a chunk boundary or end-of-stream forces a
// final flush of whatever remains.
type dict struct {
	w    io.Writer
	data []byte
	cap  int
	// front is the ring-buffer index one past the most recently written
	// byte.
	front int
	// size is the number of valid bytes currently held, capped at cap.
	size int
	// pos is the absolute number of bytes ever written since the last
	// position reset, used for the literal decoder's pos_state. A
	// dictionary reset always resets it.
	pos uint32
	// unflushed is the number of trailing bytes (ending at front) not
	// yet written to w.
	unflushed int
}

// newDict allocates a dictionary with the given back-reference capacity
// that writes produced bytes to w.
func newDict(w io.Writer, cap int) *dict {
	return &dict{w: w, data: make([]byte, cap), cap: cap}
}

// reset clears the dictionary contents and position, as required when an
// LZMA2 chunk's control byte requests a dictionary reset. Any unflushed
// bytes are discarded only if the caller already flushed them; reset is
// always preceded by a mandatory flush in the chunk framer.
func (d *dict) reset() {
	d.front = 0
	d.size = 0
	d.pos = 0
	d.unflushed = 0
}

// resetPos clears only the position counter used for pos_state, leaving the
// back-reference window intact.
func (d *dict) resetPos() { d.pos = 0 }

// Len returns the number of bytes currently addressable by a back-reference
// distance.
func (d *dict) Len() int { return d.size }

// Pos returns the absolute write position used to compute pos_state and the
// literal decoder's lp-masked index.
func (d *dict) Pos() uint32 { return d.pos }

// byteAt returns the byte at the given distance behind the write head; dist
// must be in [1, Len()].
func (d *dict) byteAt(distance int) byte {
	i := d.front - distance
	if i < 0 {
		i += d.cap
	}
	return d.data[i]
}

// putByte appends a single literal byte to the dictionary, flushing first
// if the ring buffer has no unwritten room left.
func (d *dict) putByte(c byte) error {
	if d.unflushed == d.cap {
		if err := d.Flush(); err != nil {
			return err
		}
	}
	d.data[d.front] = c
	d.front++
	if d.front == d.cap {
		d.front = 0
	}
	if d.size < d.cap {
		d.size++
	}
	d.unflushed++
	d.pos++
	return nil
}

// copyMatch appends a back-reference copy of length bytes taken from
// distance bytes behind the write head. Source and destination ranges may
// overlap (distance < length, the common run-length-encoding case), so the
// copy proceeds one byte at a time so that a source byte written earlier in
// this same call is visible to a later iteration, exactly as a literal
// byte-by-byte copy would behave.
func (d *dict) copyMatch(distance int, length uint32) error {
	if distance < 1 || distance > d.size {
		return errDist
	}
	for i := uint32(0); i < length; i++ {
		if err := d.putByte(d.byteAt(distance)); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any bytes produced since the last flush to w. The chunk
// framer calls this at the end of every chunk and before every dictionary
// reset, since the sink expects exactly each chunk's declared uncompressed
// size before the next chunk's framing begins.
func (d *dict) Flush() error {
	for d.unflushed > 0 {
		start := d.front - d.unflushed
		var chunk []byte
		if start >= 0 {
			chunk = d.data[start:d.front]
		} else {
			start += d.cap
			chunk = d.data[start:]
		}
		n, err := d.w.Write(chunk)
		d.unflushed -= n
		if err != nil {
			return err
		}
	}
	return nil
}
