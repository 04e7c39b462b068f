// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import "io"

// rangeMin is the normalization threshold for the range decoder. Whenever
// range drops below this value, another byte of input is shifted in.
const rangeMin = 1 << 24

// probBits is the number of bits of precision a probability value carries.
// probMax is one past the highest representable probability (certainty
// that the next bit is zero).
const (
	probBits = 11
	probMax  = 1 << probBits
	probInit = probMax / 2
	moveBits = 5
)

// prob is the probability, scaled to [0, probMax], that the next bit
// decoded under this context is zero. It starts at probInit (0.5) and is
// nudged towards the observed bit on every decode.
type prob uint16

func (p *prob) dec() { *p -= *p >> moveBits }
func (p *prob) inc() { *p += (probMax - *p) >> moveBits }

// bound computes the split point of range for the current probability.
func (p prob) bound(r uint32) uint32 { return (r >> probBits) * uint32(p) }

// rangeDecoder implements the adaptive binary arithmetic decoder described
// in the LZMA specification: a (range, code) pair of u32 values, normalized
// by shifting in one byte at a time whenever range falls below rangeMin.
type rangeDecoder struct {
	r     io.ByteReader
	rng   uint32
	code  uint32
	nread int64
}

// newRangeDecoder initializes a range decoder by skipping one byte (which
// the LZMA/LZMA2 format requires to be zero in the reference encoder, but
// which this decoder does not otherwise rely on) and reading the following
// four bytes big-endian into code.
func newRangeDecoder(r io.ByteReader) (*rangeDecoder, error) {
	rd := &rangeDecoder{r: r, rng: 0xffffffff}
	if _, err := rd.readByte(); err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ {
		b, err := rd.readByte()
		if err != nil {
			return nil, err
		}
		rd.code = rd.code<<8 | uint32(b)
	}
	return rd, nil
}

func (rd *rangeDecoder) readByte() (byte, error) {
	b, err := rd.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	rd.nread++
	return b, nil
}

// normalize restores the rangeMin invariant after a bit has been decoded.
func (rd *rangeDecoder) normalize() error {
	if rd.rng < rangeMin {
		b, err := rd.readByte()
		if err != nil {
			return err
		}
		rd.rng <<= 8
		rd.code = rd.code<<8 | uint32(b)
	}
	return nil
}

// decodeBit decodes one adaptively coded bit and updates p in place.
func (rd *rangeDecoder) decodeBit(p *prob) (bit uint32, err error) {
	b := p.bound(rd.rng)
	if rd.code < b {
		p.inc()
		rd.rng = b
		bit = 0
	} else {
		p.dec()
		rd.code -= b
		rd.rng -= b
		bit = 1
	}
	if err = rd.normalize(); err != nil {
		return 0, err
	}
	return bit, nil
}

// directBits decodes count equiprobable bits, MSB first, without touching
// any probability state. It normalizes before and after every bit.
func (rd *rangeDecoder) directBits(count int) (v uint32, err error) {
	for i := 0; i < count; i++ {
		if err = rd.normalize(); err != nil {
			return 0, err
		}
		rd.rng >>= 1
		var bit uint32
		if rd.code >= rd.rng {
			bit = 1
			rd.code -= rd.rng
		}
		v = (v << 1) | bit
		if err = rd.normalize(); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// possiblyAtEnd reports whether the decoder could legitimately be at the
// end of its compressed payload: the LZMA range coder drains to code==0
// when the encoder has flushed cleanly.
func (rd *rangeDecoder) possiblyAtEnd() bool { return rd.code == 0 }
