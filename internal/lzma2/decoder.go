// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// decoder implements the core LZMA symbol decoder: the 12-state machine,
// the length/distance/literal codecs, and the four most-recent-distance
// cache (rep0-rep3), driving a range decoder over a shared dictionary.
type decoder struct {
	rd  *rangeDecoder
	dic *dict

	props Properties

	st   state
	rep  [4]uint32 // most recently used distances, minus 1
	isMatch [numStates][1 << posStateBits]prob
	isRep       [numStates]prob
	isRepG0     [numStates]prob
	isRepG1     [numStates]prob
	isRepG2     [numStates]prob
	isRep0Long  [numStates][1 << posStateBits]prob

	length    *lengthDecoder
	repLength *lengthDecoder
	distDec   *distDecoder
	litDec    *literalDecoder
}

// newDecoder creates a decoder reading from rd and writing into dic, with
// the given literal-context and literal-position bit widths.
func newDecoder(rd *rangeDecoder, dic *dict, props Properties) *decoder {
	d := &decoder{
		rd:        rd,
		dic:       dic,
		props:     props,
		length:    newLengthDecoder(),
		repLength: newLengthDecoder(),
		distDec:   newDistDecoder(),
		litDec:    newLiteralDecoder(props.LC, props.LP),
	}
	d.resetState()
	return d
}

// resetState reinitializes every adaptive probability, the state machine
// and the rep distances to their initial values, as required on an LZMA2
// state-reset chunk. The dictionary is untouched.
func (d *decoder) resetState() {
	d.st = 0
	d.rep = [4]uint32{}
	resetProbs(d.isMatch[0][:])
	for i := 1; i < numStates; i++ {
		copy(d.isMatch[i][:], d.isMatch[0][:])
	}
	resetProbs(d.isRep[:])
	resetProbs(d.isRepG0[:])
	resetProbs(d.isRepG1[:])
	resetProbs(d.isRepG2[:])
	resetProbs(d.isRep0Long[0][:])
	for i := 1; i < numStates; i++ {
		copy(d.isRep0Long[i][:], d.isRep0Long[0][:])
	}
	d.length.reset()
	d.repLength.reset()
	d.distDec.reset()
	d.litDec.reset()
}

// resetProps rebuilds the literal decoder for a new lc/lp pair, as required
// by an LZMA2 chunk that carries a fresh properties byte.
func (d *decoder) resetProps(props Properties) {
	d.props = props
	d.litDec = newLiteralDecoder(props.LC, props.LP)
}

// resetDict clears the rep-distance cache; called together with the
// dictionary's own reset on a dictionary-reset chunk.
func (d *decoder) resetDict() {
	d.rep = [4]uint32{}
}

// posMask returns the pos_state mask derived from the current pb property.
func (d *decoder) posMask() uint32 { return 1<<uint(d.props.PB) - 1 }

// decodeSymbol decodes exactly one LZMA symbol (a literal byte, or a
// match/rep copy) and applies it to the dictionary. unpackLeft bounds how
// many more output bytes this chunk may still produce, since a match's
// length must not be allowed to run past the chunk's declared size.
func (d *decoder) decodeSymbol(unpackLeft uint32) error {
	posState := d.dic.Pos() & d.posMask()

	bit, err := d.rd.decodeBit(&d.isMatch[d.st][posState])
	if err != nil {
		return err
	}
	if bit == 0 {
		return d.decodeLiteral()
	}

	bit, err = d.rd.decodeBit(&d.isRep[d.st])
	if err != nil {
		return err
	}
	var dist uint32
	var length uint32
	if bit == 0 {
		// New match: decode length, then distance, then rotate the
		// rep cache.
		length, err = d.length.decode(d.rd, posState)
		if err != nil {
			return err
		}
		dist, err = d.distDec.decode(d.rd, length+MinMatchLen)
		if err != nil {
			return err
		}
		if dist == 0xffffffff {
			return ErrEncoding
		}
		d.rep[3], d.rep[2], d.rep[1], d.rep[0] = d.rep[2], d.rep[1], d.rep[0], dist
		d.st = d.st.match()
	} else {
		length, dist, err = d.decodeRep(posState)
		if err != nil {
			return err
		}
	}

	length += MinMatchLen
	if length > unpackLeft {
		return errChunkSize
	}
	return d.dic.copyMatch(int(dist)+1, length)
}

// decodeRep decodes one of the four repeat-match variants (rep0 long,
// rep1, rep2, rep3) or a short rep (a single byte at distance rep0+1), and
// returns the match length (short rep always returns 1) and the resulting
// distance, after rotating the rep cache as needed.
func (d *decoder) decodeRep(posState uint32) (length, dist uint32, err error) {
	bit, err := d.rd.decodeBit(&d.isRepG0[d.st])
	if err != nil {
		return 0, 0, err
	}
	if bit == 0 {
		bit, err = d.rd.decodeBit(&d.isRep0Long[d.st][posState])
		if err != nil {
			return 0, 0, err
		}
		if bit == 0 {
			d.st = d.st.shortRep()
			// decodeSymbol unconditionally adds MinMatchLen below;
			// wrap-around subtraction here cancels back out to 1.
			length = 1
			return length - MinMatchLen, d.rep[0], nil
		}
		dist = d.rep[0]
	} else {
		var idx int
		bit, err = d.rd.decodeBit(&d.isRepG1[d.st])
		if err != nil {
			return 0, 0, err
		}
		if bit == 0 {
			idx = 1
		} else {
			bit, err = d.rd.decodeBit(&d.isRepG2[d.st])
			if err != nil {
				return 0, 0, err
			}
			if bit == 0 {
				idx = 2
			} else {
				idx = 3
			}
		}
		dist = d.rep[idx]
		for ; idx > 0; idx-- {
			d.rep[idx] = d.rep[idx-1]
		}
		d.rep[0] = dist
	}

	length, err = d.repLength.decode(d.rd, posState)
	if err != nil {
		return 0, 0, err
	}
	d.st = d.st.longRep()
	return length, dist, nil
}

// decodeLiteral decodes one literal byte and appends it to the dictionary.
func (d *decoder) decodeLiteral() error {
	litState := d.litDec.litState(d.lastByte(), d.dic.Pos())
	afterLiteral := d.st.isAfterLiteral()
	var matchByte byte
	if !afterLiteral {
		matchByte = d.dic.byteAt(int(d.rep[0]) + 1)
	}
	c, err := d.litDec.decode(d.rd, litState, afterLiteral, matchByte)
	if err != nil {
		return err
	}
	d.st = d.st.literal()
	return d.dic.putByte(c)
}

// lastByte returns the most recently produced byte, or 0 if the dictionary
// is empty (the state required at the very start of a stream or after a
// dictionary reset).
func (d *decoder) lastByte() byte {
	if d.dic.Len() == 0 {
		return 0
	}
	return d.dic.byteAt(1)
}

// decodeChunk decodes exactly unpackSize bytes of LZMA-coded symbols into
// the dictionary.
func (d *decoder) decodeChunk(unpackSize uint32) error {
	left := unpackSize
	for left > 0 {
		before := d.dic.Pos()
		if err := d.decodeSymbol(left); err != nil {
			return err
		}
		left -= d.dic.Pos() - before
	}
	return nil
}
