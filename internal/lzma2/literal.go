// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// literalDecoder decodes literal bytes. It holds 0x300 probabilities per
// literal-state context: the low 0x100 are used for plain 8-bit decoding,
// the upper 0x200 for decoding mixed with the bits of a match byte.
type literalDecoder struct {
	lc, lp int
	probs  []prob
}

func newLiteralDecoder(lc, lp int) *literalDecoder {
	ld := &literalDecoder{lc: lc, lp: lp}
	ld.probs = make([]prob, 0x300<<uint(lc+lp))
	resetProbs(ld.probs)
	return ld
}

func (ld *literalDecoder) reset() { resetProbs(ld.probs) }

// litState computes the literal-state index from the previous decoded byte
// and the current dictionary position.
func (ld *literalDecoder) litState(prevByte byte, pos uint32) uint32 {
	lpMask := uint32(1)<<uint(ld.lp) - 1
	return ((pos & lpMask) << uint(ld.lc)) | (uint32(prevByte) >> uint(8-ld.lc))
}

// decode decodes one literal byte. When afterLiteral is false (the
// preceding event was a match, rep, or short rep), matchByte supplies the
// byte at distance rep[0]+1 in the dictionary, whose bits bias the first
// few decoded bits until they diverge from the actual symbol.
func (ld *literalDecoder) decode(rd *rangeDecoder, litState uint32, afterLiteral bool, matchByte byte) (byte, error) {
	probs := ld.probs[litState*0x300 : litState*0x300+0x300]
	symbol := uint32(1)

	if !afterLiteral {
		m := uint32(matchByte)
		for symbol < 0x100 {
			matchBit := (m >> 7) & 1
			m <<= 1
			idx := ((1 + matchBit) << 8) | symbol
			bit, err := rd.decodeBit(&probs[idx])
			if err != nil {
				return 0, err
			}
			symbol = (symbol << 1) | bit
			if matchBit != bit {
				break
			}
		}
	}
	for symbol < 0x100 {
		bit, err := rd.decodeBit(&probs[symbol])
		if err != nil {
			return 0, err
		}
		symbol = (symbol << 1) | bit
	}
	return byte(symbol - 0x100), nil
}
