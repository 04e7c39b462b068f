// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// posStateBits is the number of low bits of the dictionary position used to
// select a length-tree instance; the mask in use (decoder.posMask) derives
// from pb.
const posStateBits = 4

// MinMatchLen is the shortest match length the length decoder can produce;
// it is added back to every decoded length.
const MinMatchLen = 2

// MaxMatchLen is the longest match length the length decoder can produce.
const MaxMatchLen = MinMatchLen + 8 + 8 + 255

// lengthDecoder implements the three-tier match-length coding: a low tree
// (length 2..9) and mid tree (10..17), each indexed by pos_state, guarded
// by two "choice" bits, and a high tree (18..273) shared across pos_states.
type lengthDecoder struct {
	choice [2]prob
	low    [1 << posStateBits][]prob
	mid    [1 << posStateBits][]prob
	high   []prob
}

func newLengthDecoder() *lengthDecoder {
	ld := new(lengthDecoder)
	ld.reset()
	return ld
}

// reset sets every probability in the decoder back to probInit, as required
// whenever the LZMA2 chunk header resets decoder state.
func (ld *lengthDecoder) reset() {
	ld.choice[0], ld.choice[1] = probInit, probInit
	for i := range ld.low {
		ld.low[i] = newProbTree(3)
		ld.mid[i] = newProbTree(3)
	}
	ld.high = newProbTree(8)
}

// decode reads one length value (already offset by MinMatchLen) using the
// tree selected by posState.
func (ld *lengthDecoder) decode(rd *rangeDecoder, posState uint32) (length uint32, err error) {
	b, err := rd.decodeBit(&ld.choice[0])
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return bitTree(rd, ld.low[posState], 3)
	}
	b, err = rd.decodeBit(&ld.choice[1])
	if err != nil {
		return 0, err
	}
	if b == 0 {
		n, err := bitTree(rd, ld.mid[posState], 3)
		return n + 8, err
	}
	n, err := bitTree(rd, ld.high, 8)
	return n + 16, err
}
