// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// Constants governing distance decoding, per the LZMA specification.
const (
	distStates     = 4
	distSlotBits   = 6
	distModelStart = 4
	distModelEnd   = 14
	alignBits      = 4
)

// distDecoder decodes match distances. A 6-bit "slot" selects either the
// distance directly (slot < 4), a fully-modeled low-order suffix (slot <
// 14), or a mix of raw equiprobable bits and a 4-bit aligned suffix (slot
// >= 14).
//
// The specification describes the modeled suffixes (dist_special) as one
// flat array indexed by (base - dist_slot); this implementation keeps one
// probability tree per slot instead, which is behaviourally identical and
// matches the layout the teacher package uses.
type distDecoder struct {
	slot  [distStates][]prob
	model [distModelEnd - distModelStart][]prob
	align []prob
}

func newDistDecoder() *distDecoder {
	dc := new(distDecoder)
	dc.reset()
	return dc
}

func (dc *distDecoder) reset() {
	for i := range dc.slot {
		dc.slot[i] = newProbTree(distSlotBits)
	}
	for i := range dc.model {
		bits := (distModelStart+i)>>1 - 1
		dc.model[i] = newProbTree(bits)
	}
	dc.align = newProbTree(alignBits)
}

// distState maps a decoded match length to one of the four length-indexed
// slot-tree contexts.
func distState(length uint32) uint32 {
	s := length - MinMatchLen
	if s >= distStates {
		s = distStates - 1
	}
	return s
}

// decode reads one distance value (already offset by 1, i.e. callers add 1
// to get the actual back-reference distance) given the actual length,
// MinMatchLen included, of the match just decoded.
func (dc *distDecoder) decode(rd *rangeDecoder, length uint32) (dist uint32, err error) {
	slot, err := bitTree(rd, dc.slot[distState(length)], distSlotBits)
	if err != nil {
		return 0, err
	}
	if slot < distModelStart {
		return slot, nil
	}

	footerBits := (slot >> 1) - 1
	base := (2 | (slot & 1)) << footerBits

	if slot < distModelEnd {
		u, err := bitTreeRev(rd, dc.model[slot-distModelStart], int(footerBits))
		if err != nil {
			return 0, err
		}
		return base + u, nil
	}

	hi, err := rd.directBits(int(footerBits - alignBits))
	if err != nil {
		return 0, err
	}
	lo, err := bitTreeRev(rd, dc.align, alignBits)
	if err != nil {
		return 0, err
	}
	return base + (hi << alignBits) + lo, nil
}
