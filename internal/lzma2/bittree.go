// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// bitTree and bitTreeRev decode fixed-bit-size symbols using a balanced
// binary tree of adaptive probabilities, one context per tree node. probs
// must have length 1<<bits; index 0 is unused (the walk starts at node 1)
// so that the node index doubles as the path taken so far.

// newProbTree allocates and resets a probability tree with 1<<bits nodes.
func newProbTree(bits int) []prob {
	p := make([]prob, 1<<uint(bits))
	resetProbs(p)
	return p
}

func resetProbs(p []prob) {
	for i := range p {
		p[i] = probInit
	}
}

// bitTree decodes a bits-bit value MSB first. The tree is walked top down;
// the returned value has the top bit decoded first, matching the
// big-endian convention the LZMA format uses for slot and length trees.
func bitTree(rd *rangeDecoder, probs []prob, bits int) (sym uint32, err error) {
	m := uint32(1)
	for i := 0; i < bits; i++ {
		b, err := rd.decodeBit(&probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
	}
	return m - (1 << uint(bits)), nil
}

// bitTreeRev decodes a bits-bit value LSB first, as used by the distance
// alignment codec and the low-order distance-slot position models.
func bitTreeRev(rd *rangeDecoder, probs []prob, bits int) (sym uint32, err error) {
	m := uint32(1)
	for i := 0; i < bits; i++ {
		b, err := rd.decodeBit(&probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
		sym |= b << uint(i)
	}
	return sym, nil
}
