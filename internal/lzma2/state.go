// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

// numStates is the size of the LZMA state enumeration. States 0-6 denote
// that the most recently decoded event was a literal; states 7-11 denote
// that it was a match, long rep, or short rep.
const numStates = 12

// state tracks the last two or three decoded event kinds, used to select
// which probability context the next symbol is decoded under.
type state uint32

// isAfterLiteral reports whether the most recent event was a literal,
// which selects whether literal decoding mixes in the match byte.
func (s state) isAfterLiteral() bool { return s < 7 }

// literal advances the state after decoding a literal.
func (s state) literal() state {
	switch {
	case s < 4:
		return 0
	case s < 10:
		return s - 3
	default:
		return s - 6
	}
}

// match advances the state after decoding a new (non-repeat) match.
func (s state) match() state {
	if s < 7 {
		return 7
	}
	return 10
}

// longRep advances the state after decoding a repeat match (rep0 long,
// rep1, rep2, or rep3).
func (s state) longRep() state {
	if s < 7 {
		return 8
	}
	return 11
}

// shortRep advances the state after decoding a short rep (a one-byte match
// at distance rep[0]+1).
func (s state) shortRep() state {
	if s < 7 {
		return 9
	}
	return 11
}
