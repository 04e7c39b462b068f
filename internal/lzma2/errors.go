// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import "errors"

// Errors returned by the range decoder and the LZMA2 chunk reader. They are
// all terminal: once returned, the Reader that produced them must not be
// used further.
var (
	// ErrEncoding signals a decoded match distance equal to the LZMA
	// end-of-payload marker, which LZMA2 chunks must not contain. Bad
	// control bytes, bad properties bytes and chunk size mismatches have
	// their own errors below.
	ErrEncoding = errors.New("lzma2: invalid encoding")

	// errDist signals that a match distance reaches further back than
	// the dictionary currently holds.
	errDist = errors.New("lzma2: distance exceeds dictionary content")

	// errPropertyByte signals a properties byte outside [0,224], or one
	// that unpacks to lc+lp > 4.
	errPropertyByte = errors.New("lzma2: invalid properties byte")

	// errControlByte signals an LZMA2 chunk control byte that is none of
	// the values the format defines.
	errControlByte = errors.New("lzma2: invalid chunk control byte")

	// errChunkSize signals a chunk whose declared uncompressed size does
	// not match the number of bytes actually produced by the range
	// decoder before it reached the end of the chunk's compressed span.
	errChunkSize = errors.New("lzma2: chunk size mismatch")

	// errDictSize signals a dictionary-size property byte outside the
	// range the LZMA2 filter allows (> 40).
	errDictSize = errors.New("lzma2: invalid dictionary size byte")
)
