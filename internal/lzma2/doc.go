// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzma2 implements the LZMA2 chunk framing and the LZMA symbol
// decoder it drives: a range-coded adaptive arithmetic decoder over an
// LZ77-style sliding dictionary. It supports decoding only; the LZMA2
// encoder is out of scope.
package lzma2
