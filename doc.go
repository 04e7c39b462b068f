// Copyright 2015 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xz decodes xz files as described by version 1.1.0 of the xz
// file format specification (see http://tukaani.org/xz/xz-file-format-1.1.0.txt),
// restricted to the LZMA2 filter. Only the first stream's payload is
// decoded. By default, zero padding after the first stream's footer is
// consumed and anything beyond it, such as a second concatenated stream,
// is left unread; ReaderConfig.SingleStream instead requires the input
// to end exactly at the first stream's footer.
//
// NewReader and NewReaderConfig return an io.ReadCloser that decodes as
// it is read; nothing is buffered beyond what is needed to parse the
// current block. Encoding is out of scope for this package.
package xz
