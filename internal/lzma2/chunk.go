// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzma2

import (
	"bufio"
	"bytes"
	"io"
)

// Control byte values and masks. The low two bits of an
// uncompressed control byte select plain copy vs. copy-with-dict-reset; the
// 0xe0 mask of a compressed control byte (bit 7 set) selects one of four
// reset modes, and its low 5 bits hold the five high bits (bits 16-20) of
// the unpacked size minus one.
const (
	ctrlEOS             = 0x00
	ctrlCopyResetDict    = 0x01
	ctrlCopy             = 0x02
	ctrlPackedMask       = 0xe0
	ctrlPacked           = 0x80
	ctrlPackedResetState = 0xa0
	ctrlPackedNewProps   = 0xc0
	ctrlPackedResetDict  = 0xe0
)

// Reader decodes an LZMA2 chunk stream into a byte stream. It implements
// io.Reader and is used as the decoder for filter id 0x21 block payloads.
// The 16-bit size fields in the chunk framing already bound every chunk to
// at most 1<<16 (copy chunks) or 1<<21 (compressed chunks) bytes, so no
// further range check is needed once they are parsed.
type Reader struct {
	src *bufio.Reader
	out bytes.Buffer

	dic *dict
	rd  *rangeDecoder
	dec *decoder

	eos bool
	err error
}

// NewReader creates an LZMA2 chunk reader over r with the given dictionary
// capacity (the LZMA2 filter's single property byte, already decoded by the
// caller via DecodeDictSize).
func NewReader(r io.Reader, dictCap int64) (*Reader, error) {
	if dictCap < MinDictSize || dictCap > MaxDictSize {
		return nil, errDictSize
	}
	cr := &Reader{src: bufio.NewReader(oneByteReader{r})}
	cr.dic = newDict(&cr.out, int(dictCap))
	return cr, nil
}

// oneByteReader limits every Read to at most one byte, so that the
// bufio.Reader wrapping it never reads ahead past the end-of-stream control
// byte into whatever follows the LZMA2 stream in the underlying reader.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

// Read implements io.Reader, decoding as many further chunks as needed to
// satisfy the request.
func (cr *Reader) Read(p []byte) (n int, err error) {
	for cr.out.Len() == 0 {
		if cr.eos {
			if cr.err != nil {
				return 0, cr.err
			}
			return 0, io.EOF
		}
		if err := cr.advance(); err != nil {
			cr.err = err
			cr.eos = true
			return 0, err
		}
	}
	return cr.out.Read(p)
}

// advance reads and fully processes the next chunk header (and, for a
// compressed chunk, its entire payload).
func (cr *Reader) advance() error {
	ctrl, err := cr.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			// A stream must end with an explicit 0x00 control
			// byte; running out of bytes first is truncation.
			return io.ErrUnexpectedEOF
		}
		return err
	}

	if ctrl == ctrlEOS {
		cr.eos = true
		return nil
	}

	if ctrl&ctrlPacked == 0 {
		return cr.readUncompressedChunk(ctrl)
	}
	return cr.readCompressedChunk(ctrl)
}

func (cr *Reader) readUncompressedChunk(ctrl byte) error {
	if ctrl != ctrlCopyResetDict && ctrl != ctrlCopy {
		return errControlByte
	}
	if ctrl == ctrlCopyResetDict {
		if err := cr.dic.Flush(); err != nil {
			return err
		}
		cr.dic.reset()
		if cr.dec != nil {
			cr.dec.resetDict()
		}
	}

	size, err := cr.readSize16()
	if err != nil {
		return err
	}
	if _, err := io.CopyN(copyDictWriter{cr.dic}, cr.src, int64(size)); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return cr.dic.Flush()
}

// copyDictWriter adapts dict.putByte to io.Writer for uncompressed chunks,
// which still must flow through the dictionary so later chunks can
// back-reference them.
type copyDictWriter struct{ d *dict }

func (w copyDictWriter) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := w.d.putByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (cr *Reader) readCompressedChunk(ctrl byte) error {
	unpacked, err := cr.readSize16()
	if err != nil {
		return err
	}
	unpacked = (uint32(ctrl&^ctrlPackedMask)<<16 | (unpacked - 1)) + 1

	packed, err := cr.readSize16()
	if err != nil {
		return err
	}

	mode := ctrl & ctrlPackedMask
	resetDict := mode == ctrlPackedResetDict
	newProps := mode == ctrlPackedNewProps || mode == ctrlPackedResetDict
	resetState := newProps || mode == ctrlPackedResetState

	var props Properties
	if newProps {
		b, err := cr.src.ReadByte()
		if err != nil {
			return io.ErrUnexpectedEOF
		}
		props, err = DecodeProperties(b)
		if err != nil {
			return err
		}
	}

	if resetDict {
		if err := cr.dic.Flush(); err != nil {
			return err
		}
		cr.dic.reset()
	}

	if cr.dec == nil {
		if !resetState || !newProps {
			return errControlByte
		}
		cr.rd, err = newRangeDecoder(cr.src)
		if err != nil {
			return err
		}
		cr.dec = newDecoder(cr.rd, cr.dic, props)
	} else {
		cr.rd, err = newRangeDecoder(cr.src)
		if err != nil {
			return err
		}
		cr.dec.rd = cr.rd
		if newProps {
			cr.dec.resetProps(props)
		}
		if resetState {
			cr.dec.resetState()
		}
		if resetDict {
			cr.dec.resetDict()
		}
	}

	if err := cr.dec.decodeChunk(unpacked); err != nil {
		return err
	}
	// The range decoder reads exactly as many bytes as it needs to
	// produce unpacked symbols; a well-formed chunk's packed size, which
	// counts the five range-decoder initialization bytes too, must match
	// that count exactly.
	if cr.rd.nread != int64(packed) {
		return errChunkSize
	}
	return cr.dic.Flush()
}

// readSize16 reads a big-endian, minus-one-encoded 16-bit size field.
func (cr *Reader) readSize16() (uint32, error) {
	var b [2]byte
	if _, err := io.ReadFull(cr.src, b[:]); err != nil {
		return 0, io.ErrUnexpectedEOF
	}
	return uint32(b[0])<<8 | uint32(b[1]) + 1, nil
}
