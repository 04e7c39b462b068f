// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xz

import (
	"crypto/sha256"
	"errors"
	"hash"
	"hash/crc64"
)

// crc64Table is the table for the CRC-64 variant the xz format uses,
// which shares its polynomial with the ECMA-182 standard.
var crc64Table = crc64.MakeTable(crc64.ECMA)

// newHash returns the hash.Hash implementing the integrity check
// selected by a stream header's flags byte. flags has already passed
// verifyFlags.
func newHash(flags byte) (hash.Hash, error) {
	switch flags {
	case 0:
		return newNoneHash(), nil
	case fCRC32:
		return newCRC32(), nil
	case fCRC64:
		return newCRC64(), nil
	case fSHA256:
		return sha256.New(), nil
	default:
		return nil, errInvalidFlags
	}
}

// errUnsupportedCheck is returned by NewReaderConfig when a stream uses an
// integrity check other than none, CRC-32 or CRC-64 and
// AllowUnsupportedChecks has not been set.
var errUnsupportedCheck = errors.New("xz: unsupported integrity check")

// rejectUnsupportedCheck reports whether flags names a check this reader
// will refuse to open. newHash can compute all four recognized checks
// including SHA-256, but SHA-256 streams are rare enough in practice that
// they are rejected unless allowUnsupported is set (ReaderConfig's
// AllowUnsupportedChecks), as a safety gate against accidentally trusting
// an unusual check.
func rejectUnsupportedCheck(flags byte, allowUnsupported bool) error {
	if allowUnsupported {
		return nil
	}
	switch flags {
	case 0, fCRC32, fCRC64:
		return nil
	default:
		return errUnsupportedCheck
	}
}
