// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - SHA3-256 content hashes identifying log entries
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/colourd/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
// to convert to bytes just use d[:]
type Digest [Length]byte

// Zero - the previous link of the first entry in a log
var Zero Digest

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// IsZero - true for the unset digest
func (d Digest) IsZero() bool {
	return d == Zero
}

// String - hex text for use by the fmt package (for %s)
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - hex text for use by the fmt package (for %#v)
func (d Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(d[:]) + ">"
}

// MarshalText - convert digest to hex text
func (d Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (d *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigest
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidDigest
	}
	copy(d[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(buffer []byte) (Digest, error) {
	d := Digest{}
	if Length != len(buffer) {
		return d, fault.ErrInvalidDigest
	}
	copy(d[:], buffer)
	return d, nil
}

// FromString - convert hex text to a digest
func FromString(s string) (Digest, error) {
	d := Digest{}
	err := d.UnmarshalText([]byte(s))
	return d, err
}
