// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain named, hash-linked logs in LevelDB
//
// Notes:
// 1. ++      = concatenation of byte data
// 2. name    = log name, any non-empty string without a NUL byte
// 3. seq     = position in the log as big endian uint64 (8 bytes), first entry is zero
// 4. hash    = SHA3-256 over: previous ++ timestamp ++ creator ++ payload (32 bytes)
// 5. bytes() = Varint64 length ++ data
//
// Entries:
//
//   E ++ name ++ 0x00 ++ seq   - the entry
//                                data: hash ++ previous ++ Varint64(timestamp ns) ++ bytes(creator) ++ bytes(payload)
//
// Hash index:
//
//   H ++ name ++ 0x00 ++ hash  - position of an entry
//                                data: seq
//
// Head:
//
//   N ++ name ++ 0x00          - number of entries and the newest hash
//                                data: count ++ hash
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version (big endian uint32)
package storage
