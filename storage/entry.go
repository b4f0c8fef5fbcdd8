// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/util"
)

// limits on the variable parts of an entry
const (
	MaximumCreatorLength = 256
	MaximumPayloadLength = 65536
)

// key prefixes
const (
	entryPrefix = 'E'
	hashPrefix  = 'H'
	headPrefix  = 'N'
)

const (
	sequenceLength = 8
	headLength     = sequenceLength + digest.Length
)

func validLogName(name string) bool {
	return "" != name && !strings.ContainsRune(name, 0)
}

// prefix ++ name ++ 0x00
func logKey(prefix byte, name string, extra int) []byte {
	key := make([]byte, 0, 2+len(name)+extra)
	key = append(key, prefix)
	key = append(key, name...)
	return append(key, 0x00)
}

func entryKey(name string, sequence uint64) []byte {
	key := logKey(entryPrefix, name, sequenceLength)
	return appendSequence(key, sequence)
}

func hashKey(name string, hash digest.Digest) []byte {
	key := logKey(hashPrefix, name, digest.Length)
	return append(key, hash[:]...)
}

func headKey(name string) []byte {
	return logKey(headPrefix, name, 0)
}

// the key range covering every entry of a log
func entryRange(name string) ([]byte, []byte) {
	start := logKey(entryPrefix, name, 0)
	limit := make([]byte, len(start))
	copy(limit, start)
	limit[len(limit)-1] = 0x01
	return start, limit
}

func appendSequence(buffer []byte, sequence uint64) []byte {
	n := make([]byte, sequenceLength)
	binary.BigEndian.PutUint64(n, sequence)
	return append(buffer, n...)
}

// hash ++ previous ++ Varint64(timestamp) ++ bytes(creator) ++ bytes(payload)
func packEntry(previous digest.Digest, timestamp time.Time, creator string, payload []byte) (digest.Digest, []byte) {
	buffer := make([]byte, digest.Length, 2*digest.Length+util.Varint64MaximumBytes*3+len(creator)+len(payload))
	buffer = append(buffer, previous[:]...)
	buffer = util.AppendVarint64(buffer, uint64(timestamp.UnixNano()))
	buffer = util.AppendBytes(buffer, []byte(creator))
	buffer = util.AppendBytes(buffer, payload)

	hash := digest.NewDigest(buffer[digest.Length:])
	copy(buffer, hash[:])
	return hash, buffer
}

// decode a stored entry and check its hash
//
// the returned entry owns its memory
func unpackEntry(buffer []byte) (chain.Entry, error) {
	entry := chain.Entry{}

	if len(buffer) < 2*digest.Length {
		return entry, fault.ErrCorruptEntry
	}
	copy(entry.Hash[:], buffer[:digest.Length])
	copy(entry.Previous[:], buffer[digest.Length:2*digest.Length])

	if entry.Hash != digest.NewDigest(buffer[digest.Length:]) {
		return entry, fault.ErrCorruptEntry
	}

	n := 2 * digest.Length
	timestamp, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return entry, fault.ErrCorruptEntry
	}
	n += count
	entry.Timestamp = time.Unix(0, int64(timestamp)).UTC()

	creator, count := util.ReadBytes(buffer[n:], MaximumCreatorLength)
	if 0 == count {
		return entry, fault.ErrCorruptEntry
	}
	n += count
	entry.Creator = string(creator)

	payload, count := util.ReadBytes(buffer[n:], MaximumPayloadLength)
	if 0 == count {
		return entry, fault.ErrCorruptEntry
	}
	n += count
	if n != len(buffer) {
		return entry, fault.ErrCorruptEntry
	}

	entry.Payload = make([]byte, len(payload))
	copy(entry.Payload, payload)

	return entry, nil
}

// count ++ hash
func unpackHead(buffer []byte) (uint64, digest.Digest, error) {
	if headLength != len(buffer) {
		return 0, digest.Zero, fault.ErrCorruptEntry
	}
	count := binary.BigEndian.Uint64(buffer[:sequenceLength])
	hash, err := digest.FromBytes(buffer[sequenceLength:])
	return count, hash, err
}

func packHead(count uint64, hash digest.Digest) []byte {
	buffer := make([]byte, 0, headLength)
	buffer = appendSequence(buffer, count)
	return append(buffer, hash[:]...)
}
