// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
)

// Append - add a payload to the end of the named log
//
// the new entry is linked to the current head of the log and its
// hash is returned
func (s *Store) Append(name string, creator string, payload []byte) (digest.Digest, error) {
	if s.readOnly {
		return digest.Zero, fault.ErrReadOnly
	}
	if !validLogName(name) {
		return digest.Zero, fault.ErrInvalidLogName
	}
	if "" == creator {
		return digest.Zero, fault.ErrMissingCreator
	}
	if len(creator) > MaximumCreatorLength {
		return digest.Zero, fault.ErrCreatorTooLong
	}
	if len(payload) > MaximumPayloadLength {
		return digest.Zero, fault.ErrPayloadTooLong
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return digest.Zero, fault.ErrNotInitialised
	}

	count, previous, err := s.head(name)
	if nil != err {
		s.log.Errorf("log: %q  read head error: %s", name, err)
		return digest.Zero, err
	}

	hash, packed := packEntry(previous, s.now(), creator, payload)

	batch := new(leveldb.Batch)
	batch.Put(entryKey(name, count), packed)
	batch.Put(hashKey(name, hash), appendSequence(nil, count))
	batch.Put(headKey(name), packHead(count+1, hash))

	err = s.db.Write(batch, nil)
	if nil != err {
		s.log.Criticalf("log: %q  write error: %s", name, err)
		return digest.Zero, err
	}

	s.log.Debugf("log: %q  entry: %d  hash: %v  creator: %q", name, count, hash, creator)
	return hash, nil
}
