// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
)

// Iterate - visit the entries of a log in the given order
//
// an unknown log is empty, fn is not called
func (s *Store) Iterate(name string, order chain.Order, fn chain.EntryFunc) error {
	if AsStored != order && NewestFirst != order {
		return fault.ErrInvalidOrder
	}
	if !validLogName(name) {
		return fault.ErrInvalidLogName
	}

	db := s.database()
	if nil == db {
		return fault.ErrNotInitialised
	}

	start, limit := entryRange(name)
	iter := db.NewIterator(&ldb_util.Range{Start: start, Limit: limit}, nil)
	defer iter.Release()

	first, next := iter.First, iter.Next
	if NewestFirst == order {
		first, next = iter.Last, iter.Prev
	}

	for ok := first(); ok; ok = next() {
		entry, err := unpackEntry(iter.Value())
		if nil != err {
			s.log.Errorf("log: %q  key: %x  error: %s", name, iter.Key(), err)
			return err
		}
		if !fn(entry) {
			return nil
		}
	}
	return iter.Error()
}

var _ chain.Log = (*Store)(nil)

// orders re-exported so callers of the store need not import chain
const (
	AsStored    = chain.AsStored
	NewestFirst = chain.NewestFirst
)

// Find - fetch an entry of the named log by its hash
func (s *Store) Find(name string, hash digest.Digest) (chain.Entry, error) {
	if !validLogName(name) {
		return chain.Entry{}, fault.ErrInvalidLogName
	}

	db := s.database()
	if nil == db {
		return chain.Entry{}, fault.ErrNotInitialised
	}

	key := hashKey(name, hash)
	cacheKey := string(key)

	packed, found := s.cache.Get(cacheKey)
	if !found {
		sequence, err := db.Get(key, nil)
		if leveldb.ErrNotFound == err {
			return chain.Entry{}, fault.ErrEntryNotFound
		} else if nil != err {
			return chain.Entry{}, err
		}

		packed, err = db.Get(append(logKey(entryPrefix, name, sequenceLength), sequence...), nil)
		if leveldb.ErrNotFound == err {
			s.log.Errorf("log: %q  hash: %v  index refers to a missing entry", name, hash)
			return chain.Entry{}, fault.ErrCorruptEntry
		} else if nil != err {
			return chain.Entry{}, err
		}
		s.cache.Set(cacheKey, packed)
	}

	entry, err := unpackEntry(packed)
	if nil != err {
		return chain.Entry{}, err
	}
	if entry.Hash != hash {
		return chain.Entry{}, fault.ErrCorruptEntry
	}
	return entry, nil
}

// Head - number of entries in a log and the hash of the newest one
//
// an unknown log has zero entries and a zero hash
func (s *Store) Head(name string) (uint64, digest.Digest, error) {
	if !validLogName(name) {
		return 0, digest.Zero, fault.ErrInvalidLogName
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return 0, digest.Zero, fault.ErrNotInitialised
	}
	return s.head(name)
}

// Names - the names of all logs holding at least one entry
func (s *Store) Names() ([]string, error) {
	db := s.database()
	if nil == db {
		return nil, fault.ErrNotInitialised
	}

	iter := db.NewIterator(ldb_util.BytesPrefix([]byte{headPrefix}), nil)
	defer iter.Release()

	names := make([]string, 0, 8)
	for iter.Next() {
		key := iter.Key()
		names = append(names, string(key[1:len(key)-1]))
	}
	return names, iter.Error()
}

// must hold the lock
func (s *Store) head(name string) (uint64, digest.Digest, error) {
	buffer, err := s.db.Get(headKey(name), nil)
	if leveldb.ErrNotFound == err {
		return 0, digest.Zero, nil
	} else if nil != err {
		return 0, digest.Zero, err
	}
	return unpackHead(buffer)
}

func (s *Store) database() *leveldb.DB {
	s.Lock()
	defer s.Unlock()
	return s.db
}
