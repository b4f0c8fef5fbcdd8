// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - a set of named logs held in one LevelDB database
type Store struct {
	sync.Mutex // serialises Append

	log      *logger.L
	db       *leveldb.DB
	cache    Cache
	readOnly bool
	now      func() time.Time
}

// Open - open or create the database in the given directory
func Open(directory string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	return setup(db, directory, readOnly)
}

// OpenMemory - a store that lives only as long as the process
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q has no version", name)
			db.Close()
			return nil, fmt.Errorf("database: %q has no version", name)
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened database: %q  version: 0x%x  read only: %t", name, currentDBVersion, readOnly)

	s := &Store{
		log:      log,
		db:       db,
		cache:    newCache(),
		readOnly: readOnly,
		now:      time.Now,
	}
	return s, nil
}

// Close - close the database connection
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil
	}
	s.cache.Clear()
	err := s.db.Close()
	s.db = nil
	return err
}

// return the stored version or zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
