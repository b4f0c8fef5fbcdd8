// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/storage/mocks"
)

const (
	logDirectory = "testing"
	testLog      = "Test-Log"
)

var epoch = time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "storage.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	result := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(result)
}

// a memory store with a clock that advances one second per call
func setupTestStore(t *testing.T) *Store {
	s, err := OpenMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	tick := 0
	s.now = func() time.Time {
		tick += 1
		return epoch.Add(time.Duration(tick) * time.Second)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func appendN(t *testing.T, s *Store, name string, n int) []digest.Digest {
	hashes := make([]digest.Digest, 0, n)
	for i := 0; i < n; i += 1 {
		hash, err := s.Append(name, "alice", []byte(fmt.Sprintf("payload-%d", i)))
		if nil != err {
			t.Fatalf("append error: %s", err)
		}
		hashes = append(hashes, hash)
	}
	return hashes
}

func collect(t *testing.T, s *Store, name string, order chain.Order) []chain.Entry {
	entries := []chain.Entry{}
	err := s.Iterate(name, order, func(entry chain.Entry) bool {
		entries = append(entries, entry)
		return true
	})
	assert.Nil(t, err, "iterate error")
	return entries
}

func TestAppendLinksEntries(t *testing.T) {
	s := setupTestStore(t)

	hashes := appendN(t, s, testLog, 3)

	entries := collect(t, s, testLog, AsStored)
	assert.Equal(t, 3, len(entries), "wrong entry count")

	previous := digest.Zero
	for i, entry := range entries {
		assert.Equal(t, hashes[i], entry.Hash, "wrong hash: %d", i)
		assert.Equal(t, previous, entry.Previous, "wrong previous link: %d", i)
		assert.Equal(t, "alice", entry.Creator, "wrong creator: %d", i)
		assert.Equal(t, []byte(fmt.Sprintf("payload-%d", i)), entry.Payload, "wrong payload: %d", i)
		assert.Equal(t, epoch.Add(time.Duration(i+1)*time.Second), entry.Timestamp, "wrong timestamp: %d", i)
		previous = entry.Hash
	}

	count, head, err := s.Head(testLog)
	assert.Nil(t, err, "head error")
	assert.Equal(t, uint64(3), count, "wrong head count")
	assert.Equal(t, hashes[2], head, "wrong head hash")
}

func TestAppendSamePayloadGivesDistinctHashes(t *testing.T) {
	s := setupTestStore(t)

	h1, err := s.Append(testLog, "alice", []byte("same"))
	assert.Nil(t, err, "first append error")
	h2, err := s.Append(testLog, "alice", []byte("same"))
	assert.Nil(t, err, "second append error")

	assert.NotEqual(t, h1, h2, "identical entries in sequence share a hash")
}

func TestAppendRejects(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name    string
		creator string
		payload []byte
		err     error
	}{
		{"", "alice", nil, fault.ErrInvalidLogName},
		{"bad\x00name", "alice", nil, fault.ErrInvalidLogName},
		{testLog, "", nil, fault.ErrMissingCreator},
		{testLog, strings.Repeat("x", MaximumCreatorLength+1), nil, fault.ErrCreatorTooLong},
		{testLog, "alice", make([]byte, MaximumPayloadLength+1), fault.ErrPayloadTooLong},
	}

	for i, item := range tests {
		_, err := s.Append(item.name, item.creator, item.payload)
		assert.Equal(t, item.err, err, "wrong error: %d", i)
	}

	count, _, _ := s.Head(testLog)
	assert.Equal(t, uint64(0), count, "rejected appends were stored")
}

func TestAppendLimits(t *testing.T) {
	s := setupTestStore(t)

	creator := strings.Repeat("x", MaximumCreatorLength)
	payload := make([]byte, MaximumPayloadLength)
	hash, err := s.Append(testLog, creator, payload)
	assert.Nil(t, err, "append at the limits failed")

	entry, err := s.Find(testLog, hash)
	assert.Nil(t, err, "find error")
	assert.Equal(t, creator, entry.Creator, "wrong creator")
	assert.Equal(t, payload, entry.Payload, "wrong payload")
}

func TestIterateNewestFirst(t *testing.T) {
	s := setupTestStore(t)

	hashes := appendN(t, s, testLog, 4)

	entries := collect(t, s, testLog, NewestFirst)
	assert.Equal(t, 4, len(entries), "wrong entry count")
	for i, entry := range entries {
		assert.Equal(t, hashes[3-i], entry.Hash, "wrong order at: %d", i)
	}
}

func TestIterateStopsEarly(t *testing.T) {
	s := setupTestStore(t)

	hashes := appendN(t, s, testLog, 5)

	for _, order := range []chain.Order{AsStored, NewestFirst} {
		calls := 0
		var seen digest.Digest
		err := s.Iterate(testLog, order, func(entry chain.Entry) bool {
			calls += 1
			seen = entry.Hash
			return 2 != calls
		})
		assert.Nil(t, err, "iterate error: %s", order)
		assert.Equal(t, 2, calls, "callback called after stop: %s", order)
		if AsStored == order {
			assert.Equal(t, hashes[1], seen, "wrong last entry: %s", order)
		} else {
			assert.Equal(t, hashes[3], seen, "wrong last entry: %s", order)
		}
	}
}

func TestIterateUnknownLog(t *testing.T) {
	s := setupTestStore(t)

	appendN(t, s, testLog, 2)

	called := false
	err := s.Iterate("No-Such-Log", NewestFirst, func(chain.Entry) bool {
		called = true
		return true
	})
	assert.Nil(t, err, "unknown log gave an error")
	assert.False(t, called, "callback called for an unknown log")
}

func TestIterateKeepsLogsApart(t *testing.T) {
	s := setupTestStore(t)

	appendN(t, s, "Log", 2)
	appendN(t, s, "Log-Extra", 3)
	appendN(t, s, "Lo", 1)

	assert.Equal(t, 2, len(collect(t, s, "Log", AsStored)), "wrong count for: Log")
	assert.Equal(t, 3, len(collect(t, s, "Log-Extra", NewestFirst)), "wrong count for: Log-Extra")
	assert.Equal(t, 1, len(collect(t, s, "Lo", AsStored)), "wrong count for: Lo")

	names, err := s.Names()
	assert.Nil(t, err, "names error")
	assert.Equal(t, []string{"Lo", "Log", "Log-Extra"}, names, "wrong names")
}

func TestIterateInvalidOrder(t *testing.T) {
	s := setupTestStore(t)

	err := s.Iterate(testLog, chain.Order(99), func(chain.Entry) bool { return true })
	assert.Equal(t, fault.ErrInvalidOrder, err, "wrong error")
}

func TestIterateCorruptEntry(t *testing.T) {
	s := setupTestStore(t)

	appendN(t, s, testLog, 3)

	key := entryKey(testLog, 1)
	value, err := s.db.Get(key, nil)
	assert.Nil(t, err, "get error")
	value[len(value)-1] ^= 0xff
	assert.Nil(t, s.db.Put(key, value, nil), "put error")

	calls := 0
	err = s.Iterate(testLog, AsStored, func(chain.Entry) bool {
		calls += 1
		return true
	})
	assert.Equal(t, fault.ErrCorruptEntry, err, "corruption not detected")
	assert.Equal(t, 1, calls, "wrong number of entries before the corrupt one")
}

func TestFind(t *testing.T) {
	s := setupTestStore(t)

	hashes := appendN(t, s, testLog, 3)
	appendN(t, s, "Other-Log", 1)

	entry, err := s.Find(testLog, hashes[1])
	assert.Nil(t, err, "find error")
	assert.Equal(t, hashes[1], entry.Hash, "wrong hash")
	assert.Equal(t, hashes[0], entry.Previous, "wrong previous")
	assert.Equal(t, []byte("payload-1"), entry.Payload, "wrong payload")

	// from the cache
	again, err := s.Find(testLog, hashes[1])
	assert.Nil(t, err, "second find error")
	assert.Equal(t, entry, again, "cached entry differs")

	_, err = s.Find(testLog, digest.NewDigest([]byte("absent")))
	assert.Equal(t, fault.ErrEntryNotFound, err, "wrong error for absent hash")
	assert.True(t, fault.IsErrNotFound(err), "absent hash is not a not found error")

	_, err = s.Find("Other-Log", hashes[1])
	assert.Equal(t, fault.ErrEntryNotFound, err, "found an entry through the wrong log")
}

func TestFindUsesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := setupTestStore(t)
	hashes := appendN(t, s, testLog, 1)

	packed, err := s.db.Get(entryKey(testLog, 0), nil)
	assert.Nil(t, err, "get error")

	mc := mocks.NewMockCache(ctl)
	key := string(hashKey(testLog, hashes[0]))
	gomock.InOrder(
		mc.EXPECT().Get(key).Return(nil, false).Times(1),
		mc.EXPECT().Set(key, packed).Times(1),
		mc.EXPECT().Get(key).Return(packed, true).Times(1),
	)
	mc.EXPECT().Clear().AnyTimes()
	s.cache = mc

	for i := 0; i < 2; i += 1 {
		entry, err := s.Find(testLog, hashes[0])
		assert.Nil(t, err, "find error: %d", i)
		assert.Equal(t, hashes[0], entry.Hash, "wrong hash: %d", i)
	}
}

func TestReopenReadOnly(t *testing.T) {
	directory, err := ioutil.TempDir("", "colourd-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(directory)

	database := filepath.Join(directory, "logs.leveldb")

	_, err = Open(database, ReadOnly)
	assert.NotNil(t, err, "read only open created a database")

	s, err := Open(database, ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	hashes := appendN(t, s, testLog, 2)
	assert.Nil(t, s.Close(), "close error")
	assert.Nil(t, s.Close(), "second close error")

	s, err = Open(database, ReadOnly)
	if nil != err {
		t.Fatalf("reopen error: %s", err)
	}
	defer s.Close()

	entries := collect(t, s, testLog, AsStored)
	assert.Equal(t, 2, len(entries), "entries not persisted")
	assert.Equal(t, hashes[1], entries[1].Hash, "wrong persisted hash")

	_, err = s.Append(testLog, "alice", nil)
	assert.Equal(t, fault.ErrReadOnly, err, "append allowed on read only store")
}

func TestOpenRejectsNewerVersion(t *testing.T) {
	directory, err := ioutil.TempDir("", "colourd-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(directory)

	s, err := Open(directory, ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	assert.Nil(t, putVersion(s.db, currentDBVersion+1), "put version error")
	_ = s.Close()

	_, err = Open(directory, ReadWrite)
	assert.NotNil(t, err, "opened a newer database")
}

func TestClosedStore(t *testing.T) {
	s, err := OpenMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	_ = s.Close()

	_, err = s.Append(testLog, "alice", nil)
	assert.Equal(t, fault.ErrNotInitialised, err, "append on closed store")

	err = s.Iterate(testLog, AsStored, func(chain.Entry) bool { return true })
	assert.Equal(t, fault.ErrNotInitialised, err, "iterate on closed store")
}
