// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for tests that need logging or a
// populated store
package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/record"
	"github.com/bitmark-inc/colourd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// default creators
const (
	Alice = "alice"
	Bob   = "bob"
	Carol = "carol"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// NewStore - an empty in-memory store closed at the end of the test
func NewStore(t *testing.T) *storage.Store {
	t.Helper()

	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory store error: %s", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// AppendRaw - append an arbitrary payload
func AppendRaw(t *testing.T, s *storage.Store, name string, creator string, payload []byte) digest.Digest {
	t.Helper()

	hash, err := s.Append(name, creator, payload)
	if nil != err {
		t.Fatalf("append to: %q  error: %s", name, err)
	}
	return hash
}

// AppendCanvas - append a canvas definition
func AppendCanvas(t *testing.T, s *storage.Store, name string, c colour.Canvas) digest.Digest {
	t.Helper()
	return AppendRaw(t, s, name, Alice, record.PackCanvas(c))
}

// AppendVotes - append votes in order, the creator of each entry is
// the creator of the vote
func AppendVotes(t *testing.T, s *storage.Store, name string, votes ...colour.Vote) []digest.Digest {
	t.Helper()

	hashes := make([]digest.Digest, 0, len(votes))
	for _, v := range votes {
		hashes = append(hashes, AppendRaw(t, s, name, creatorOf(v.Creator), record.PackVote(v)))
	}
	return hashes
}

// AppendPurchases - append purchases in order
func AppendPurchases(t *testing.T, s *storage.Store, name string, purchases ...colour.Purchase) []digest.Digest {
	t.Helper()

	hashes := make([]digest.Digest, 0, len(purchases))
	for _, p := range purchases {
		hashes = append(hashes, AppendRaw(t, s, name, creatorOf(p.Creator), record.PackPurchase(p)))
	}
	return hashes
}

// Vote - shorthand for a vote
func Vote(creator string, l colour.Location, c colour.Colour) colour.Vote {
	return colour.Vote{Creator: creator, Location: l, Colour: c}
}

// Purchase - shorthand for a purchase
func Purchase(creator string, l colour.Location, c colour.Colour, price uint64) colour.Purchase {
	return colour.Purchase{Creator: creator, Location: l, Colour: c, Price: price}
}

func creatorOf(creator string) string {
	if "" == creator {
		return Alice
	}
	return creator
}
