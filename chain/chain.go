// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - access to named, append-only, hash-linked logs
//
// Nothing here knows what the payloads mean.  Replication, signing
// and verification happen before an entry is visible through a Log.
package chain

import (
	"time"

	"github.com/bitmark-inc/colourd/digest"
)

// Order - direction of an iteration
type Order int

// possible orders
const (
	AsStored    Order = iota // oldest first
	NewestFirst              // head first
)

// String - for logging
func (o Order) String() string {
	switch o {
	case AsStored:
		return "as-stored"
	case NewestFirst:
		return "newest-first"
	default:
		return "*unknown*"
	}
}

// Entry - one element of a log
type Entry struct {
	Hash      digest.Digest `json:"hash"`
	Previous  digest.Digest `json:"previous"`
	Creator   string        `json:"creator"`
	Payload   []byte        `json:"payload"`
	Timestamp time.Time     `json:"timestamp"`
}

// EntryFunc - called once per entry, return false to stop the iteration
type EntryFunc func(entry Entry) bool

// Log - the capability the resolution engine needs from a log store
type Log interface {
	// Iterate - visit entries of the named log in the given order
	//
	// must not call fn again after fn returns false
	// an unknown log name is an empty log, not an error
	Iterate(name string, order Order, fn EntryFunc) error

	// Find - fetch a single entry by its hash
	//
	// returns fault.ErrEntryNotFound if absent
	Find(name string, hash digest.Digest) (Entry, error)
}
