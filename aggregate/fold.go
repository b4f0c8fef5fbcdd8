// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/bitmark-inc/colourd/colour"
)

// vote tally with a running maximum
//
// the leader only changes when another colour strictly exceeds it
type majority struct {
	counts map[colour.Colour]uint64
	leader colour.Colour
	top    uint64
}

func newMajority() *majority {
	return &majority{
		counts: make(map[colour.Colour]uint64),
	}
}

func (m *majority) add(c colour.Colour) {
	n := m.counts[c] + 1
	m.counts[c] = n
	if n > m.top {
		m.top = n
		m.leader = c
	}
}

func (m *majority) decision() Decision {
	return Decision{Colour: m.leader, Decided: 0 != m.top}
}

// maximum price, the earliest purchase at that price is kept
//
// the maximum starts at zero so purchases at no cost never decide
type highestBid struct {
	colour colour.Colour
	price  uint64
	found  bool
}

func (h *highestBid) add(p colour.Purchase) {
	if p.Price > h.price {
		h.colour = p.Colour
		h.price = p.Price
		h.found = true
	}
}

func (h *highestBid) decision() Decision {
	return Decision{Colour: h.colour, Decided: h.found}
}

// locations already emitted in this scan
type firstPerLocation map[colour.Location]struct{}

// add - true if the location has not been seen before
func (f firstPerLocation) add(l colour.Location) bool {
	if _, ok := f[l]; ok {
		return false
	}
	f[l] = struct{}{}
	return true
}

// creators that have already voted in this scan
type firstPerCreator map[string]struct{}

// add - true if this is the creator's first vote
func (f firstPerCreator) add(creator string) bool {
	if _, ok := f[creator]; ok {
		return false
	}
	f[creator] = struct{}{}
	return true
}
