// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
)

// FirstPurchasePerLocation - emit the first purchase of every location
//
// later purchases of a location are ignored whatever their price
func (a *Aggregator) FirstPurchasePerLocation(purchases string, emit Emit) (Report, error) {
	seen := make(firstPerLocation)
	return a.scanPurchases(purchases, chain.AsStored, func(p colour.Purchase) bool {
		if seen.add(p.Location) {
			emit(p.Location, p.Colour)
		}
		return true
	})
}

// FirstVotePerCreator - emit the first vote of every creator
//
// a creator's later votes are ignored even at other locations
func (a *Aggregator) FirstVotePerCreator(votes string, emit Emit) (Report, error) {
	seen := make(firstPerCreator)
	return a.scanVotes(votes, chain.AsStored, func(v colour.Vote) bool {
		if seen.add(v.Creator) {
			emit(v.Location, v.Colour)
		}
		return true
	})
}

// CreatorVotes - every vote of one creator, oldest first
func (a *Aggregator) CreatorVotes(votes string, creator string) ([]colour.Vote, Report, error) {
	result := make([]colour.Vote, 0, 8)
	report, err := a.scanVotes(votes, chain.AsStored, func(v colour.Vote) bool {
		if creator == v.Creator {
			result = append(result, v)
		}
		return true
	})
	return result, report, err
}

// CreatorPurchases - every purchase of one creator, oldest first
func (a *Aggregator) CreatorPurchases(purchases string, creator string) ([]colour.Purchase, Report, error) {
	result := make([]colour.Purchase, 0, 8)
	report, err := a.scanPurchases(purchases, chain.AsStored, func(p colour.Purchase) bool {
		if creator == p.Creator {
			result = append(result, p)
		}
		return true
	})
	return result, report, err
}
