// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
)

// MajorityVote - the colour with the most votes at a location
func (a *Aggregator) MajorityVote(votes string, location colour.Location) (Decision, Report, error) {
	tally := newMajority()
	report, err := a.scanVotes(votes, chain.AsStored, func(v colour.Vote) bool {
		if location == v.Location {
			tally.add(v.Colour)
		}
		return true
	})
	return tally.decision(), report, err
}

// LatestVote - the colour of the newest vote at a location
func (a *Aggregator) LatestVote(votes string, location colour.Location) (Decision, Report, error) {
	decision := Decision{}
	report, err := a.scanVotes(votes, chain.NewestFirst, func(v colour.Vote) bool {
		if location != v.Location {
			return true
		}
		decision = Decision{Colour: v.Colour, Decided: true}
		return false
	})
	return decision, report, err
}

// HighestBid - the colour of the highest priced purchase at a location
func (a *Aggregator) HighestBid(purchases string, location colour.Location) (Decision, Report, error) {
	bid := highestBid{}
	report, err := a.scanPurchases(purchases, chain.AsStored, func(p colour.Purchase) bool {
		if location == p.Location {
			bid.add(p)
		}
		return true
	})
	return bid.decision(), report, err
}

// LatestPurchase - the colour of the newest purchase at a location
func (a *Aggregator) LatestPurchase(purchases string, location colour.Location) (Decision, Report, error) {
	decision := Decision{}
	report, err := a.scanPurchases(purchases, chain.NewestFirst, func(p colour.Purchase) bool {
		if location != p.Location {
			return true
		}
		decision = Decision{Colour: p.Colour, Decided: true}
		return false
	})
	return decision, report, err
}
