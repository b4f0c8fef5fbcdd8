// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aggregate - fold vote and purchase logs into colours
//
// Per-location rules return a Decision for a single location:
//
//   MajorityVote   - most votes, the first colour to reach the maximum keeps it
//   LatestVote     - newest vote, scan stops at the first match
//   HighestBid     - highest price, the earliest purchase at that price keeps it
//   LatestPurchase - newest purchase, scan stops at the first match
//
// Whole-log rules push (location, colour) pairs to an Emit function as
// they are found:
//
//   FirstPurchasePerLocation - first purchase of each location
//   FirstVotePerCreator      - first vote of each creator anywhere on the canvas
//
// A payload that cannot be decoded is skipped and counted in the
// Report, the rest of the log is still aggregated.  A log that cannot
// be read to the end gives a *fault.UnavailableError, anything already
// emitted stands.
package aggregate
