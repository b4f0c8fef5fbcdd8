// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/counter"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/record"
)

// Emit - receives each resolved location as soon as it is known
type Emit func(location colour.Location, c colour.Colour)

// Decision - the outcome of a per-location rule
type Decision struct {
	Colour  colour.Colour `json:"colour"`
	Decided bool          `json:"decided"`
}

// Report - what one scan saw
type Report struct {
	Entries  uint64 `json:"entries"`  // entries passed to the scan
	Records  uint64 `json:"records"`  // entries that decoded
	Failures uint64 `json:"failures"` // entries that did not decode
}

// Aggregator - runs the rules against one source of logs
//
// each call allocates its own state so an Aggregator may be shared
type Aggregator struct {
	source   chain.Log
	log      *logger.L
	failures counter.Counter
}

// New - create an aggregator reading from source
func New(source chain.Log) *Aggregator {
	return &Aggregator{
		source: source,
		log:    logger.New("aggregate"),
	}
}

// Failures - total undecodable entries seen by all scans so far
func (a *Aggregator) Failures() uint64 {
	return a.failures.Uint64()
}

// common scan loop
//
// visit decodes one entry, an error counts the entry as a failure and
// the scan moves on, otherwise the flag decides whether it continues
func (a *Aggregator) scan(name string, order chain.Order, visit func(entry chain.Entry) (bool, error)) (Report, error) {
	report := Report{}

	err := a.source.Iterate(name, order, func(entry chain.Entry) bool {
		report.Entries += 1
		more, err := visit(entry)
		if nil != err {
			report.Failures += 1
			a.failures.Increment()
			a.log.Warnf("log: %q  entry: %v  skipped: %s", name, entry.Hash, err)
			return true
		}
		report.Records += 1
		return more
	})

	a.log.Debugf("log: %q  order: %s  entries: %d  records: %d  failures: %d", name, order, report.Entries, report.Records, report.Failures)

	if nil != err {
		a.log.Errorf("log: %q  iterate error: %s", name, err)
		return report, fault.Unavailable(name, err)
	}
	return report, nil
}

// scanVotes - the creator of each vote is the creator of its entry
func (a *Aggregator) scanVotes(name string, order chain.Order, fn func(vote colour.Vote) bool) (Report, error) {
	return a.scan(name, order, func(entry chain.Entry) (bool, error) {
		v, err := record.UnpackVote(entry.Payload)
		if nil != err {
			return true, err
		}
		v.Creator = entry.Creator
		return fn(v), nil
	})
}

func (a *Aggregator) scanPurchases(name string, order chain.Order, fn func(purchase colour.Purchase) bool) (Report, error) {
	return a.scan(name, order, func(entry chain.Entry) (bool, error) {
		p, err := record.UnpackPurchase(entry.Payload)
		if nil != err {
			return true, err
		}
		p.Creator = entry.Creator
		return fn(p), nil
	})
}
