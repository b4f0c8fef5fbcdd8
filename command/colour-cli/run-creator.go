// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/aggregate"
	"github.com/bitmark-inc/colourd/colour"
)

type votesReply struct {
	Canvas  string           `json:"canvas"`
	Creator string           `json:"creator"`
	Votes   []colour.Vote    `json:"votes"`
	Report  aggregate.Report `json:"report"`
}

type purchasesReply struct {
	Canvas    string            `json:"canvas"`
	Creator   string            `json:"creator"`
	Purchases []colour.Purchase `json:"purchases"`
	Report    aggregate.Report  `json:"report"`
}

func runVotesBy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, _, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	creator, err := checkCreator(c.String("creator"), m.config.Creator)
	if nil != err {
		return err
	}

	votes, report, err := loader.Aggregator().CreatorVotes(loader.VotesLog(), creator)
	if nil != err {
		return err
	}

	return printJson(m.w, votesReply{
		Canvas:  loader.ID(),
		Creator: creator,
		Votes:   votes,
		Report:  report,
	})
}

func runPurchasesBy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, _, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	creator, err := checkCreator(c.String("creator"), m.config.Creator)
	if nil != err {
		return err
	}

	purchases, report, err := loader.Aggregator().CreatorPurchases(loader.PurchasesLog(), creator)
	if nil != err {
		return err
	}

	return printJson(m.w, purchasesReply{
		Canvas:    loader.ID(),
		Creator:   creator,
		Purchases: purchases,
		Report:    report,
	})
}
