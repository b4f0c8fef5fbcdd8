// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
	"github.com/bitmark-inc/colourd/record"
)

type recordReply struct {
	Log  string        `json:"log"`
	Hash digest.Digest `json:"hash"`
}

// common flags of votes and purchases
func checkPlacement(c *cli.Context, m *metadata, definition colour.Canvas) (string, colour.Location, colour.Colour, error) {
	creator, err := checkCreator(c.String("creator"), m.config.Creator)
	if nil != err {
		return "", colour.Location{}, 0, err
	}

	location, err := checkLocation(c.String("location"))
	if nil != err {
		return "", colour.Location{}, 0, err
	}
	if !definition.Contains(location) {
		return "", colour.Location{}, 0, fault.ErrLocationOutOfBounds
	}

	paint, err := checkColour(c.String("colour"))
	if nil != err {
		return "", colour.Location{}, 0, err
	}

	return creator, location, paint, nil
}

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, definition, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	creator, location, paint, err := checkPlacement(c, m, definition)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "vote: %s  location: %s  colour: %s\n", creator, location, paint)
	}

	vote := colour.Vote{Location: location, Colour: paint}
	hash, err := m.store.Append(loader.VotesLog(), creator, record.PackVote(vote))
	if nil != err {
		return err
	}

	return printJson(m.w, recordReply{Log: loader.VotesLog(), Hash: hash})
}

func runPurchase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, definition, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	creator, location, paint, err := checkPlacement(c, m, definition)
	if nil != err {
		return err
	}

	price := c.Uint64("price")

	if m.verbose {
		fmt.Fprintf(m.e, "purchase: %s  location: %s  colour: %s  price: %d\n", creator, location, paint, price)
	}

	purchase := colour.Purchase{Location: location, Colour: paint, Price: price}
	hash, err := m.store.Append(loader.PurchasesLog(), creator, record.PackPurchase(purchase))
	if nil != err {
		return err
	}

	return printJson(m.w, recordReply{Log: loader.PurchasesLog(), Hash: hash})
}
