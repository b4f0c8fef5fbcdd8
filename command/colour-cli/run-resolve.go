// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/aggregate"
	"github.com/bitmark-inc/colourd/colour"
)

type resolvedLocation struct {
	Location colour.Location `json:"location"`
	Colour   colour.Colour   `json:"colour"`
}

type resolveReply struct {
	Canvas    string             `json:"canvas"`
	Mode      colour.Mode        `json:"mode"`
	Locations []resolvedLocation `json:"locations"`
	Report    aggregate.Report   `json:"report"`
}

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, definition, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	locations := make([]resolvedLocation, 0, 100)
	report, err := loader.Resolve(func(location colour.Location, paint colour.Colour) {
		if m.verbose {
			fmt.Fprintf(m.e, "%s → %s\n", location, paint)
		}
		locations = append(locations, resolvedLocation{
			Location: location,
			Colour:   paint,
		})
	})
	if nil != err {
		return err
	}

	return printJson(m.w, resolveReply{
		Canvas:    loader.ID(),
		Mode:      definition.Mode,
		Locations: locations,
		Report:    report,
	})
}

type decisionReply struct {
	Canvas   string             `json:"canvas"`
	Location colour.Location    `json:"location"`
	Decision aggregate.Decision `json:"decision"`
	Report   aggregate.Report   `json:"report"`
}

// one of the per-location rules
type locationRule func(a *aggregate.Aggregator, votes string, purchases string, location colour.Location) (aggregate.Decision, aggregate.Report, error)

func runLocationRule(c *cli.Context, rule locationRule) error {

	m := c.App.Metadata["config"].(*metadata)

	loader, definition, err := loadCanvas(c, m)
	if nil != err {
		return err
	}

	location, err := checkLocation(c.String("location"))
	if nil != err {
		return err
	}
	if m.verbose && !definition.Contains(location) {
		fmt.Fprintf(m.e, "location: %s is outside the canvas: %s\n", location, definition.Dimensions())
	}

	decision, report, err := rule(loader.Aggregator(), loader.VotesLog(), loader.PurchasesLog(), location)
	if nil != err {
		return err
	}

	return printJson(m.w, decisionReply{
		Canvas:   loader.ID(),
		Location: location,
		Decision: decision,
		Report:   report,
	})
}

func runMajority(c *cli.Context) error {
	return runLocationRule(c, func(a *aggregate.Aggregator, votes string, _ string, location colour.Location) (aggregate.Decision, aggregate.Report, error) {
		return a.MajorityVote(votes, location)
	})
}

func runLatestVote(c *cli.Context) error {
	return runLocationRule(c, func(a *aggregate.Aggregator, votes string, _ string, location colour.Location) (aggregate.Decision, aggregate.Report, error) {
		return a.LatestVote(votes, location)
	})
}

func runHighestBid(c *cli.Context) error {
	return runLocationRule(c, func(a *aggregate.Aggregator, _ string, purchases string, location colour.Location) (aggregate.Decision, aggregate.Report, error) {
		return a.HighestBid(purchases, location)
	})
}

func runLatestPurchase(c *cli.Context) error {
	return runLocationRule(c, func(a *aggregate.Aggregator, _ string, purchases string, location colour.Location) (aggregate.Decision, aggregate.Report, error) {
		return a.LatestPurchase(purchases, location)
	})
}
