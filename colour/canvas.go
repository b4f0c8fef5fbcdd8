// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/colourd/fault"
)

// Mode - the governance rule set of a canvas
//
// numeric values are part of the record wire format
type Mode uint32

// all modes in wire order
const (
	UnknownMode           Mode = iota // UNKNOWN_MODE
	FreeForAll                        // FREE_FOR_ALL
	ColourMarket                      // COLOUR_MARKET
	RadicalColourMarket               // RADICAL_COLOUR_MARKET
	LocationMarket                    // LOCATION_MARKET
	RadicalLocationMarket             // RADICAL_LOCATION_MARKET
	OneAliasOneVote                   // ONE_ALIAS_ONE_VOTE
	QuadraticVote                     // QUADRATIC_VOTE
)

var modeNames = []string{
	UnknownMode:           "UNKNOWN_MODE",
	FreeForAll:            "FREE_FOR_ALL",
	ColourMarket:          "COLOUR_MARKET",
	RadicalColourMarket:   "RADICAL_COLOUR_MARKET",
	LocationMarket:        "LOCATION_MARKET",
	RadicalLocationMarket: "RADICAL_LOCATION_MARKET",
	OneAliasOneVote:       "ONE_ALIAS_ONE_VOTE",
	QuadraticVote:         "QUADRATIC_VOTE",
}

// String - the upper case wire name, or UNRECOGNIZED(n)
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("UNRECOGNIZED(%d)", uint32(m))
}

// MarshalText - JSON form is the name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - accept any name understood by ModeFromString
func (m *Mode) UnmarshalText(s []byte) error {
	mode, err := ModeFromString(string(s))
	if nil != err {
		return err
	}
	*m = mode
	return nil
}

// ModeFromString - case insensitive, '-' and '_' are equivalent
func ModeFromString(s string) (Mode, error) {
	name := strings.ToUpper(strings.Replace(s, "-", "_", -1))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return UnknownMode, fault.ErrInvalidMode
}

// Canvas - the defining record of a canvas
type Canvas struct {
	Name   string `json:"name"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Depth  uint32 `json:"depth"`
	Mode   Mode   `json:"mode"`
}

// Contains - true if the location is within the canvas bounds
func (c Canvas) Contains(l Location) bool {
	return l.X < c.Width && l.Y < c.Height && l.Z < c.Depth
}

// Dimensions - as WxHxD
func (c Canvas) Dimensions() string {
	return fmt.Sprintf("%dx%dx%d", c.Width, c.Height, c.Depth)
}

// Validate - check a canvas before it is written to a log
func (c Canvas) Validate() error {
	if "" == c.Name {
		return fault.ErrMissingCanvasName
	}
	if 0 == c.Width || 0 == c.Height || 0 == c.Depth {
		return fault.ErrZeroCanvasDimension
	}
	if int(c.Mode) >= len(modeNames) || UnknownMode == c.Mode {
		return fault.ErrInvalidMode
	}
	return nil
}
