// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/colourd/fault"
)

// Colour - packed 24 bit RGB value: 0xRRGGBB
type Colour uint32

// FromRGB - pack three 8 bit components
func FromRGB(red uint8, green uint8, blue uint8) Colour {
	return Colour(uint32(red)<<16 | uint32(green)<<8 | uint32(blue))
}

// RGB - unpack the three components
func (c Colour) RGB() (uint8, uint8, uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String - as #rrggbb
func (c Colour) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// MarshalText - JSON form is the #rrggbb string
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - accept the #rrggbb string
func (c *Colour) UnmarshalText(s []byte) error {
	colour, err := ColourFromString(string(s))
	if nil != err {
		return err
	}
	*c = colour
	return nil
}

// ColourFromString - parse "#rrggbb" or "rrggbb"
func ColourFromString(s string) (Colour, error) {
	s = strings.TrimPrefix(s, "#")
	if 6 != len(s) {
		return 0, fault.ErrInvalidColour
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if nil != err {
		return 0, fault.ErrInvalidColour
	}
	return Colour(n), nil
}
