// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
)

// Location - one cell of a canvas
//
// comparable, so can be used directly as a map key
type Location struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
	Z uint32 `json:"z"`
}

// At - convenience constructor
func At(x uint32, y uint32, z uint32) Location {
	return Location{X: x, Y: y, Z: z}
}

// String - as (x,y,z)
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d,%d)", l.X, l.Y, l.Z)
}

// Vote - one entry in a canvas votes log
type Vote struct {
	Creator  string   `json:"creator"`
	Location Location `json:"location"`
	Colour   Colour   `json:"colour"`
}

// Purchase - one entry in a canvas purchases log
type Purchase struct {
	Creator  string   `json:"creator"`
	Location Location `json:"location"`
	Colour   Colour   `json:"colour"`
	Price    uint64   `json:"price"`
}
