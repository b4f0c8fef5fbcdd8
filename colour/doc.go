// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package colour - the canvas data model
//
// A canvas is a width x height x depth grid of locations governed by
// a single fixed mode.  Participants append votes and purchases to
// logs named after the canvas; the colour of a location is derived
// from those records, never stored.
package colour
