// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canvas - load a canvas by hash and resolve its colours
//
// Logs:
//
//   Colour-Canvases        - every canvas definition
//   Colour-Vote-<id>       - votes on one canvas
//   Colour-Purchase-<id>   - purchases on one canvas
//
// where <id> is the Base58 encoding of the hash of the canvas entry.
//
// A Loader moves through: Unloaded -> Loaded -> Resolved.  Load finds
// the canvas once and keeps it, every Resolve scans the logs again.
package canvas
