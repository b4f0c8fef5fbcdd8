// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - pack and unpack log entry payloads
//
// Payloads use the protobuf wire encoding:
//
//   Location  1: x uint32         2: y uint32         3: z uint32
//   Colour    1: red uint32       2: green uint32     3: blue uint32
//   Vote      1: location         2: colour
//   Purchase  1: location         2: colour           3: price uint64
//   Canvas    1: name string      2: width uint32     3: height uint32
//             4: depth uint32     5: mode enum
//
// absent fields are zero and unknown fields are skipped, so records
// written by newer producers still decode.  A wrong wire type, a
// truncated buffer or an out of range value is a fault.RecordError.
package record
