// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - tallies shared between concurrent scans
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned tally that is safe for concurrent use
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Add - add n, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Reset - set to zero, returns the value before the reset
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}
