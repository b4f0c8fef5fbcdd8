// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the time an entry fetched by hash stays in the lookup cache
const (
	EntryCacheExpiration = 2 * time.Minute
	EntryCacheCleanup    = 1 * time.Minute
)

// the time between passes of a canvas watcher
const (
	WatchInterval        = 10 * time.Second
	MinimumWatchInterval = 1 * time.Second
)
