// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/colourd/constants"
)

// Cache - lookup cache for entries fetched by hash
//
// log entries never change once written so nothing is ever invalidated
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

type entryCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &entryCache{
		cache: cache.New(constants.EntryCacheExpiration, constants.EntryCacheCleanup),
	}
}

func (c *entryCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

// Set - store a private copy of value
func (c *entryCache) Set(key string, value []byte) {
	data := make([]byte, len(value))
	copy(data, value)
	c.cache.Set(key, data, cache.DefaultExpiration)
}

func (c *entryCache) Clear() {
	c.cache.Flush()
}
