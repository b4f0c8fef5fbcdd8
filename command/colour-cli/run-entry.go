// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/canvas"
)

type entryReply struct {
	Log     string      `json:"log"`
	Entry   chain.Entry `json:"entry"`
	Record  interface{} `json:"record,omitempty"`
	Invalid string      `json:"invalid,omitempty"`
}

func runEntry(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkLogName(c.String("log"))
	if nil != err {
		return err
	}

	hash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}

	entry, err := m.store.Find(name, hash)
	if nil != err {
		return err
	}

	reply := entryReply{
		Log:   name,
		Entry: entry,
	}
	reply.Record, err = canvas.DecodeEntry(name, entry)
	if nil != err {
		reply.Invalid = err.Error()
	}

	return printJson(m.w, reply)
}
