// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/colourd/chain"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/record"
)

// log names
const (
	CanvasesLog    = "Colour-Canvases"
	VotePrefix     = "Colour-Vote-"
	PurchasePrefix = "Colour-Purchase-"
)

// ID - the printable identity of a canvas
func ID(hash digest.Digest) string {
	return base58.Encode(hash[:])
}

// IDToHash - reverse of ID
func IDToHash(id string) (digest.Digest, error) {
	buffer, err := base58.Decode(id)
	if nil != err {
		return digest.Zero, err
	}
	return digest.FromBytes(buffer)
}

// VotesLog - name of the votes log of a canvas
func VotesLog(hash digest.Digest) string {
	return VotePrefix + ID(hash)
}

// PurchasesLog - name of the purchases log of a canvas
func PurchasesLog(hash digest.Digest) string {
	return PurchasePrefix + ID(hash)
}

// ListFunc - called for each canvas, return false to stop
type ListFunc func(hash digest.Digest, c colour.Canvas) bool

// List - every decodable canvas in the canvases log, oldest first
func List(source chain.Log, fn ListFunc) error {
	return source.Iterate(CanvasesLog, chain.AsStored, func(entry chain.Entry) bool {
		c, err := record.UnpackCanvas(entry.Payload)
		if nil != err {
			return true
		}
		return fn(entry.Hash, c)
	})
}

// DecodeEntry - decode an entry according to the kind of log it is in
//
// returns a colour.Canvas, colour.Vote or colour.Purchase, or nil for
// a log that is not part of a canvas
func DecodeEntry(name string, entry chain.Entry) (interface{}, error) {
	switch {
	case CanvasesLog == name:
		c, err := record.UnpackCanvas(entry.Payload)
		if nil != err {
			return nil, err
		}
		return c, nil

	case strings.HasPrefix(name, VotePrefix):
		v, err := record.UnpackVote(entry.Payload)
		if nil != err {
			return nil, err
		}
		v.Creator = entry.Creator
		return v, nil

	case strings.HasPrefix(name, PurchasePrefix):
		p, err := record.UnpackPurchase(entry.Payload)
		if nil != err {
			return nil, err
		}
		p.Creator = entry.Creator
		return p, nil

	default:
		return nil, nil
	}
}
