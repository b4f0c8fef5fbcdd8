// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bitmark-inc/colourd/colour"
)

// zero scalars are omitted as protobuf does
func appendUint(buffer []byte, num protowire.Number, value uint64) []byte {
	if 0 == value {
		return buffer
	}
	buffer = protowire.AppendTag(buffer, num, protowire.VarintType)
	return protowire.AppendVarint(buffer, value)
}

func appendMessage(buffer []byte, num protowire.Number, message []byte) []byte {
	buffer = protowire.AppendTag(buffer, num, protowire.BytesType)
	return protowire.AppendBytes(buffer, message)
}

func packLocation(l colour.Location) []byte {
	buffer := appendUint(nil, locationX, uint64(l.X))
	buffer = appendUint(buffer, locationY, uint64(l.Y))
	return appendUint(buffer, locationZ, uint64(l.Z))
}

func packColour(c colour.Colour) []byte {
	red, green, blue := c.RGB()
	buffer := appendUint(nil, colourRed, uint64(red))
	buffer = appendUint(buffer, colourGreen, uint64(green))
	return appendUint(buffer, colourBlue, uint64(blue))
}

// PackVote - encode a vote, the creator is not included
func PackVote(v colour.Vote) []byte {
	buffer := appendMessage(nil, recordLocation, packLocation(v.Location))
	return appendMessage(buffer, recordColour, packColour(v.Colour))
}

// PackPurchase - encode a purchase, the creator is not included
func PackPurchase(p colour.Purchase) []byte {
	buffer := appendMessage(nil, recordLocation, packLocation(p.Location))
	buffer = appendMessage(buffer, recordColour, packColour(p.Colour))
	return appendUint(buffer, purchasePrice, p.Price)
}

// PackCanvas - encode a canvas definition
func PackCanvas(c colour.Canvas) []byte {
	var buffer []byte
	if "" != c.Name {
		buffer = protowire.AppendTag(buffer, canvasName, protowire.BytesType)
		buffer = protowire.AppendString(buffer, c.Name)
	}
	buffer = appendUint(buffer, canvasWidth, uint64(c.Width))
	buffer = appendUint(buffer, canvasHeight, uint64(c.Height))
	buffer = appendUint(buffer, canvasDepth, uint64(c.Depth))
	return appendUint(buffer, canvasMode, uint64(c.Mode))
}
