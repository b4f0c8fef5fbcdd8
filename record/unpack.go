// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/fault"
)

// field numbers
const (
	locationX = 1
	locationY = 2
	locationZ = 3

	colourRed   = 1
	colourGreen = 2
	colourBlue  = 3

	recordLocation = 1
	recordColour   = 2
	purchasePrice  = 3

	canvasName   = 1
	canvasWidth  = 2
	canvasHeight = 3
	canvasDepth  = 4
	canvasMode   = 5
)

// skip marks a field as not consumed by a visitor
const skip = -1

// visit each field of a message
//
// the visitor returns the number of bytes it consumed, or skip to
// have the value passed over as an unknown field
func walk(buffer []byte, visit func(num protowire.Number, typ protowire.Type, value []byte) (int, error)) error {
	for len(buffer) > 0 {
		num, typ, n := protowire.ConsumeTag(buffer)
		if n < 0 {
			return fault.ErrTruncatedRecord
		}
		buffer = buffer[n:]

		n, err := visit(num, typ, buffer)
		if nil != err {
			return err
		}
		if skip == n {
			n = protowire.ConsumeFieldValue(num, typ, buffer)
			if n < 0 {
				return fault.ErrTruncatedRecord
			}
		}
		buffer = buffer[n:]
	}
	return nil
}

// a known field with an unexpected wire type is read as skip so it is
// passed over like an unknown field
func readUint64(typ protowire.Type, buffer []byte) (uint64, int, error) {
	if protowire.VarintType != typ {
		return 0, skip, nil
	}
	v, n := protowire.ConsumeVarint(buffer)
	if n < 0 {
		return 0, 0, fault.ErrTruncatedRecord
	}
	return v, n, nil
}

func readUint32(typ protowire.Type, buffer []byte) (uint32, int, error) {
	v, n, err := readUint64(typ, buffer)
	if nil != err || skip == n {
		return 0, n, err
	}
	if v > math.MaxUint32 {
		return 0, 0, fault.ErrValueOverflow
	}
	return uint32(v), n, nil
}

func readBytes(typ protowire.Type, buffer []byte) ([]byte, int, error) {
	if protowire.BytesType != typ {
		return nil, skip, nil
	}
	v, n := protowire.ConsumeBytes(buffer)
	if n < 0 {
		return nil, 0, fault.ErrTruncatedRecord
	}
	return v, n, nil
}

// embedded messages merge, so repeated occurrences combine field by field
func unpackLocation(buffer []byte, location *colour.Location) error {
	return walk(buffer, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		var target *uint32
		switch num {
		case locationX:
			target = &location.X
		case locationY:
			target = &location.Y
		case locationZ:
			target = &location.Z
		default:
			return skip, nil
		}
		v, n, err := readUint32(typ, value)
		if nil != err || skip == n {
			return n, err
		}
		*target = v
		return n, nil
	})
}

func unpackColour(buffer []byte, c *colour.Colour) error {
	red, green, blue := c.RGB()
	err := walk(buffer, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		var target *uint8
		switch num {
		case colourRed:
			target = &red
		case colourGreen:
			target = &green
		case colourBlue:
			target = &blue
		default:
			return skip, nil
		}
		v, n, err := readUint32(typ, value)
		if nil != err || skip == n {
			return n, err
		}
		if v > math.MaxUint8 {
			return 0, fault.ErrColourOutOfRange
		}
		*target = uint8(v)
		return n, nil
	})
	if nil != err {
		return err
	}
	*c = colour.FromRGB(red, green, blue)
	return nil
}

// location and colour are common to votes and purchases
func unpackPlacement(num protowire.Number, typ protowire.Type, value []byte, location *colour.Location, c *colour.Colour) (int, error) {
	switch num {
	case recordLocation:
		b, n, err := readBytes(typ, value)
		if nil != err || skip == n {
			return n, err
		}
		return n, unpackLocation(b, location)
	case recordColour:
		b, n, err := readBytes(typ, value)
		if nil != err || skip == n {
			return n, err
		}
		return n, unpackColour(b, c)
	default:
		return skip, nil
	}
}

// UnpackVote - decode a vote payload
//
// the creator is not part of the payload, it comes from the log entry
func UnpackVote(payload []byte) (colour.Vote, error) {
	v := colour.Vote{}
	err := walk(payload, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		return unpackPlacement(num, typ, value, &v.Location, &v.Colour)
	})
	if nil != err {
		return colour.Vote{}, err
	}
	return v, nil
}

// UnpackPurchase - decode a purchase payload
func UnpackPurchase(payload []byte) (colour.Purchase, error) {
	p := colour.Purchase{}
	err := walk(payload, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		if purchasePrice == num {
			price, n, err := readUint64(typ, value)
			if nil != err || skip == n {
				return n, err
			}
			p.Price = price
			return n, nil
		}
		return unpackPlacement(num, typ, value, &p.Location, &p.Colour)
	})
	if nil != err {
		return colour.Purchase{}, err
	}
	return p, nil
}

// UnpackCanvas - decode a canvas definition payload
func UnpackCanvas(payload []byte) (colour.Canvas, error) {
	c := colour.Canvas{}
	err := walk(payload, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		var target *uint32
		switch num {
		case canvasName:
			b, n, err := readBytes(typ, value)
			if nil != err || skip == n {
				return n, err
			}
			c.Name = string(b)
			return n, nil
		case canvasWidth:
			target = &c.Width
		case canvasHeight:
			target = &c.Height
		case canvasDepth:
			target = &c.Depth
		case canvasMode:
			target = (*uint32)(&c.Mode)
		default:
			return skip, nil
		}
		v, n, err := readUint32(typ, value)
		if nil != err || skip == n {
			return n, err
		}
		*target = v
		return n, nil
	})
	if nil != err {
		return colour.Canvas{}, err
	}
	return c, nil
}
