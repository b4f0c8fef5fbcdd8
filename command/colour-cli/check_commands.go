// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/colourd/canvas"
	"github.com/bitmark-inc/colourd/colour"
	"github.com/bitmark-inc/colourd/digest"
	"github.com/bitmark-inc/colourd/fault"
)

var (
	ErrRequiredCanvas     = fault.InvalidError("canvas id is required")
	ErrRequiredColour     = fault.InvalidError("colour is required")
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredHash       = fault.InvalidError("entry hash is required")
	ErrRequiredLocation   = fault.InvalidError("location is required")
	ErrRequiredLog        = fault.InvalidError("log name is required")
	ErrInvalidLocation    = fault.InvalidError("location must be: X,Y,Z")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// canvas is a Base58 id
func checkCanvas(id string) (digest.Digest, error) {
	if "" == id {
		return digest.Zero, ErrRequiredCanvas
	}
	return canvas.IDToHash(id)
}

// X,Y,Z each a 32 bit unsigned integer
func checkLocation(s string) (colour.Location, error) {
	if "" == s {
		return colour.Location{}, ErrRequiredLocation
	}

	parts := strings.Split(s, ",")
	if 3 != len(parts) {
		return colour.Location{}, ErrInvalidLocation
	}

	xyz := [3]uint32{}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if nil != err {
			return colour.Location{}, ErrInvalidLocation
		}
		xyz[i] = uint32(n)
	}
	return colour.At(xyz[0], xyz[1], xyz[2]), nil
}

// colour as #rrggbb
func checkColour(s string) (colour.Colour, error) {
	if "" == s {
		return 0, ErrRequiredColour
	}
	return colour.ColourFromString(s)
}

// creator flag overrides the configured creator
func checkCreator(flag string, configured string) (string, error) {
	if "" != flag {
		return flag, nil
	}
	if "" != configured {
		return configured, nil
	}
	return "", fault.ErrMissingCreator
}

// log name is required
func checkLogName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredLog
	}
	return name, nil
}

// entry hash in hex
func checkHash(s string) (digest.Digest, error) {
	if "" == s {
		return digest.Zero, ErrRequiredHash
	}
	return digest.FromString(s)
}

// count must be positive
func checkCount(count int) (int, error) {
	if count <= 0 {
		return 0, fault.ErrInvalidCount
	}
	return count, nil
}
