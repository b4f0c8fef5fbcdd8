// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// ANSI terminal codes
const (
	CoReset   = "\x1b[0m"
	CoBright  = "\x1b[1m"
	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"
)

// Painter - wraps text in terminal colours when enabled
type Painter bool

// Paint - text in the given colour, unchanged if disabled
func (p Painter) Paint(colour string, text string) string {
	if !p {
		return text
	}
	return colour + text + CoReset
}

// Codes - the colour and reset codes, empty if disabled
func (p Painter) Codes(colour string) (string, string) {
	if !p {
		return "", ""
	}
	return colour, CoReset
}
