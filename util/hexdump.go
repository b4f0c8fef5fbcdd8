// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"io"
)

const bytesPerLine = 32

// HexDump - offset, hex and printable columns, prefix and suffix
// surround each line
func HexDump(w io.Writer, prefix string, suffix string, data []byte) {
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, i)
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
		for j := 0; j < bytesPerLine && i+j < len(data); j += 1 {
			c := data[i+j]
			if c < 32 || c >= 127 {
				c = '.'
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
