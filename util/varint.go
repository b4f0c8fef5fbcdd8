// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:  ext | B34 | B33 | B32 | B31 | B30 | B29 | B28
// byte 6:  ext | B41 | B40 | B39 | B38 | B37 | B36 | B35
// byte 7:  ext | B48 | B47 | B46 | B45 | B44 | B43 | B42
// byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
// byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// AppendVarint64 - append the Varint64 form of value to buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	// ninth byte carries all remaining 8 bits
	return append(buffer, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of buffer
//
// returns the value and the number of bytes it occupied, or 0, 0 if
// buffer ends before the final byte
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		if Varint64MaximumBytes-1 == i {
			// the final byte has no extension bit
			return value | uint64(b)<<(7*uint(i)), i + 1
		}
		value |= uint64(b&0x7f) << (7 * uint(i))
		if b < 0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// AppendBytes - append a Varint64 length prefix followed by data
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// ReadBytes - read a length prefixed byte slice from the start of buffer
//
// the result refers to the underlying array of buffer, copy it if
// it must be preserved
// returns nil, 0 if the buffer is truncated or the length exceeds maximum
func ReadBytes(buffer []byte, maximum int) ([]byte, int) {
	length, n := FromVarint64(buffer)
	if 0 == n || length > uint64(maximum) {
		return nil, 0
	}
	end := n + int(length)
	if end > len(buffer) {
		return nil, 0
	}
	return buffer[n:end], end
}
