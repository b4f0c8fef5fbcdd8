// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
)

// indented JSON, names and colours are left unescaped
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
