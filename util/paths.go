// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a relative path against directory
//
// absolute paths are only cleaned
func EnsureAbsolute(directory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(directory, path)
}

// EnsureDirectory - make an absolute directory path and create it
// with owner only permissions if it does not already exist
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}
