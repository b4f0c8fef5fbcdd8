// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrCanvasNotFound        = NotFoundError("canvas not found")
	ErrColourOutOfRange      = RecordError("colour component out of range")
	ErrCorruptEntry          = RecordError("corrupt log entry")
	ErrCreatorTooLong        = InvalidError("creator is too long")
	ErrDatabaseNotConfigured = InvalidError("database is not configured")
	ErrEntryNotFound         = NotFoundError("entry not found")
	ErrInvalidColour         = InvalidError("invalid colour")
	ErrInvalidConfiguration  = InvalidError("configuration did not return a table")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidDigest         = InvalidError("invalid digest")
	ErrInvalidLogName        = InvalidError("invalid log name")
	ErrInvalidMode           = InvalidError("invalid mode")
	ErrInvalidOrder          = InvalidError("invalid iteration order")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrLocationOutOfBounds   = InvalidError("location is outside the canvas")
	ErrMissingCanvasName     = InvalidError("canvas name is required")
	ErrMissingCreator        = InvalidError("creator is required")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrPayloadTooLong        = InvalidError("payload is too long")
	ErrReadOnly              = ProcessError("database is read only")
	ErrTruncatedRecord       = RecordError("truncated record")
	ErrValueOverflow         = RecordError("value exceeds 32 bits")
	ErrZeroCanvasDimension   = InvalidError("canvas dimension is zero")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// UnavailableError - a log could not be read to the end
type UnavailableError struct {
	Log string
	Err error
}

// Unavailable - wrap a log transport error
func Unavailable(log string, err error) error {
	if nil == err {
		return nil
	}
	var u *UnavailableError
	if errors.As(err, &u) {
		return err
	}
	return &UnavailableError{Log: log, Err: err}
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("log: %q unavailable: %s", e.Log, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsErrUnavailable - true if any error in the chain is an UnavailableError
func IsErrUnavailable(e error) bool {
	var u *UnavailableError
	return errors.As(e, &u)
}
