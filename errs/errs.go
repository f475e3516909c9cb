/*
NAME
  errs.go

DESCRIPTION
  Error categories used throughout the director container decoder and
  playback engine.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package errs defines the two error categories used by the director
// container decoder: NotFound for absent-but-optional data, and
// InvalidData for structurally malformed input that aborts a parse.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError indicates that an index, chunk, or cast member could not be
// located. Callers at optional call sites treat this as recoverable; at
// required call sites it is fatal.
type NotFoundError struct {
	// What names the thing that could not be found, e.g. "chunk", "cast member 12".
	What string
	err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.What)
}

func (e *NotFoundError) Unwrap() error { return e.err }

// NewNotFound builds a NotFoundError describing what was missing.
func NewNotFound(what string) error {
	return &NotFoundError{What: what, err: errors.New(what)}
}

// InvalidDataError indicates the input violates a structural invariant of
// the container format. It always carries the chunk tag and the absolute
// file offset at which the violation was observed.
type InvalidDataError struct {
	Tag    string
	Offset int64
	Reason string
	err    error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid data in chunk %q at offset 0x%x: %s", e.Tag, e.Offset, e.Reason)
}

func (e *InvalidDataError) Unwrap() error { return e.err }

// NewInvalidData builds an InvalidDataError for the given tag and offset.
func NewInvalidData(tag string, offset int64, reason string) error {
	e := &InvalidDataError{Tag: tag, Offset: offset, Reason: reason}
	e.err = errors.WithStack(errors.New(e.Error()))
	return e
}

// Wrapf wraps err with additional context using pkg/errors, preserving the
// original stack trace when one is already attached.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidData reports whether err is, or wraps, an InvalidDataError.
func IsInvalidData(err error) bool {
	var id *InvalidDataError
	return errors.As(err, &id)
}
