/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types used across the whole project
// so that callers can react on error type rather than on error message.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrCondition      = errors.New("failed condition")
	ErrEmpty          = errors.New("empty")
	ErrEOF            = errors.New("end of file")
	ErrTooLarge       = errors.New("too large")
	ErrMalformed      = errors.New("malformed")
	// ErrBinary is reported when content cannot be assigned any text charset.
	ErrBinary = errors.New("binary content")
	// ErrLowConfidence is reported when a charset was detected but its
	// confidence does not clear the configured threshold.
	ErrLowConfidence = errors.New("low confidence")
)

// New creates a new error of type targetError with a description.
func New(targetError error, description string) error {
	return fmt.Errorf("%w: %v", targetError, description)
}

// Newf creates a new error of type targetError with a formatted description.
func Newf(targetError error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", targetError, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into an error of type targetError.
func WrapError(targetError error, wrappedError error, description string) error {
	if wrappedError == nil {
		if description == "" {
			return targetError
		}
		return New(targetError, description)
	}
	if description == "" {
		return fmt.Errorf("%w: %v", targetError, wrappedError.Error())
	}
	return fmt.Errorf("%w: %v: %v", targetError, description, wrappedError.Error())
}

// WrapErrorf wraps an error into an error of type targetError with a formatted description.
func WrapErrorf(targetError error, wrappedError error, format string, args ...interface{}) error {
	return WrapError(targetError, wrappedError, fmt.Sprintf(format, args...))
}

// Any returns whether the target error is of one of the types of err.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns whether the target error is of none of the types of err.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the error description contains any of the given descriptions (case-insensitive).
func CorrespondTo(target error, descriptions ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range descriptions {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore ignores any error which happens e.g. Ignore(foo()).
func Ignore(_ error) {}

// ConvertContextError converts a context error into a common error.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, context.Canceled) {
		return ErrCancelled
	}
	if Any(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// ConvertIOError converts an I/O error into a common error.
func ConvertIOError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, io.EOF, io.ErrUnexpectedEOF) {
		return WrapError(ErrEOF, err, "")
	}
	if Any(err, io.ErrClosedPipe, io.ErrShortBuffer, io.ErrShortWrite) {
		return WrapError(ErrMarshalling, err, "")
	}
	return ConvertContextError(err)
}
