/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safeio provides functions for I/O operations which can be interrupted by a context.
package safeio

import (
	"bytes"
	"context"
	"io"

	"github.com/dolmen-go/contextio"

	"github.com/ARM-software/detat/commonerrors"
)

// ReadAll reads the whole content of src similarly to io.ReadAll but with context control to stop when asked to.
// An empty reader yields an empty byte slice and no error.
func ReadAll(ctx context.Context, src io.Reader) ([]byte, error) {
	return ReadAtMost(ctx, src, -1, -1)
}

// ReadAtMost reads the content of src and at most max bytes.
// if bufferCapacity is not set i.e. set to a negative value, it will be set by default to max
// if max is set to a negative value, the entirety of the reader will be read
func ReadAtMost(ctx context.Context, src io.Reader, max int64, bufferCapacity int64) (content []byte, err error) {
	if bufferCapacity < 0 {
		if max < 0 {
			bufferCapacity = bytes.MinRead
		} else {
			bufferCapacity = max
		}
	}
	err = commonerrors.ConvertContextError(ctx.Err())
	if err != nil {
		return
	}

	buf := bytes.NewBuffer(make([]byte, 0, bufferCapacity))
	// If the buffer overflows, we will get bytes.ErrTooLarge.
	// Return that as an error. Any other panic remains.
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if panicErr, ok := e.(error); ok && panicErr == bytes.ErrTooLarge {
			err = commonerrors.WrapError(commonerrors.ErrTooLarge, panicErr, "")
		} else {
			panic(e)
		}
	}()
	var reader io.Reader
	if max >= 0 {
		reader = io.LimitReader(src, max)
	} else {
		reader = src
	}
	_, err = buf.ReadFrom(contextio.NewReader(ctx, reader))
	err = commonerrors.ConvertIOError(err)
	if err != nil {
		return
	}
	content = buf.Bytes()
	return
}

// WriteAll writes the whole content to dst with context control to stop when asked to.
func WriteAll(ctx context.Context, dst io.Writer, content []byte) (err error) {
	err = commonerrors.ConvertContextError(ctx.Err())
	if err != nil {
		return
	}
	_, err = contextio.NewWriter(ctx, dst).Write(content)
	err = commonerrors.ConvertIOError(err)
	return
}
