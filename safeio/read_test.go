/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safeio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/commonerrors/errortest"
)

func TestReadAll(t *testing.T) {
	content := faker.Paragraph()
	read, err := ReadAll(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, content, string(read))
}

func TestReadAllEmpty(t *testing.T) {
	read, err := ReadAll(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, read)
}

func TestReadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadAll(ctx, strings.NewReader(faker.Sentence()))
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}

func TestReadAtMost(t *testing.T) {
	content := faker.Paragraph()
	read, err := ReadAtMost(context.Background(), strings.NewReader(content), 5, -1)
	require.NoError(t, err)
	assert.Equal(t, content[:5], string(read))
}

func TestWriteAll(t *testing.T) {
	content := []byte(faker.Sentence())
	var buffer bytes.Buffer
	require.NoError(t, WriteAll(context.Background(), &buffer, content))
	assert.Equal(t, content, buffer.Bytes())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WriteAll(ctx, &buffer, content)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}
