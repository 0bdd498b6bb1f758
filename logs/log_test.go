/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/commonerrors/errortest"
)

func TestStringLogger(t *testing.T) {
	loggers, err := NewStringLogger(faker.Word())
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	message := faker.Sentence()
	problem := faker.Sentence()
	loggers.Log(message)
	loggers.LogError(problem)
	content := loggers.GetLogContent()
	assert.Contains(t, content, message)
	assert.Contains(t, content, problem)
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}

func TestQuietLogger(t *testing.T) {
	underlying, err := NewStringLogger(faker.Word())
	require.NoError(t, err)
	quiet, err := NewQuietLogger(underlying)
	require.NoError(t, err)
	require.NoError(t, quiet.Check())
	suppressed := faker.Sentence()
	reported := faker.Sentence()
	quiet.Log(suppressed)
	quiet.LogError(reported)
	content := underlying.GetLogContent()
	assert.NotContains(t, content, suppressed)
	assert.Contains(t, content, reported)

	_, err = NewQuietLogger(nil)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
}

func TestStdErrLogger(t *testing.T) {
	loggers, err := NewStdErrLogger(faker.Word())
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	require.NoError(t, loggers.Close())
}

func TestPlainLogrLogger(t *testing.T) {
	loggers, err := NewPlainLogrLogger(faker.Word())
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	require.NoError(t, loggers.SetLogSource(faker.Word()))
	require.Error(t, loggers.SetLogSource("  "))
	require.NoError(t, loggers.Close())
}

func TestZapLogger(t *testing.T) {
	_, err := NewZapLogger(nil, faker.Word())
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)

	loggers, err := NewStdErrZapLogger(faker.Word())
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	loggers.Log(faker.Sentence())
	require.NoError(t, loggers.Close())
}
