/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/commonerrors/errortest"
)

func TestParseTrap(t *testing.T) {
	tests := []struct {
		name     string
		expected Trap
	}{
		{"strict", TrapStrict},
		{"Strict", TrapStrict},
		{" REPLACE ", TrapReplace},
		{"ignore", TrapIgnore},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("parse_%v", strings.TrimSpace(test.name)), func(t *testing.T) {
			trap, err := ParseTrap(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.expected, trap)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(test.name)), trap.String())
		})
	}
	_, err := ParseTrap("lenient")
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Contains(t, err.Error(), "invalid decoder trap")
}

func TestDecodeTextUTF8(t *testing.T) {
	content := []byte("héllo")
	for _, trap := range []Trap{TrapStrict, TrapReplace, TrapIgnore} {
		t.Run(fmt.Sprintf("trap_%v", trap), func(t *testing.T) {
			text, err := DecodeText(context.Background(), content, unicode.UTF8, trap)
			require.NoError(t, err)
			assert.Equal(t, string(content), text)
		})
	}
}

func TestDecodeTextUTF8Malformed(t *testing.T) {
	// Shift-JIS bytes are not valid UTF-8.
	content, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("こんにちは、世界"))
	require.NoError(t, err)

	_, err = DecodeText(context.Background(), content, unicode.UTF8, TrapStrict)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrMalformed)

	replaced, err := DecodeText(context.Background(), content, unicode.UTF8, TrapReplace)
	require.NoError(t, err)
	assert.True(t, strings.ContainsRune(replaced, utf8.RuneError))
	assert.True(t, utf8.ValidString(replaced))

	ignored, err := DecodeText(context.Background(), content, unicode.UTF8, TrapIgnore)
	require.NoError(t, err)
	assert.False(t, strings.ContainsRune(ignored, utf8.RuneError))
	assert.True(t, utf8.ValidString(ignored))
}

func TestDecodeTextEUCJP(t *testing.T) {
	original := "こんにちは、Pythonプログラミング"
	content, err := japanese.EUCJP.NewEncoder().Bytes([]byte(original))
	require.NoError(t, err)

	// traps only change behaviour on malformed input
	for _, trap := range []Trap{TrapStrict, TrapReplace, TrapIgnore} {
		t.Run(fmt.Sprintf("trap_%v", trap), func(t *testing.T) {
			text, err := DecodeText(context.Background(), content, japanese.EUCJP, trap)
			require.NoError(t, err)
			assert.Equal(t, original, text)
		})
	}
}

func TestDecodeTextMalformedNonUTF8(t *testing.T) {
	// A lone 0x80 is not a valid Shift-JIS sequence.
	content := []byte("abc\x80def")

	_, err := DecodeText(context.Background(), content, japanese.ShiftJIS, TrapStrict)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrMalformed)

	replaced, err := DecodeText(context.Background(), content, japanese.ShiftJIS, TrapReplace)
	require.NoError(t, err)
	assert.Equal(t, "abc�def", replaced)

	ignored, err := DecodeText(context.Background(), content, japanese.ShiftJIS, TrapIgnore)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", ignored)
}

func TestDecodeTextGenuineReplacementRune(t *testing.T) {
	// GB18030 can encode U+FFFD itself; a strict decode must not mistake it
	// for a decoder substitution.
	charsetEnc, _, err := LookupCharset("gb18030")
	require.NoError(t, err)
	original := "前�後"
	content, err := charsetEnc.NewEncoder().Bytes([]byte(original))
	require.NoError(t, err)

	text, err := DecodeText(context.Background(), content, charsetEnc, TrapStrict)
	require.NoError(t, err)
	assert.Equal(t, original, text)
}

func TestDecodeTextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DecodeText(ctx, []byte("hello"), unicode.UTF8, TrapStrict)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}
