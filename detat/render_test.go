/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package detat

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/detat/charset"
	"github.com/ARM-software/detat/field"
)

func TestPrintMetadata(t *testing.T) {
	metadata := Metadata{
		Chardet: charset.DetectionResult{
			Charset:    "Shift_JIS",
			Confidence: charset.GradedConfidence(0.99),
			Language:   "ja",
		},
		Encoding:  "shift_jis",
		ReadBytes: 42,
	}
	var out bytes.Buffer
	require.NoError(t, printMetadata(&out, metadata, field.ToOptionalString("testdata/sjis.txt")))
	assert.Equal(t, "---\nPath: testdata/sjis.txt\nCharset: Shift_JIS\nConfidence: 0.99\nLanguage: ja\n", out.String())
}

func TestPrintMetadataStdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printMetadata(&out, Metadata{}, nil))
	assert.Equal(t, "---\nPath: -\nCharset: \nConfidence: 0\nLanguage: \n", out.String())
}

func TestWriteJSONRecord(t *testing.T) {
	output := Output{
		Path: field.ToOptionalString("a.txt"),
		Metadata: Metadata{
			Chardet: charset.DetectionResult{
				Charset:    "UTF-8",
				Confidence: charset.GradedConfidence(1),
				Language:   "",
			},
			Encoding:  "utf-8",
			ReadBytes: 5,
		},
		Content: field.ToOptionalString("héllo"),
	}
	var out bytes.Buffer
	require.NoError(t, writeJSONRecord(context.Background(), &out, output))
	expected := `{"path":"a.txt","metadata":{"chardet":{"charset":"UTF-8","confidence":1,"language":""},"encoding":"utf-8","fallbacked":false,"read_bytes":5},"content":"héllo"}` + "\n"
	assert.Equal(t, expected, out.String())
}

func TestWriteJSONRecordNulls(t *testing.T) {
	// standard input and binary content serialise as explicit nulls
	var out bytes.Buffer
	require.NoError(t, writeJSONRecord(context.Background(), &out, Output{}))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Contains(t, decoded, "path")
	assert.Nil(t, decoded["path"])
	assert.Contains(t, decoded, "content")
	assert.Nil(t, decoded["content"])
}
