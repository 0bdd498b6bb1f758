/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package detat

import (
	"github.com/ARM-software/detat/charset"
)

// Metadata is the audit record of one processed input item. It is immutable
// once built; its zero value means "empty input processed, nothing decided".
type Metadata struct {
	// Chardet is the detection result as reported by the backend.
	Chardet charset.DetectionResult `json:"chardet"`
	// Encoding is the resolved encoding label the content was decoded with.
	Encoding string `json:"encoding"`
	// Fallbacked states whether the fallback encoding was used.
	Fallbacked bool `json:"fallbacked"`
	// ReadBytes is the number of bytes read from the input.
	ReadBytes int `json:"read_bytes"`
}

// Output is the machine readable record of one processed input item.
type Output struct {
	// Path identifies the source; nil for standard input.
	Path *string `json:"path"`
	Metadata Metadata `json:"metadata"`
	// Content is the decoded text; nil when only statistics were requested or
	// when the input carried no decodable text.
	Content *string `json:"content"`
}
