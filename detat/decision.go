/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package detat

import (
	"github.com/ARM-software/detat/charset"
)

// DecisionKind enumerates the outcomes of the resolution policy.
type DecisionKind int

const (
	// DecisionDecode decodes the content under a resolved encoding label.
	DecisionDecode DecisionKind = iota
	// DecisionPassThroughBinary forwards the raw bytes untouched.
	DecisionPassThroughBinary
	// DecisionRejectBinary refuses the content as non text.
	DecisionRejectBinary
)

// Decision is the single definitive encoding decision derived from a
// detection result and the caller configuration.
type Decision struct {
	Kind DecisionKind
	// Encoding is the label to decode with. Only set for DecisionDecode.
	Encoding string
	// Fallbacked states whether Encoding is the configured fallback rather
	// than the detected charset.
	Fallbacked bool
}

// Resolve turns a detection result and the caller configuration into a
// decision. Empty content must be short-circuited by the caller before the
// detector is ever invoked; it is not this function's concern.
//
// When the confidence does not clear the threshold and no fallback is
// configured, the content is still decoded with the low confidence guess;
// the orchestrator reports the low confidence failure once the output has
// been emitted (see Detat.processItem).
func Resolve(detection charset.DetectionResult, confidenceMin float64, fallbackEncoding string, allowBinary bool) Decision {
	if detection.IsBinary() {
		if allowBinary {
			return Decision{Kind: DecisionPassThroughBinary}
		}
		return Decision{Kind: DecisionRejectBinary}
	}
	if detection.ClearsThreshold(confidenceMin) {
		return Decision{Kind: DecisionDecode, Encoding: detection.Charset}
	}
	if fallbackEncoding != "" {
		return Decision{Kind: DecisionDecode, Encoding: fallbackEncoding, Fallbacked: true}
	}
	return Decision{Kind: DecisionDecode, Encoding: detection.Charset}
}
