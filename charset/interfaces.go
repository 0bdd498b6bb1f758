/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/detat/$GOPACKAGE ICharsetDetector

// ICharsetDetector guesses the charset of a byte buffer. Implementations are
// heuristic: they are deterministic for identical content and never fail.
// Content the backend cannot assign any text charset to yields a result with
// an empty charset name.
type ICharsetDetector interface {
	Detect(content []byte) DetectionResult
}
