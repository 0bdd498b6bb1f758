/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gogs/chardet"
	htmlcharset "golang.org/x/net/html/charset"

	"github.com/ARM-software/detat/commonerrors"
)

// Names of the available detector backends.
const (
	DetectorChardet = "chardet"
	DetectorHTML    = "html"
)

// ConfidenceSignal is a detector's self reported certainty in its charset
// guess. Backends either grade their guess with a numeric score or only state
// whether they are certain.
type ConfidenceSignal interface {
	// Clears states whether the signal clears the given minimum confidence.
	Clears(confidenceMin float64) bool
	// String describes the signal in a human readable form.
	String() string
}

// GradedConfidence is a numeric confidence score in [0, 1].
type GradedConfidence float64

// Clears compares the score with the threshold (inclusive).
func (c GradedConfidence) Clears(confidenceMin float64) bool {
	return float64(c) >= confidenceMin
}

func (c GradedConfidence) String() string {
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}

// BooleanConfidence is a certain/uncertain flag reported by backends with no
// graded score. A certain guess clears any threshold; an uncertain one clears
// none, whatever the configured minimum is.
type BooleanConfidence bool

func (c BooleanConfidence) Clears(_ float64) bool {
	return bool(c)
}

func (c BooleanConfidence) String() string {
	return strconv.FormatBool(bool(c))
}

// DetectionResult is the normalised view of what a detector backend returned.
// The zero value describes content for which no detection was performed.
type DetectionResult struct {
	Charset    string
	Confidence ConfidenceSignal
	Language   string
}

// IsBinary states whether the detector believes the content is not text.
// An empty charset name means binary whatever the confidence value is.
func (r DetectionResult) IsBinary() bool {
	return r.Charset == ""
}

// ClearsThreshold states whether the detection confidence clears the given
// minimum. An absent signal only clears a zero threshold.
func (r DetectionResult) ClearsThreshold(confidenceMin float64) bool {
	if r.Confidence == nil {
		return GradedConfidence(0).Clears(confidenceMin)
	}
	return r.Confidence.Clears(confidenceMin)
}

// ConfidenceString describes the confidence for statistics output.
func (r DetectionResult) ConfidenceString() string {
	if r.Confidence == nil {
		return GradedConfidence(0).String()
	}
	return r.Confidence.String()
}

// MarshalJSON serialises the result with the confidence rendered as a number
// for graded backends and as a flag for boolean ones; an absent signal is
// rendered as zero.
func (r DetectionResult) MarshalJSON() ([]byte, error) {
	record := struct {
		Charset    string      `json:"charset"`
		Confidence interface{} `json:"confidence"`
		Language   string      `json:"language"`
	}{
		Charset:    r.Charset,
		Confidence: float64(0),
		Language:   r.Language,
	}
	switch confidence := r.Confidence.(type) {
	case GradedConfidence:
		record.Confidence = float64(confidence)
	case BooleanConfidence:
		record.Confidence = bool(confidence)
	}
	return json.Marshal(record)
}

// NewDetector returns the detector backend with the given name.
func NewDetector(name string) (ICharsetDetector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DetectorChardet, "":
		return NewChardetDetector(), nil
	case DetectorHTML:
		return NewHTMLDetector(), nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrInvalid, "invalid detector backend: %v", name)
}

type chardetDetector struct {
}

// NewChardetDetector returns the graded confidence backend based on
// github.com/gogs/chardet. The backend reports a score normalised to [0, 1]
// and, for some charsets, a language guess.
func NewChardetDetector() ICharsetDetector {
	return &chardetDetector{}
}

func (d *chardetDetector) Detect(content []byte) DetectionResult {
	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil || result == nil {
		// detection is best effort; unrecognisable content is reported as binary
		return DetectionResult{Confidence: GradedConfidence(0)}
	}
	return DetectionResult{
		Charset:    result.Charset,
		Confidence: GradedConfidence(float64(result.Confidence) / 100.0),
		Language:   result.Language,
	}
}

type htmlDetector struct {
}

// NewHTMLDetector returns the boolean confidence backend based on
// golang.org/x/net/html/charset. It follows the WHATWG sniffing algorithm
// (BOM, meta prescan, UTF-8 validity) and never reports a language nor a
// graded score; it also never reports binary as it always falls back to
// windows-1252.
func NewHTMLDetector() ICharsetDetector {
	return &htmlDetector{}
}

func (d *htmlDetector) Detect(content []byte) DetectionResult {
	_, name, certain := htmlcharset.DetermineEncoding(content, "")
	return DetectionResult{
		Charset:    name,
		Confidence: BooleanConfidence(certain),
	}
}
