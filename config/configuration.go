/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/detat/charset"
)

// Configuration describes one detat run: how uncertain detection is resolved
// (minimum confidence, fallback encoding, allow-binary), how decode errors are
// trapped and which presentation mode is used.
type Configuration struct {
	// ConfidenceMin is the detection confidence below which an item fails
	// unless a fallback encoding is configured. Only meaningful for graded
	// confidence backends; boolean backends clear any threshold when certain.
	ConfidenceMin float64 `mapstructure:"confidence_min"`
	// FallbackEncoding is used instead of the detected charset when the
	// confidence does not clear ConfidenceMin. Empty means no fallback.
	FallbackEncoding string `mapstructure:"fallback_encoding"`
	// JSON switches the output to JSON Lines records.
	JSON bool `mapstructure:"json"`
	// Stat suppresses content and prints per item statistics.
	Stat bool `mapstructure:"stat"`
	// AllowBinary passes binary input through untouched instead of rejecting it.
	AllowBinary bool `mapstructure:"allow_binary"`
	// DecoderTrap is the decode error handling policy (strict|replace|ignore).
	DecoderTrap string `mapstructure:"decoder_trap"`
	// Detector is the charset detector backend (chardet|html).
	Detector string `mapstructure:"detector"`
	// Quiet restricts diagnostics to errors only.
	Quiet bool `mapstructure:"quiet"`
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.ConfidenceMin, validation.Min(float64(0)), validation.Max(float64(1))),
		validation.Field(&cfg.DecoderTrap, validation.Required, validation.In(
			charset.TrapStrict.String(), charset.TrapReplace.String(), charset.TrapIgnore.String())),
		validation.Field(&cfg.Detector, validation.Required, validation.In(
			charset.DetectorChardet, charset.DetectorHTML)),
	)
}

// DefaultConfiguration returns a configuration matching the CLI defaults.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		ConfidenceMin: 0,
		DecoderTrap:   charset.TrapStrict.String(),
		Detector:      charset.DetectorChardet,
	}
}
