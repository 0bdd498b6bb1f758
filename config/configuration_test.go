/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "strict", cfg.DecoderTrap)
	assert.Equal(t, "chardet", cfg.Detector)
	assert.Zero(t, cfg.ConfidenceMin)
	assert.Empty(t, cfg.FallbackEncoding)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Configuration)
		field  string
	}{
		{"invalid trap", func(cfg *Configuration) { cfg.DecoderTrap = "lenient" }, "DecoderTrap"},
		{"missing trap", func(cfg *Configuration) { cfg.DecoderTrap = "" }, "DecoderTrap"},
		{"invalid detector", func(cfg *Configuration) { cfg.Detector = "guesswork" }, "Detector"},
		{"confidence above range", func(cfg *Configuration) { cfg.ConfidenceMin = 1.5 }, "ConfidenceMin"},
		{"confidence below range", func(cfg *Configuration) { cfg.ConfidenceMin = -0.5 }, "ConfidenceMin"},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfiguration()
			test.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.field)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Configuration{}
	require.NoError(t, Load("DETAT", cfg, DefaultConfiguration()))
	assert.Equal(t, DefaultConfiguration(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DETAT_DECODER_TRAP", "replace")
	t.Setenv("DETAT_CONFIDENCE_MIN", "0.5")
	t.Setenv("DETAT_ALLOW_BINARY", "true")
	cfg := &Configuration{}
	require.NoError(t, Load("DETAT", cfg, DefaultConfiguration()))
	assert.Equal(t, "replace", cfg.DecoderTrap)
	assert.Equal(t, 0.5, cfg.ConfidenceMin)
	assert.True(t, cfg.AllowBinary)
	assert.Equal(t, "chardet", cfg.Detector)
}

func TestLoadInvalidEnvironment(t *testing.T) {
	t.Setenv("DETAT_DECODER_TRAP", "lenient")
	cfg := &Configuration{}
	err := Load("DETAT", cfg, DefaultConfiguration())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DecoderTrap")
}

func TestBindFlagToEnv(t *testing.T) {
	flags := pflag.NewFlagSet("detat", pflag.ContinueOnError)
	flags.StringP("fallback", "f", "", "Use this encoding if detected confidence is less than the minimum")
	flags.Float64P("confidence-min", "c", 0, "Fail if detected confidence is less than this")
	require.NoError(t, flags.Parse([]string{"--fallback", "UTF-8", "-c", "0.9"}))

	session := viper.New()
	require.NoError(t, BindFlagToEnv(session, "DETAT", "DETAT_FALLBACK_ENCODING", flags.Lookup("fallback")))
	require.NoError(t, BindFlagToEnv(session, "DETAT", "DETAT_CONFIDENCE_MIN", flags.Lookup("confidence-min")))

	cfg := &Configuration{}
	require.NoError(t, LoadFromViper(session, "DETAT", cfg, DefaultConfiguration()))
	assert.Equal(t, "UTF-8", cfg.FallbackEncoding)
	assert.Equal(t, 0.9, cfg.ConfidenceMin)
	assert.Equal(t, "strict", cfg.DecoderTrap)
}

func TestBindFlagToEnvPrecedence(t *testing.T) {
	// an explicitly set flag takes precedence over the environment
	t.Setenv("DETAT_CONFIDENCE_MIN", "0.2")
	flags := pflag.NewFlagSet("detat", pflag.ContinueOnError)
	flags.Float64P("confidence-min", "c", 0, "Fail if detected confidence is less than this")
	require.NoError(t, flags.Parse([]string{"-c", "0.8"}))

	session := viper.New()
	require.NoError(t, BindFlagToEnv(session, "DETAT", "DETAT_CONFIDENCE_MIN", flags.Lookup("confidence-min")))
	cfg := &Configuration{}
	require.NoError(t, LoadFromViper(session, "DETAT", cfg, DefaultConfiguration()))
	assert.Equal(t, 0.8, cfg.ConfidenceMin)
}
