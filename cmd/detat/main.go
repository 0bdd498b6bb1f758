/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// detat is cat with charset detection: it guesses the encoding of its inputs,
// transcodes them to UTF-8 and prints the result, the per item statistics or
// JSON Lines records.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/detat/charset"
	"github.com/ARM-software/detat/commonerrors"
	"github.com/ARM-software/detat/config"
	"github.com/ARM-software/detat/detat"
	"github.com/ARM-software/detat/logs"
)

const (
	name         = "detat"
	envVarPrefix = "DETAT"
)

// Version is overridden at build time.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.Float64P("confidence-min", "c", 0, "Fail if detected confidence is less than this")
	flags.StringP("fallback", "f", "", "Use this encoding if detected confidence is less than the minimum")
	flags.BoolP("json", "j", false, "Show results in a JSON Lines format")
	flags.BoolP("stat", "s", false, "Show statistics")
	flags.BoolP("allow-binary", "b", false, "Print a binary input as it is")
	flags.StringP("trap", "t", charset.TrapStrict.String(), "Use this trap handler if errors occur (strict|replace|ignore)")
	flags.String("detector", charset.DetectorChardet, "Charset detector backend (chardet|html)")
	flags.BoolP("quiet", "q", false, "Only log errors")
	version := flags.Bool("version", false, "Print version information")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *version {
		fmt.Println(versionString())
		return 0
	}

	cfg, err := loadConfiguration(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	loggers, err := newLoggers(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { commonerrors.Ignore(loggers.Close()) }()

	pipeline, err := detat.New(cfg, afero.NewOsFs(), loggers)
	if err != nil {
		loggers.LogError(err)
		return 1
	}
	if err := pipeline.Run(context.Background(), flags.Args(), os.Stdout); err != nil {
		// per item failures were already logged with their context
		return 1
	}
	return 0
}

func loadConfiguration(flags *pflag.FlagSet) (*config.Configuration, error) {
	session := viper.New()
	bindings := map[string]string{
		"DETAT_CONFIDENCE_MIN":    "confidence-min",
		"DETAT_FALLBACK_ENCODING": "fallback",
		"DETAT_JSON":              "json",
		"DETAT_STAT":              "stat",
		"DETAT_ALLOW_BINARY":      "allow-binary",
		"DETAT_DECODER_TRAP":      "trap",
		"DETAT_DETECTOR":          "detector",
		"DETAT_QUIET":             "quiet",
	}
	for envVar, flagName := range bindings {
		if err := config.BindFlagToEnv(session, envVarPrefix, envVar, flags.Lookup(flagName)); err != nil {
			return nil, err
		}
	}
	cfg := &config.Configuration{}
	if err := config.LoadFromViper(session, envVarPrefix, cfg, config.DefaultConfiguration()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLoggers(cfg *config.Configuration) (loggers logs.Loggers, err error) {
	loggers, err = logs.NewStdErrZapLogger(name)
	if err != nil {
		return
	}
	if cfg.Quiet {
		loggers, err = logs.NewQuietLogger(loggers)
	}
	return
}

func versionString() string {
	version := Version
	if info, ok := debug.ReadBuildInfo(); ok && version == "dev" && info.Main.Version != "" {
		version = info.Main.Version
	}
	return fmt.Sprintf("%v %v", name, version)
}
