/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/detat/commonerrors"
)

const (
	EnvVarSeparator = "_"
	DotEnvFile      = ".env"
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "detat", the env registry will look for env variables that start with "DETAT_".
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained: explicit `Set` calls, then flags,
// then environment (variables or `.env`), then the defaults coming from
// `defaultConfiguration`.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	// Load Defaults
	var defaults map[string]interface{}
	err = mapstructure.Decode(defaultConfiguration, &defaults)
	if err != nil {
		return
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		return
	}

	// Load .env file contents into environment, if it exists
	commonerrors.Ignore(godotenv.Load(DotEnvFile))

	// Load Environment variables
	setEnvOptions(viperSession, envVarPrefix)

	// Merge together all the sources and unmarshal into struct
	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode config into struct")
		return
	}
	// Run validation
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds a pflag to an environment variable and to the
// corresponding configuration key.
// Envvar is the environment variable string with or without the prefix envVarPrefix.
// The configuration here is flat so unlike nested structures no aliasing
// workaround is needed: the key derived from the environment variable maps
// straight onto a structure field.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	setEnvOptions(viperSession, envVarPrefix)
	key, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)
	err = viperSession.BindPFlag(key, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(key, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (key string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	key = envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		key = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	cleansedEnvVar = strings.ToUpper(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, key))
	return
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
}
