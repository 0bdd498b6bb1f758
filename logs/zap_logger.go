/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/ARM-software/detat/commonerrors"
)

const (
	syncError      = "invalid argument"             // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
	syncIoctlError = "inappropriate ioctl for device" // same issue when standard error is a terminal
)

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		// handling this error https://github.com/uber-go/zap/issues/328
		if commonerrors.CorrespondTo(err, syncError, syncIoctlError) {
			return nil
		}
		return err
	})
}

// NewStdErrZapLogger returns a zap based logger writing to standard error.
func NewStdErrZapLogger(loggerSource string) (loggers Loggers, err error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	zapL, err := cfg.Build()
	if err != nil {
		return
	}
	return NewZapLogger(zapL, loggerSource)
}
