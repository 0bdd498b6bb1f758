/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/ARM-software/detat/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	base      logr.Logger
	logger    logr.Logger
	closeFunc func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

func (l *logrLogger) Check() error {
	if l.logger.GetSink() == nil {
		return commonerrors.ErrNoLogger
	}
	if l.logger.Enabled() {
		return nil
	}
	return commonerrors.New(commonerrors.ErrCondition, "disabled logger")
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.logger = l.base.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.base = l.base.WithName(source)
	l.logger = l.base
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...interface{}) {
	l.logger.Error(nil, strings.TrimSpace(fmt.Sprintln(err...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (loggers Loggers, err error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc on Close.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	loggers = &logrLogger{base: logrImpl, logger: logrImpl, closeFunc: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}

// NewPlainLogrLogger creates a logr logger printing to standard error via the standard library.
func NewPlainLogrLogger(loggerSource string) (loggers Loggers, err error) {
	return NewLogrLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)), loggerSource)
}
