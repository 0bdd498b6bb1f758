/*
 * Copyright (C) 2020-2023 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines loggers for use in projects.
package logs

import (
	"fmt"
	"log"
	"os"

	"github.com/ARM-software/detat/commonerrors"
)

// Definition of command loggers
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger
}

// Checks whether the loggers are correctly defined or not.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(source string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(source string) error {
	return nil
}

// Logs to the output logger.
func (l *GenericLoggers) Log(output ...interface{}) {
	l.Output.Println(output...)
}

// Logs to the Error logger.
func (l *GenericLoggers) LogError(err ...interface{}) {
	l.Error.Println(err...)
}

// Closes the logger
func (l *GenericLoggers) Close() error {
	return nil
}

// NewStdErrLogger creates loggers writing exclusively to standard error so that
// the primary output stream is never polluted by diagnostics.
func NewStdErrLogger(loggerSource string) (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stderr, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(os.Stderr, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	return
}
