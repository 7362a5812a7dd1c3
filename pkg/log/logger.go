// Copyright 2021 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger describes a logger to be used in ifdtool.
type Logger interface {
	// Debugf logs a message only shown in verbose mode.
	Debugf(format string, args ...interface{})

	// Infof logs an informational message.
	Infof(format string, args ...interface{})

	// Warnf logs an warning message.
	Warnf(format string, args ...interface{})

	// Errorf logs an error message.
	Errorf(format string, args ...interface{})

	// Fatalf logs a fatal message and immediately exits the application
	// with os.Exit.
	Fatalf(format string, args ...interface{})
}

// DefaultLogger is the logger used by default everywhere within ifdtool.
var DefaultLogger Logger

func init() {
	DefaultLogger = NewLogrusLogger(newLogrus())
}

func newLogrus() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}

type logrusWrapper struct {
	Logger *logrus.Logger
}

// NewLogrusLogger wraps a logrus logger into a Logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return logrusWrapper{Logger: l}
}

// Debugf implements Logger.
func (logger logrusWrapper) Debugf(format string, args ...interface{}) {
	logger.Logger.Debugf("[ifdtool] "+format, args...)
}

// Infof implements Logger.
func (logger logrusWrapper) Infof(format string, args ...interface{}) {
	logger.Logger.Infof("[ifdtool] "+format, args...)
}

// Warnf implements Logger.
func (logger logrusWrapper) Warnf(format string, args ...interface{}) {
	logger.Logger.Warnf("[ifdtool] "+format, args...)
}

// Errorf implements Logger.
func (logger logrusWrapper) Errorf(format string, args ...interface{}) {
	logger.Logger.Errorf("[ifdtool] "+format, args...)
}

// Fatalf implements Logger.
func (logger logrusWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatalf("[ifdtool] "+format, args...)
}

// SetVerbose enables debug messages on the default logger, if it is
// backed by logrus.
func SetVerbose(verbose bool) {
	w, ok := DefaultLogger.(logrusWrapper)
	if !ok {
		return
	}
	if verbose {
		w.Logger.SetLevel(logrus.DebugLevel)
	} else {
		w.Logger.SetLevel(logrus.InfoLevel)
	}
}

// Debugf logs a message only shown in verbose mode.
func Debugf(format string, args ...interface{}) {
	DefaultLogger.Debugf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	DefaultLogger.Infof(format, args...)
}

// Warnf logs an warning message.
func Warnf(format string, args ...interface{}) {
	DefaultLogger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	DefaultLogger.Errorf(format, args...)
}

// Fatalf logs a fatal message and immediately exits the application
// with os.Exit (which is expected to be called by the DefaultLogger.Fatalf).
func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
