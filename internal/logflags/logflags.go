// Package logflags gates debug logging per subsystem layer.
package logflags

import (
	"github.com/sirupsen/logrus"
)

var decoder = false
var jit = false

// Setup enables debug logging for the named layers.
func Setup(decoderFlag, jitFlag bool) {
	decoder = decoderFlag
	jit = jitFlag
}

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// Decoder returns true if decode-table construction should log.
func Decoder() bool {
	return decoder
}

// DecoderLogger returns a logger for the decode front end.
func DecoderLogger() *logrus.Entry {
	return makeLogger(decoder, logrus.Fields{"layer": "decoder"})
}

// JIT returns true if the translated-block cache should log.
func JIT() bool {
	return jit
}

// JITLogger returns a logger for the translated-block cache.
func JITLogger() *logrus.Entry {
	return makeLogger(jit, logrus.Fields{"layer": "jit"})
}
