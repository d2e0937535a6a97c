package main

import (
	"io"
	"os"

	"github.com/oliverisaac/notesboard/types"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging applies the configured level and, when a log file is set,
// tees output into a rotating file. The returned closer flushes that file.
func setupLogging(cfg types.Config) io.Closer {
	logrus.SetLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, rotator))
	logrus.Infof("Writing logs to %s", cfg.LogFile)
	return rotator
}
