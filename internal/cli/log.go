// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) elapsed() time.Duration { return time.Since(p.start) }

// done logs msg with the elapsed time, e.g. "replayed 42 ops (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed().Round(time.Millisecond))
}

// graphLogger returns the logger handed to dynconn: only when debugging,
// since its records are per operation.
func (c *CLI) graphLogger() *log.Logger {
	if c.Logger.GetLevel() <= log.DebugLevel {
		return c.Logger.WithPrefix("graph")
	}

	return nil
}
