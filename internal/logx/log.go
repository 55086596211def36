/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logx sets up the engine's structured, leveled loggers. The main
// application logger writes to stdout; a separate search trace logger can
// additionally be routed to a file for offline analysis of a single search.
package logx

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/suhasj2003/juujfish/internal/config"
)

var (
	once   sync.Once
	appLog *logging.Logger
)

// Get returns the shared application logger, creating it on first use.
func Get() *logging.Logger {
	once.Do(func() {
		appLog = logging.MustGetLogger("engine")
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfunc} %{level:-7.7s}:  %{message}`,
		)
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		backendFormatter := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(levelFor(config.LogLevel), "")
		logging.SetBackend(leveled)
	})
	return appLog
}

// NewSearchTraceLogger creates a dedicated logger for a single search run,
// writing to both stdout and the given file path. Used by the search
// worker when a detailed per-node trace is requested.
func NewSearchTraceLogger(path string) (*logging.Logger, error) {
	log := logging.MustGetLogger("search")
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`,
	)
	stdoutBackend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), format)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	fileBackend := logging.NewBackendFormatter(logging.NewLogBackend(f, "", 0), format)

	multi := logging.SetBackend(stdoutBackend, fileBackend)
	multi.SetLevel(levelFor(config.SearchLogLevel), "")
	return log, nil
}

func levelFor(n int) logging.Level {
	switch {
	case n <= 0:
		return logging.CRITICAL
	case n == 1:
		return logging.ERROR
	case n == 2:
		return logging.WARNING
	case n == 3:
		return logging.NOTICE
	case n == 4:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}
