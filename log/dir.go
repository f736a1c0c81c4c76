// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DirLogger writes every message to a log file inside a directory and mirrors errors to
// stderr.
type DirLogger struct {
	file    *os.File
	out     *log.Logger
	stderr  *log.Logger
	verbose bool
}

// NewDirLogger creates <dir>/<program>.log (appending if it exists) and returns a logger
// writing to it. An empty dir means the system temp directory. The caller must Close the
// logger.
func NewDirLogger(dir, program string, verbose bool) (*DirLogger, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	name := filepath.Base(program)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	path := filepath.Join(dir, name+".log")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	flags := log.LstdFlags | log.Lmicroseconds
	return &DirLogger{
		file:    f,
		out:     log.New(f, "", flags),
		stderr:  log.New(os.Stderr, "", flags),
		verbose: verbose,
	}, nil
}

// Path returns the path of the log file.
func (l *DirLogger) Path() string {
	return l.file.Name()
}

// Close closes the log file.
func (l *DirLogger) Close() error {
	return l.file.Close()
}

func (l *DirLogger) write(tag, msg string) {
	l.out.Print(tag + msg)
	if tag == tagError {
		l.stderr.Print(tag + msg)
	}
}

// Errorf is the formatted error logging function.
func (l *DirLogger) Errorf(format string, args ...any) {
	l.write(tagError, fmt.Sprintf(format, args...))
}

// Warnf is the formatted warning logging function.
func (l *DirLogger) Warnf(format string, args ...any) {
	l.write(tagWarn, fmt.Sprintf(format, args...))
}

// Infof is the formatted info logging function.
func (l *DirLogger) Infof(format string, args ...any) {
	l.write(tagInfo, fmt.Sprintf(format, args...))
}

// Debugf is the formatted debug logging function.
func (l *DirLogger) Debugf(format string, args ...any) {
	if l.verbose {
		l.write(tagDebug, fmt.Sprintf(format, args...))
	}
}

// Error is the error logging function.
func (l *DirLogger) Error(args ...any) {
	l.write(tagError, fmt.Sprintln(args...))
}

// Warn is the warning logging function.
func (l *DirLogger) Warn(args ...any) {
	l.write(tagWarn, fmt.Sprintln(args...))
}

// Info is the info logging function.
func (l *DirLogger) Info(args ...any) {
	l.write(tagInfo, fmt.Sprintln(args...))
}

// Debug is the debug logging function.
func (l *DirLogger) Debug(args ...any) {
	if l.verbose {
		l.write(tagDebug, fmt.Sprintln(args...))
	}
}
